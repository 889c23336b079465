package entities

import "time"

// DefaultCurrency is the label shown next to every quoted price.
const DefaultCurrency = "Kč"

// Form-answer keys that carry note text. The two notes are captured on
// different forms and must never swap slots:
//   - FormNoteField is filled on the initial quoting form and renders in the
//     summary section of the generated document.
//   - PoptavkaNoteField is filled on the lead (poptávka) form and renders in
//     the identification section, ahead of the summary.
const (
	FormNoteField     = "notes"
	PoptavkaNoteField = "poptavkaNotes"
)

// FormData holds calculator form answers keyed by field name. Values are
// scalars, string arrays or booleans as produced by the form layer; the
// token codec round-trips them through JSON without interpreting them.
type FormData map[string]any

// CalculationResult is the pricing calculator's output. It is embedded
// verbatim into the token and never interpreted by this service beyond
// displaying the total.
type CalculationResult struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

// CalculationData carries the full pricing result together with the form
// answers and the order identifier for one calculation attempt.
//
// Price and ServiceTitle are denormalized copies kept for compatibility with
// older token shapes; readers should prefer the top-level OrderToken fields.
type CalculationData struct {
	CalculationResult

	FormData  FormData  `json:"formData,omitempty"`
	OrderID   string    `json:"orderId,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`

	Price        float64 `json:"price,omitempty"`
	ServiceTitle string  `json:"serviceTitle,omitempty"`
}

// OrderToken is the record carried across the result-page redirect as a
// single opaque URL query parameter.
//
// Older encoder versions produced tokens without OrderID or ServiceTitle;
// decoding such tokens must succeed with those fields absent, and callers
// derive defaults (catalog lookup, fallback identifier) themselves.
type OrderToken struct {
	ServiceType     string          `json:"serviceType,omitempty"`
	ServiceTitle    string          `json:"serviceTitle,omitempty"`
	TotalPrice      float64         `json:"totalPrice,omitempty"`
	Currency        string          `json:"currency,omitempty"`
	CalculationData CalculationData `json:"calculationData"`
}

// FormNote returns the note captured on the initial quoting form, if any.
// Non-string or blank values count as absent.
func (c CalculationData) FormNote() (string, bool) {
	return noteField(c.FormData, FormNoteField)
}

// PoptavkaNote returns the note captured on the lead form, if any.
func (c CalculationData) PoptavkaNote() (string, bool) {
	return noteField(c.FormData, PoptavkaNoteField)
}

func noteField(form FormData, key string) (string, bool) {
	v, ok := form[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Clone returns a deep-enough copy of the form data for safe mutation.
// Nested values are shared; callers only ever add or delete top-level keys.
func (f FormData) Clone() FormData {
	if f == nil {
		return FormData{}
	}
	out := make(FormData, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
