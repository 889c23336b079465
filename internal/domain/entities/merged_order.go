package entities

// MergedOrder is the combined record handed to document rendering and the
// downstream submission collaborators. It is assembled exclusively by
// MergeForSubmission so the two note kinds always end up in their own named
// slots instead of travelling inside a generic field bag.
type MergedOrder struct {
	OrderID      string
	ServiceType  string
	ServiceTitle string
	TotalPrice   float64
	Currency     string

	Customer Customer
	Poptavka Poptavka

	// Answers is the generic merge of token form answers and persisted
	// poptavka answers, with both note slots excluded.
	Answers FormData

	// FormNote renders in the summary section; PoptavkaNote renders in the
	// identification section. Empty means absent: no label is rendered.
	FormNote     string
	PoptavkaNote string
}

// MergeForSubmission combines a decoded token with the persisted client
// record.
//
// Rules, in order:
//  1. note slots are removed from both sources before the generic merge,
//  2. token answers win over persisted answers for the same key,
//  3. each note is re-attached under its own named slot; the poptavka note
//     comes from the token only (the persisted record is note-free by
//     construction and is never consulted for note text),
//  4. an absent note stays absent rather than becoming an empty string field.
func MergeForSubmission(tok OrderToken, rec ClientOrderRecord) MergedOrder {
	answers := StripNoteFields(rec.Poptavka.Fields).Clone()
	for k, v := range StripNoteFields(tok.CalculationData.FormData) {
		answers[k] = v
	}

	m := MergedOrder{
		OrderID:      tok.CalculationData.OrderID,
		ServiceType:  tok.ServiceType,
		ServiceTitle: tok.ServiceTitle,
		TotalPrice:   tok.TotalPrice,
		Currency:     tok.Currency,
		Customer:     rec.Customer,
		Poptavka:     rec.Poptavka,
		Answers:      answers,
	}
	m.Poptavka.Fields = StripNoteFields(m.Poptavka.Fields)

	if note, ok := tok.CalculationData.FormNote(); ok {
		m.FormNote = note
	}
	if note, ok := tok.CalculationData.PoptavkaNote(); ok {
		m.PoptavkaNote = note
	}
	return m
}

// HasFormNote reports whether the summary section should render a note block.
func (m MergedOrder) HasFormNote() bool { return m.FormNote != "" }

// HasPoptavkaNote reports whether the identification section should render a
// note block.
func (m MergedOrder) HasPoptavkaNote() bool { return m.PoptavkaNote != "" }

// Section is one block of the rendered document outline.
type Section struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// Document is the outline produced by the document renderer from a
// MergedOrder. Section order is part of the contract: identification first,
// then summary, then any company/contract blocks.
type Document struct {
	Sections []Section `json:"sections"`
}

// Section names used by the renderer.
const (
	SectionIdentification = "identification"
	SectionSummary        = "summary"
	SectionContract       = "contract"
)
