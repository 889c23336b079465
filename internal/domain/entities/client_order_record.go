package entities

import "time"

// Customer identifies the person submitting the lead form.
type Customer struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Poptavka holds the phone and address/company answers from the lead form.
//
// It deliberately has no note field. Note text travels only inside the order
// token; keeping it out of the persisted record is what guarantees a stale
// note can never leak into a later order's document.
type Poptavka struct {
	Phone       string `json:"phone,omitempty"`
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	Zip         string `json:"zip,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	CompanyID   string `json:"companyId,omitempty"`
	VATID       string `json:"vatId,omitempty"`

	// Fields carries any additional lead-form answers. Note keys are
	// stripped on every write.
	Fields FormData `json:"fields,omitempty"`
}

// ClientOrderRecord is the persisted per-client record that survives page
// reloads. One record per client id, read and written wholesale under a
// single storage key.
type ClientOrderRecord struct {
	ClientID       string    `json:"clientId"`
	Customer       Customer  `json:"customer"`
	Poptavka       Poptavka  `json:"poptavka"`
	LastUpdated    time.Time `json:"lastUpdated,omitzero"`
	CurrentOrderID string    `json:"currentOrderId,omitempty"`
}

// ClientOrderPatch is a partial update to a ClientOrderRecord. Zero-value
// fields leave the existing record untouched.
type ClientOrderPatch struct {
	Customer       Customer
	Poptavka       Poptavka
	CurrentOrderID string
}

// Apply merges the patch into the record and returns the result.
//
// A changed CurrentOrderID signals a new order: the previous record is
// discarded entirely so nothing from an older shape, note fields included,
// can carry forward. Unspecified patch fields preserve existing values.
// The returned record is always sanitized.
func (r ClientOrderRecord) Apply(patch ClientOrderPatch, now time.Time) ClientOrderRecord {
	out := r
	if patch.CurrentOrderID != "" && patch.CurrentOrderID != r.CurrentOrderID {
		out = ClientOrderRecord{ClientID: r.ClientID}
		out.CurrentOrderID = patch.CurrentOrderID
	}
	out.Customer = mergeCustomer(out.Customer, patch.Customer)
	out.Poptavka = mergePoptavka(out.Poptavka, patch.Poptavka)
	out.LastUpdated = now
	return out.Sanitized()
}

// Sanitized strips note-shaped fields from the poptavka answer bag. Every
// write path runs through this, so the persisted record can never act as a
// source of note text even if a caller forgets to exclude notes itself.
func (r ClientOrderRecord) Sanitized() ClientOrderRecord {
	r.Poptavka.Fields = StripNoteFields(r.Poptavka.Fields)
	return r
}

// StripNoteFields returns a copy of the form data with both note slots
// removed. A nil input stays nil.
func StripNoteFields(f FormData) FormData {
	if f == nil {
		return nil
	}
	out := f.Clone()
	delete(out, FormNoteField)
	delete(out, PoptavkaNoteField)
	return out
}

func mergeCustomer(base, patch Customer) Customer {
	if patch.FirstName != "" {
		base.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		base.LastName = patch.LastName
	}
	if patch.Email != "" {
		base.Email = patch.Email
	}
	return base
}

func mergePoptavka(base, patch Poptavka) Poptavka {
	if patch.Phone != "" {
		base.Phone = patch.Phone
	}
	if patch.Street != "" {
		base.Street = patch.Street
	}
	if patch.City != "" {
		base.City = patch.City
	}
	if patch.Zip != "" {
		base.Zip = patch.Zip
	}
	if patch.CompanyName != "" {
		base.CompanyName = patch.CompanyName
	}
	if patch.CompanyID != "" {
		base.CompanyID = patch.CompanyID
	}
	if patch.VATID != "" {
		base.VATID = patch.VATID
	}
	if len(patch.Fields) > 0 {
		merged := base.Fields.Clone()
		for k, v := range patch.Fields {
			merged[k] = v
		}
		base.Fields = merged
	}
	return base
}
