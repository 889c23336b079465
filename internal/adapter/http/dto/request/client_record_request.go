package request

import (
	"strings"

	"kalkulacka/internal/domain/entities"
)

// ClientRecordRequest is a partial update to the persisted client order
// record. Empty fields leave stored values untouched; note-shaped keys in
// Fields are stripped on write.
type ClientRecordRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	Phone       string `json:"phone"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	CompanyName string `json:"companyName"`
	CompanyID   string `json:"companyId"`
	VATID       string `json:"vatId"`

	CurrentOrderID string         `json:"currentOrderId"`
	Fields         map[string]any `json:"fields"`
}

func (r ClientRecordRequest) ToPatch() entities.ClientOrderPatch {
	return entities.ClientOrderPatch{
		Customer: entities.Customer{
			FirstName: strings.TrimSpace(r.FirstName),
			LastName:  strings.TrimSpace(r.LastName),
			Email:     strings.TrimSpace(r.Email),
		},
		Poptavka: entities.Poptavka{
			Phone:       strings.TrimSpace(r.Phone),
			Street:      strings.TrimSpace(r.Street),
			City:        strings.TrimSpace(r.City),
			Zip:         strings.TrimSpace(r.Zip),
			CompanyName: strings.TrimSpace(r.CompanyName),
			CompanyID:   strings.TrimSpace(r.CompanyID),
			VATID:       strings.TrimSpace(r.VATID),
			Fields:      entities.FormData(r.Fields),
		},
		CurrentOrderID: strings.TrimSpace(r.CurrentOrderID),
	}
}
