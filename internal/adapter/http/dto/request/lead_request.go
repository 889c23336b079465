package request

import (
	"strings"

	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/usecase"
)

// LeadRequest is the follow-up lead form submitted from the result page.
//
// PoptavkaNote is the only place note text enters this step. It is attached
// to the rebuilt token under its own slot and never written to the persisted
// client record.
type LeadRequest struct {
	Token    string `json:"token" binding:"required"`
	ClientID string `json:"clientId"`

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

	PoptavkaNote string         `json:"poptavkaNotes"`
	Fields       map[string]any `json:"fields"`
}

// ResolveClientID prefers the body field and falls back to the transport
// header value.
func (r LeadRequest) ResolveClientID(headerValue string) string {
	if v := strings.TrimSpace(r.ClientID); v != "" {
		return v
	}
	return strings.TrimSpace(headerValue)
}

func (r LeadRequest) ToLeadInput() usecase.LeadInput {
	return usecase.LeadInput{
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
		PoptavkaNote: strings.TrimSpace(r.PoptavkaNote),
	}
}
