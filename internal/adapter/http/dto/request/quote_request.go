package request

import (
	"strings"

	"kalkulacka/internal/domain/entities"
)

// QuoteRequest is the payload of the initial quoting form.
//
// ExistingToken carries the token of an earlier attempt when the form is
// re-submitted with extra answers; its order identifier is then reused so
// the rebuilt token maps to the same order.
type QuoteRequest struct {
	ServiceType   string         `json:"serviceType" binding:"required"`
	FormData      map[string]any `json:"formData"`
	ExistingToken string         `json:"existingToken"`
}

func (r QuoteRequest) ResolveServiceType() string {
	return strings.TrimSpace(r.ServiceType)
}

func (r QuoteRequest) ResolveFormData() entities.FormData {
	return entities.FormData(r.FormData)
}
