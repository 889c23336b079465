package response

import (
	"time"

	"kalkulacka/internal/domain/entities"
)

type ClientRecordResponse struct {
	ClientID       string            `json:"clientId"`
	Customer       entities.Customer `json:"customer"`
	Poptavka       entities.Poptavka `json:"poptavka"`
	LastUpdated    time.Time         `json:"lastUpdated"`
	CurrentOrderID string            `json:"currentOrderId,omitempty"`
	Persisted      bool              `json:"persisted"`
}

func FromClientRecord(rec entities.ClientOrderRecord, persisted bool) ClientRecordResponse {
	return ClientRecordResponse{
		ClientID:       rec.ClientID,
		Customer:       rec.Customer,
		Poptavka:       rec.Poptavka,
		LastUpdated:    rec.LastUpdated,
		CurrentOrderID: rec.CurrentOrderID,
		Persisted:      persisted,
	}
}
