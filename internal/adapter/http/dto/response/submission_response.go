package response

import (
	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/usecase"
)

type SubmissionResponse struct {
	OrderID         string            `json:"orderId"`
	Token           string            `json:"token"`
	ContractID      string            `json:"contractId,omitempty"`
	Document        entities.Document `json:"document"`
	RecordPersisted bool              `json:"recordPersisted"`
}

func FromSubmissionView(v usecase.SubmissionView) SubmissionResponse {
	return SubmissionResponse{
		OrderID:         v.OrderID,
		Token:           v.Token,
		ContractID:      v.ContractID,
		Document:        v.Document,
		RecordPersisted: v.RecordPersisted,
	}
}
