package response

import "kalkulacka/internal/usecase"

const (
	ResultStateOK        = "ok"
	ResultStateSubmitted = "already_submitted"
)

type ResultResponse struct {
	State        string         `json:"state"`
	Token        string         `json:"token"`
	OrderID      string         `json:"orderId,omitempty"`
	ServiceType  string         `json:"serviceType"`
	ServiceTitle string         `json:"serviceTitle"`
	TotalPrice   float64        `json:"totalPrice"`
	Currency     string         `json:"currency"`
	FormData     map[string]any `json:"formData,omitempty"`
	Stateless    bool           `json:"stateless,omitempty"`
}

func FromResultView(v usecase.ResultView, state string) ResultResponse {
	return ResultResponse{
		State:        state,
		Token:        v.Token,
		OrderID:      v.OrderID,
		ServiceType:  v.ServiceType,
		ServiceTitle: v.ServiceTitle,
		TotalPrice:   v.TotalPrice,
		Currency:     v.Currency,
		FormData:     v.FormData,
		Stateless:    v.Stateless,
	}
}
