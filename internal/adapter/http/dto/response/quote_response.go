package response

import "kalkulacka/internal/usecase"

type QuoteResponse struct {
	Token        string  `json:"token"`
	OrderID      string  `json:"orderId"`
	ServiceType  string  `json:"serviceType"`
	ServiceTitle string  `json:"serviceTitle"`
	TotalPrice   float64 `json:"totalPrice"`
	Currency     string  `json:"currency"`
	ResultPath   string  `json:"resultPath"`
}

func FromQuoteView(v usecase.QuoteView) QuoteResponse {
	return QuoteResponse{
		Token:        v.Token,
		OrderID:      v.OrderID,
		ServiceType:  v.ServiceType,
		ServiceTitle: v.ServiceTitle,
		TotalPrice:   v.TotalPrice,
		Currency:     v.Currency,
		ResultPath:   v.ResultPath,
	}
}
