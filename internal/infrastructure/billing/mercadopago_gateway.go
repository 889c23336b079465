package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"kalkulacka/internal/domain/entities"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrContractGatewayNotConfigured = errors.New("contract gateway not configured")

// MercadoPagoGateway creates the billing contract for a submitted lead: one
// provider payment per order, referenced by the order identifier so provider
// events can be reconciled later.
//
// Dedup against repeated submissions is the submission ledger's job; the
// gateway itself fires on every call.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isContractGatewayMockEnabled() {
		log.Printf("[contract][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[contract][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[contract][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[contract][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateContract(ctx context.Context, order entities.MergedOrder) (string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		log.Printf("[contract][gateway] mock create start order_id=%s total=%.2f", order.OrderID, order.TotalPrice)

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		resp := map[string]any{
			"id":                 id,
			"status":             "approved",
			"external_reference": order.OrderID,
			"description":        order.ServiceTitle,
			"transaction_amount": order.TotalPrice,
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		}
		b, err := json.Marshal(resp)
		if err != nil {
			return "", nil, err
		}
		log.Printf("[contract][gateway] mock create success provider_contract_id=%s", id)
		return id, b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[contract][gateway] gateway not configured")
		return "", nil, ErrContractGatewayNotConfigured
	}
	log.Printf("[contract][gateway] create start order_id=%s total=%.2f", order.OrderID, order.TotalPrice)

	req := payment.Request{
		TransactionAmount: order.TotalPrice,
		Description:       order.ServiceTitle,
		ExternalReference: order.OrderID,
		Payer: &payment.PayerRequest{
			Email:     order.Customer.Email,
			FirstName: order.Customer.FirstName,
			LastName:  order.Customer.LastName,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[contract][gateway] sdk create failed order_id=%s err=%v", order.OrderID, err)
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[contract][gateway] response marshal failed err=%v", err)
		return "", nil, err
	}
	log.Printf("[contract][gateway] create success order_id=%s provider_contract_id=%d provider_status=%s", order.OrderID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), b, nil
}

func isContractGatewayMockEnabled() bool {
	for _, key := range []string{"CONTRACT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
