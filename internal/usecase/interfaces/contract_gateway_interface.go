package interfaces

import (
	"context"
	"encoding/json"

	"kalkulacka/internal/domain/entities"
)

// IContractGateway abstracts the external contract/billing provider invoked
// once per submitted lead (e.g. Mercado Pago).
//
// The provider response payload is returned raw for traceability; callers
// must not re-run the gateway for an order identifier already recorded in
// the submission ledger.
type IContractGateway interface {
	CreateContract(ctx context.Context, order entities.MergedOrder) (providerContractID string, providerResponse json.RawMessage, err error)
}
