// Package pricing implements the coefficient calculator over the service
// catalog. The flow treats it as an external collaborator and embeds its
// output verbatim into the order token.
package pricing

import (
	"errors"

	"kalkulacka/internal/domain/catalog"
	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/usecase/interfaces"
)

var ErrUnknownService = errors.New("unknown service type")

type CoefficientCalculator struct {
	catalog *catalog.Catalog
}

var _ interfaces.IPriceCalculator = (*CoefficientCalculator)(nil)

func NewCoefficientCalculator(cat *catalog.Catalog) *CoefficientCalculator {
	return &CoefficientCalculator{catalog: cat}
}

// Calculate prices the form answers: base price, plus per-unit prices for
// numeric fields, plus flat surcharges for checked booleans. Unrecognized
// fields are ignored; they still travel in the token for later steps.
func (c *CoefficientCalculator) Calculate(serviceType string, form entities.FormData) (entities.CalculationResult, error) {
	svc, ok := c.catalog.Lookup(serviceType)
	if !ok {
		return entities.CalculationResult{}, ErrUnknownService
	}

	total := svc.BasePrice
	breakdown := map[string]float64{"base": svc.BasePrice}

	for field, unit := range svc.UnitPrices {
		if qty, ok := numericAnswer(form[field]); ok && qty > 0 {
			amount := unit * qty
			total += amount
			breakdown[field] = amount
		}
	}
	for field, surcharge := range svc.Surcharges {
		if checked, ok := form[field].(bool); ok && checked {
			total += surcharge
			breakdown[field] = surcharge
		}
	}

	return entities.CalculationResult{Total: total, Breakdown: breakdown}, nil
}

func numericAnswer(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
