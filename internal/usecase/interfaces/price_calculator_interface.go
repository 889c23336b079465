package interfaces

import "kalkulacka/internal/domain/entities"

// IPriceCalculator abstracts the pricing-coefficient calculator: a pure
// function over form answers. Its output is embedded verbatim into the order
// token; this service never interprets the breakdown.
type IPriceCalculator interface {
	Calculate(serviceType string, form entities.FormData) (entities.CalculationResult, error)
}
