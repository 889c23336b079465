// Package catalog holds the static service configuration the calculator
// quotes against: service identity, display title and pricing coefficients.
package catalog

import "strings"

// Service describes one quotable service.
//
// Pricing model:
//   - BasePrice is charged once per order.
//   - UnitPrices maps numeric form fields to a per-unit price.
//   - Surcharges maps boolean form fields to a flat add-on when checked.
type Service struct {
	Type      string
	Title     string
	BasePrice float64

	UnitPrices map[string]float64
	Surcharges map[string]float64
}

// Catalog resolves service types to their configuration. Constructed once at
// startup and shared read-only.
type Catalog struct {
	services map[string]Service
}

func New(services ...Service) *Catalog {
	m := make(map[string]Service, len(services))
	for _, s := range services {
		m[s.Type] = s
	}
	return &Catalog{services: m}
}

// Default returns the built-in service set.
func Default() *Catalog {
	return New(
		Service{
			Type:      "uklid",
			Title:     "Pravidelný úklid",
			BasePrice: 500,
			UnitPrices: map[string]float64{
				"rooms":    250,
				"bathroom": 300,
			},
			Surcharges: map[string]float64{
				"ironing": 200,
				"windows": 350,
			},
		},
		Service{
			Type:      "mytioken",
			Title:     "Mytí oken",
			BasePrice: 300,
			UnitPrices: map[string]float64{
				"windows": 120,
			},
		},
		Service{
			Type:      "stehovani",
			Title:     "Stěhování",
			BasePrice: 1500,
			UnitPrices: map[string]float64{
				"rooms":  800,
				"floors": 400,
			},
			Surcharges: map[string]float64{
				"piano": 1200,
			},
		},
	)
}

// Lookup returns the configuration for a service type.
func (c *Catalog) Lookup(serviceType string) (Service, bool) {
	s, ok := c.services[strings.TrimSpace(serviceType)]
	return s, ok
}

// TitleFor returns the display title for a service type. Tokens produced by
// older encoders lack a title; when the catalog has no entry either, the
// last-resort derivation is the capitalized service type itself.
func (c *Catalog) TitleFor(serviceType string) string {
	if s, ok := c.Lookup(serviceType); ok {
		return s.Title
	}
	st := strings.TrimSpace(serviceType)
	if st == "" {
		return ""
	}
	return strings.ToUpper(st[:1]) + st[1:]
}
