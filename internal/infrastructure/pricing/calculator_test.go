package pricing

import (
	"errors"
	"testing"

	"kalkulacka/internal/domain/catalog"
	"kalkulacka/internal/domain/entities"
)

func TestCoefficientCalculator_Calculate(t *testing.T) {
	calc := NewCoefficientCalculator(catalog.Default())

	t.Run("base plus units plus surcharges", func(t *testing.T) {
		// uklid: base 500, rooms 250/unit, ironing +200.
		result, err := calc.Calculate("uklid", entities.FormData{
			"rooms":   float64(3),
			"ironing": true,
			"windows": false,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 500+3*250+200 {
			t.Fatalf("unexpected total: %v (%+v)", result.Total, result.Breakdown)
		}
		if result.Breakdown["base"] != 500 || result.Breakdown["rooms"] != 750 {
			t.Fatalf("unexpected breakdown: %+v", result.Breakdown)
		}
		if _, ok := result.Breakdown["windows"]; ok {
			t.Fatalf("unchecked surcharge priced: %+v", result.Breakdown)
		}
	})

	t.Run("unrecognized fields are ignored", func(t *testing.T) {
		result, err := calc.Calculate("mytioken", entities.FormData{
			"windows":       float64(5),
			"notes":         "tohle není číslo",
			"poptavkaNotes": "ani tohle",
			"color":         "blue",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 300+5*120 {
			t.Fatalf("unexpected total: %v", result.Total)
		}
	})

	t.Run("int answers count as quantities", func(t *testing.T) {
		result, err := calc.Calculate("stehovani", entities.FormData{"rooms": 2, "piano": true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1500+2*800+1200 {
			t.Fatalf("unexpected total: %v", result.Total)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		if _, err := calc.Calculate("zahrada", nil); !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
	})
}
