package token

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"kalkulacka/internal/domain/entities"
)

// OrderIDGenerator mints order identifiers: one per calculation attempt,
// unique with overwhelming probability within a client session. No server
// coordination is assumed.
type OrderIDGenerator struct {
	now func() time.Time
}

func NewOrderIDGenerator() *OrderIDGenerator {
	return &OrderIDGenerator{now: time.Now}
}

// Generate returns a fresh identifier with a time component and a random
// component.
func (g *OrderIDGenerator) Generate() string {
	return fmt.Sprintf("ord-%d-%s", g.now().UTC().UnixMilli(), shortRandom())
}

// GetOrCreate is the single place where "reuse vs. mint" is decided. Every
// caller that rebuilds a token after adding late-bound fields goes through
// here, so one user action can never end up with two identifiers.
func (g *OrderIDGenerator) GetOrCreate(existing *entities.OrderToken) string {
	if existing != nil {
		if id := strings.TrimSpace(existing.CalculationData.OrderID); id != "" {
			return id
		}
	}
	return g.Generate()
}

// Fallback synthesizes an identifier for a legacy token minted before order
// identifiers existed. It embeds the current time, so it is NOT stable across
// calls: good enough for a one-shot "definitely not submitted before" ledger
// check, never persisted as the canonical identifier.
func (g *OrderIDGenerator) Fallback(serviceType string, price float64) string {
	return fmt.Sprintf("legacy-%s-%s-%d",
		strings.TrimSpace(serviceType),
		strconv.FormatFloat(price, 'f', -1, 64),
		g.now().UTC().UnixNano())
}

func shortRandom() string {
	id := uuid.NewString()
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
