package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/token"
	"kalkulacka/internal/usecase/interfaces"
)

// Storage keys for the submission ledger. The unsuffixed key belongs to a
// prior format whose entries had no per-order granularity; it is purged on
// first read without importing its contents.
const (
	ledgerKeyPrefix       = "submittedOrders.v2#"
	legacyLedgerKeyPrefix = "submittedOrders#"
)

var ErrInvalidOrderID = errors.New("invalid order id")

// ISubmissionLedger is the deduplication set consulted before re-running
// downstream side effects for an order identifier seen again.
type ISubmissionLedger interface {
	IsSubmitted(ctx context.Context, clientID, orderID string) (bool, error)
	MarkSubmitted(ctx context.Context, clientID, orderID string) error
	Clear(ctx context.Context, clientID string) error
	Count(ctx context.Context, clientID string) (int, error)
	ResolveOrderID(rawToken string) (string, bool)
}

// SubmissionLedger stores submitted order identifiers wholesale, one JSON
// array per client id under a fixed storage key.
//
// Presence of an identifier means the downstream submission sequence already
// ran for it. This is a best-effort UX guard against double submission via
// back/forward navigation, not a consistency guarantee: two tabs writing the
// same ledger is last-write-wins and accepted.
type SubmissionLedger struct {
	repo  interfaces.IKeyValueRepository
	codec *token.Codec
	ids   *token.OrderIDGenerator

	purged sync.Map // client ids whose legacy key was already checked
}

var _ ISubmissionLedger = (*SubmissionLedger)(nil)

func NewSubmissionLedger(repo interfaces.IKeyValueRepository, codec *token.Codec, ids *token.OrderIDGenerator) *SubmissionLedger {
	return &SubmissionLedger{repo: repo, codec: codec, ids: ids}
}

func (l *SubmissionLedger) IsSubmitted(ctx context.Context, clientID, orderID string) (bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return false, ErrInvalidOrderID
	}
	ids, err := l.load(ctx, clientID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == orderID {
			return true, nil
		}
	}
	return false, nil
}

// MarkSubmitted appends the identifier to the ledger. Marking an identifier
// that is already present is a no-op, so a duplicate call leaves the count
// unchanged.
func (l *SubmissionLedger) MarkSubmitted(ctx context.Context, clientID, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}
	ids, err := l.load(ctx, clientID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == orderID {
			return nil
		}
	}
	ids = append(ids, orderID)
	payload, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return l.repo.Put(ctx, ledgerKeyPrefix+clientID, payload)
}

func (l *SubmissionLedger) Clear(ctx context.Context, clientID string) error {
	return l.repo.Delete(ctx, ledgerKeyPrefix+clientID)
}

func (l *SubmissionLedger) Count(ctx context.Context, clientID string) (int, error) {
	ids, err := l.load(ctx, clientID)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// ResolveOrderID decodes the token and returns its order identifier, or
// ok=false when the token itself is undecodable.
//
// A legacy token without an identifier gets a fallback synthesized from
// service type, price and the current time. The fallback is not stable
// across calls; it only answers "was this definitely not submitted before"
// and is never persisted as the canonical identifier.
func (l *SubmissionLedger) ResolveOrderID(rawToken string) (string, bool) {
	tok, ok := l.codec.Decode(rawToken)
	if !ok {
		return "", false
	}
	if id := strings.TrimSpace(tok.CalculationData.OrderID); id != "" {
		return id, true
	}
	return l.ids.Fallback(tok.ServiceType, tokenPrice(tok)), true
}

func (l *SubmissionLedger) load(ctx context.Context, clientID string) ([]string, error) {
	l.purgeLegacy(ctx, clientID)

	payload, found, err := l.repo.Get(ctx, ledgerKeyPrefix+clientID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(payload, &ids); err != nil {
		// A corrupted ledger protects nothing; start over.
		log.Printf("[ledger][load] corrupted ledger payload client_id=%s err=%v", clientID, err)
		return nil, nil
	}
	return ids, nil
}

// purgeLegacy removes the old-format ledger key the first time a client's
// ledger is read in this process. Its contents are never imported: the old
// format had no per-order granularity fine enough to trust.
func (l *SubmissionLedger) purgeLegacy(ctx context.Context, clientID string) {
	if _, done := l.purged.LoadOrStore(clientID, true); done {
		return
	}
	_, found, err := l.repo.Get(ctx, legacyLedgerKeyPrefix+clientID)
	if err != nil {
		// Retry on the next read.
		l.purged.Delete(clientID)
		return
	}
	if !found {
		return
	}
	if err := l.repo.Delete(ctx, legacyLedgerKeyPrefix+clientID); err != nil {
		log.Printf("[ledger][migrate] failed removing legacy key client_id=%s err=%v", clientID, err)
		l.purged.Delete(clientID)
		return
	}
	log.Printf("[ledger][migrate] removed legacy ledger key client_id=%s", clientID)
}

func tokenPrice(tok entities.OrderToken) float64 {
	if tok.TotalPrice != 0 {
		return tok.TotalPrice
	}
	return tok.CalculationData.Price
}
