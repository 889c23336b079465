package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/usecase/interfaces"
)

const clientRecordKeyPrefix = "clientOrder#"

var ErrInvalidClientID = errors.New("invalid client id")

// IClientRecordUseCase exposes the persisted client order record: customer
// identity and poptavka address/company data carried between the lead form
// and later steps. The record is note-free by construction.
type IClientRecordUseCase interface {
	Upsert(ctx context.Context, clientID string, patch entities.ClientOrderPatch) (entities.ClientOrderRecord, error)
	Get(ctx context.Context, clientID string) (entities.ClientOrderRecord, bool, error)
	Clear(ctx context.Context, clientID string) error
}

type ClientRecordUseCase struct {
	repo interfaces.IKeyValueRepository
	now  func() time.Time
}

var _ IClientRecordUseCase = (*ClientRecordUseCase)(nil)

func NewClientRecordUseCase(repo interfaces.IKeyValueRepository) *ClientRecordUseCase {
	return &ClientRecordUseCase{repo: repo, now: time.Now}
}

// Upsert merges the patch into the stored record and persists the result
// wholesale. The merged record is returned even when storage fails, so the
// flow can continue statelessly with the caller deciding what to do with the
// error.
func (u *ClientRecordUseCase) Upsert(ctx context.Context, clientID string, patch entities.ClientOrderPatch) (entities.ClientOrderRecord, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.ClientOrderRecord{}, ErrInvalidClientID
	}

	rec, _, loadErr := u.Get(ctx, clientID)
	rec.ClientID = clientID
	rec = rec.Apply(patch, u.now().UTC())

	payload, err := json.Marshal(rec)
	if err != nil {
		return rec, err
	}
	if loadErr != nil {
		return rec, loadErr
	}
	return rec, u.repo.Put(ctx, clientRecordKeyPrefix+clientID, payload)
}

// Get loads the stored record. Records written by an older shape may still
// contain note fields; they are stripped here as well, so no read path can
// ever surface note text from storage.
func (u *ClientRecordUseCase) Get(ctx context.Context, clientID string) (entities.ClientOrderRecord, bool, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.ClientOrderRecord{}, false, ErrInvalidClientID
	}

	payload, found, err := u.repo.Get(ctx, clientRecordKeyPrefix+clientID)
	if err != nil || !found {
		return entities.ClientOrderRecord{}, false, err
	}
	var rec entities.ClientOrderRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return entities.ClientOrderRecord{}, false, nil
	}
	rec.ClientID = clientID
	return rec.Sanitized(), true, nil
}

// Clear drops the whole record, e.g. when the user starts a new top-level
// flow.
func (u *ClientRecordUseCase) Clear(ctx context.Context, clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrInvalidClientID
	}
	return u.repo.Delete(ctx, clientRecordKeyPrefix+clientID)
}
