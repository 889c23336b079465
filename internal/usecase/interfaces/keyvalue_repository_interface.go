package interfaces

import (
	"context"
	"encoding/json"
)

// IKeyValueRepository abstracts the persisted client-state storage.
//
// Both persisted records of the flow live behind it, each wholesale under its
// own fixed storage key: the client order record and the submission ledger.
// There are no partial-field transactions.
//
// Get distinguishes "no data yet" (found=false, err=nil) from "storage
// inaccessible" (err != nil) so callers can degrade gracefully instead of
// failing the whole flow.
type IKeyValueRepository interface {
	Get(ctx context.Context, key string) (payload json.RawMessage, found bool, err error)
	Put(ctx context.Context, key string, payload json.RawMessage) error
	Delete(ctx context.Context, key string) error
}
