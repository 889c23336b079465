package interfaces

import (
	"context"

	"kalkulacka/internal/domain/entities"
)

// ISubmissionSink is one downstream side effect of a lead submission
// (spreadsheet logging, email-list sync). Sinks run after contract creation
// and before the ledger records the order as submitted.
type ISubmissionSink interface {
	Name() string
	Submit(ctx context.Context, order entities.MergedOrder, doc entities.Document) error
}
