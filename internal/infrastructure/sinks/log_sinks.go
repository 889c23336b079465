// Package sinks holds the downstream submission collaborators that run once
// per submitted lead. The spreadsheet and email providers are external; the
// implementations here log the submission in their stead.
package sinks

import (
	"context"
	"log"

	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/usecase/interfaces"
)

// SpreadsheetLogSink stands in for the spreadsheet-logging provider.
type SpreadsheetLogSink struct{}

var _ interfaces.ISubmissionSink = (*SpreadsheetLogSink)(nil)

func NewSpreadsheetLogSink() *SpreadsheetLogSink { return &SpreadsheetLogSink{} }

func (s *SpreadsheetLogSink) Name() string { return "spreadsheet" }

func (s *SpreadsheetLogSink) Submit(_ context.Context, order entities.MergedOrder, _ entities.Document) error {
	log.Printf("[sink][spreadsheet] logged order_id=%s service=%s total=%.2f %s",
		order.OrderID, order.ServiceType, order.TotalPrice, order.Currency)
	return nil
}

// EmailSyncSink stands in for the email-list provider.
type EmailSyncSink struct{}

var _ interfaces.ISubmissionSink = (*EmailSyncSink)(nil)

func NewEmailSyncSink() *EmailSyncSink { return &EmailSyncSink{} }

func (s *EmailSyncSink) Name() string { return "email" }

func (s *EmailSyncSink) Submit(_ context.Context, order entities.MergedOrder, _ entities.Document) error {
	log.Printf("[sink][email] synced order_id=%s email=%s", order.OrderID, order.Customer.Email)
	return nil
}
