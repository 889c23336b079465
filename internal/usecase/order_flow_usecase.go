package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"kalkulacka/internal/domain/catalog"
	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/token"
	"kalkulacka/internal/usecase/interfaces"
)

var (
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidToken       = errors.New("invalid order token")
	ErrAlreadySubmitted   = errors.New("order already submitted")
)

// QuoteView is returned to the quoting form: the encoded token plus the
// values the result page will display.
type QuoteView struct {
	Token        string
	OrderID      string
	ServiceType  string
	ServiceTitle string
	TotalPrice   float64
	Currency     string
	ResultPath   string
}

// ResultView is the decoded state of a result-page visit.
type ResultView struct {
	Token            string
	OrderID          string
	AlreadySubmitted bool
	ServiceType      string
	ServiceTitle     string
	TotalPrice       float64
	Currency         string
	FormData         entities.FormData

	// Stateless is set when the ledger was unavailable: the view is served
	// without resubmission protection for this visit.
	Stateless bool
}

// LeadInput is the follow-up lead form. The poptavka note travels here and
// only here; it is attached to the rebuilt token, never to the persisted
// record.
type LeadInput struct {
	Customer     entities.Customer
	Poptavka     entities.Poptavka
	PoptavkaNote string
}

// SubmissionView is the outcome of a successful lead submission.
type SubmissionView struct {
	OrderID         string
	Token           string
	ContractID      string
	Document        entities.Document
	RecordPersisted bool
}

// IOrderFlowUseCase drives the quote → redirect → lead-submission flow.
type IOrderFlowUseCase interface {
	CreateQuote(ctx context.Context, serviceType string, form entities.FormData, existingToken string) (QuoteView, error)
	ResolveResult(ctx context.Context, clientID, rawToken string) (ResultView, error)
	SubmitLead(ctx context.Context, clientID, rawToken string, lead LeadInput) (SubmissionView, error)
}

type OrderFlowUseCase struct {
	codec     *token.Codec
	ids       *token.OrderIDGenerator
	catalog   *catalog.Catalog
	calc      interfaces.IPriceCalculator
	ledger    ISubmissionLedger
	records   IClientRecordUseCase
	renderer  interfaces.IDocumentRenderer
	contracts interfaces.IContractGateway
	sinks     []interfaces.ISubmissionSink
	now       func() time.Time
}

var _ IOrderFlowUseCase = (*OrderFlowUseCase)(nil)

func NewOrderFlowUseCase(
	codec *token.Codec,
	ids *token.OrderIDGenerator,
	cat *catalog.Catalog,
	calc interfaces.IPriceCalculator,
	ledger ISubmissionLedger,
	records IClientRecordUseCase,
	renderer interfaces.IDocumentRenderer,
	contracts interfaces.IContractGateway,
	sinks []interfaces.ISubmissionSink,
) *OrderFlowUseCase {
	return &OrderFlowUseCase{
		codec:     codec,
		ids:       ids,
		catalog:   cat,
		calc:      calc,
		ledger:    ledger,
		records:   records,
		renderer:  renderer,
		contracts: contracts,
		sinks:     sinks,
		now:       time.Now,
	}
}

// CreateQuote runs the price calculator over the form answers and encodes
// the result into a fresh token. When the caller passes the token of an
// earlier attempt being rebuilt, its order identifier is carried over; the
// same quote always maps to the same identifier.
func (u *OrderFlowUseCase) CreateQuote(ctx context.Context, serviceType string, form entities.FormData, existingToken string) (QuoteView, error) {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return QuoteView{}, ErrInvalidServiceType
	}

	result, err := u.calc.Calculate(serviceType, form)
	if err != nil {
		return QuoteView{}, fmt.Errorf("calculate: %w", err)
	}

	var prev *entities.OrderToken
	if existingToken != "" {
		if t, ok := u.codec.Decode(existingToken); ok {
			prev = &t
		}
	}
	orderID := u.ids.GetOrCreate(prev)
	title := u.catalog.TitleFor(serviceType)

	tok := entities.OrderToken{
		ServiceType:  serviceType,
		ServiceTitle: title,
		TotalPrice:   result.Total,
		Currency:     entities.DefaultCurrency,
		CalculationData: entities.CalculationData{
			CalculationResult: result,
			FormData:          form.Clone(),
			OrderID:           orderID,
			Timestamp:         u.now().UTC(),
			Price:             result.Total,
			ServiceTitle:      title,
		},
	}
	raw, err := u.codec.Encode(tok)
	if err != nil {
		return QuoteView{}, fmt.Errorf("encode token: %w", err)
	}

	return QuoteView{
		Token:        raw,
		OrderID:      orderID,
		ServiceType:  serviceType,
		ServiceTitle: title,
		TotalPrice:   result.Total,
		Currency:     entities.DefaultCurrency,
		ResultPath:   "/v1/calculator/result?order=" + raw,
	}, nil
}

// ResolveResult decodes a result-page token and decides which view to serve:
// broken link, already submitted, or the quote itself.
func (u *OrderFlowUseCase) ResolveResult(ctx context.Context, clientID, rawToken string) (ResultView, error) {
	tok, ok := u.codec.Decode(rawToken)
	if !ok {
		return ResultView{}, ErrInvalidToken
	}

	orderID := strings.TrimSpace(tok.CalculationData.OrderID)
	ledgerID := orderID
	if ledgerID == "" {
		ledgerID = u.ids.Fallback(tok.ServiceType, tokenPrice(tok))
	}

	view := ResultView{
		Token:        rawToken,
		OrderID:      orderID,
		ServiceType:  tok.ServiceType,
		ServiceTitle: tok.ServiceTitle,
		TotalPrice:   tokenPrice(tok),
		Currency:     tok.Currency,
		FormData:     tok.CalculationData.FormData,
	}
	if view.ServiceTitle == "" {
		view.ServiceTitle = u.catalog.TitleFor(tok.ServiceType)
	}
	if view.Currency == "" {
		view.Currency = entities.DefaultCurrency
	}

	if strings.TrimSpace(clientID) == "" {
		view.Stateless = true
		return view, nil
	}
	submitted, err := u.ledger.IsSubmitted(ctx, clientID, ledgerID)
	if err != nil {
		log.Printf("[flow][result] ledger unavailable, serving stateless client_id=%s err=%v", clientID, err)
		view.Stateless = true
		return view, nil
	}
	view.AlreadySubmitted = submitted
	return view, nil
}

// SubmitLead merges the token with the client record, runs the downstream
// submission sequence and records the order identifier in the ledger.
//
// The ledger is written only after every side effect succeeded; an attempt
// cancelled or failed midway leaves no entry and is safe to retry in full.
func (u *OrderFlowUseCase) SubmitLead(ctx context.Context, clientID, rawToken string, lead LeadInput) (SubmissionView, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return SubmissionView{}, ErrInvalidClientID
	}
	tok, ok := u.codec.Decode(rawToken)
	if !ok {
		return SubmissionView{}, ErrInvalidToken
	}

	orderID := u.ids.GetOrCreate(&tok)

	ledgerID := strings.TrimSpace(tok.CalculationData.OrderID)
	if ledgerID == "" {
		ledgerID = u.ids.Fallback(tok.ServiceType, tokenPrice(tok))
	}
	stateless := false
	submitted, err := u.ledger.IsSubmitted(ctx, clientID, ledgerID)
	if err != nil {
		log.Printf("[flow][submit] ledger unavailable, continuing stateless client_id=%s err=%v", clientID, err)
		stateless = true
	}
	if submitted {
		return SubmissionView{}, ErrAlreadySubmitted
	}

	rec, recErr := u.records.Upsert(ctx, clientID, entities.ClientOrderPatch{
		Customer:       lead.Customer,
		Poptavka:       lead.Poptavka,
		CurrentOrderID: orderID,
	})
	if recErr != nil {
		log.Printf("[flow][submit] record store unavailable, continuing stateless client_id=%s err=%v", clientID, recErr)
	}

	rebuilt := u.rebuildToken(tok, orderID, lead.PoptavkaNote)
	raw, err := u.codec.Encode(rebuilt)
	if err != nil {
		return SubmissionView{}, fmt.Errorf("encode token: %w", err)
	}

	merged := entities.MergeForSubmission(rebuilt, rec)
	if merged.ServiceTitle == "" {
		merged.ServiceTitle = u.catalog.TitleFor(merged.ServiceType)
	}
	if merged.Currency == "" {
		merged.Currency = entities.DefaultCurrency
	}

	doc, err := u.renderer.Render(merged)
	if err != nil {
		return SubmissionView{}, fmt.Errorf("render document: %w", err)
	}

	var contractID string
	if u.contracts != nil {
		contractID, _, err = u.contracts.CreateContract(ctx, merged)
		if err != nil {
			return SubmissionView{}, fmt.Errorf("create contract: %w", err)
		}
	}
	for _, sink := range u.sinks {
		if err := sink.Submit(ctx, merged, doc); err != nil {
			return SubmissionView{}, fmt.Errorf("submission sink %s: %w", sink.Name(), err)
		}
	}

	if !stateless {
		if err := u.ledger.MarkSubmitted(ctx, clientID, orderID); err != nil {
			log.Printf("[flow][submit] failed recording submission client_id=%s order_id=%s err=%v", clientID, orderID, err)
		}
	}

	return SubmissionView{
		OrderID:         orderID,
		Token:           raw,
		ContractID:      contractID,
		Document:        doc,
		RecordPersisted: recErr == nil,
	}, nil
}

// rebuildToken re-encodes the decoded token with the late-bound lead fields
// attached. The original order identifier is preserved; only the poptavka
// note slot in the form data changes.
func (u *OrderFlowUseCase) rebuildToken(tok entities.OrderToken, orderID, poptavkaNote string) entities.OrderToken {
	out := tok
	out.CalculationData.OrderID = orderID
	form := tok.CalculationData.FormData.Clone()
	if poptavkaNote != "" {
		form[entities.PoptavkaNoteField] = poptavkaNote
	} else {
		delete(form, entities.PoptavkaNoteField)
	}
	out.CalculationData.FormData = form
	return out
}
