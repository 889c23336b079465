package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"kalkulacka/internal/domain/entities"
	mock_interfaces "kalkulacka/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientRecordUseCase_UpsertAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv, _ := fakeStorage(ctrl)
	u := NewClientRecordUseCase(kv)
	ctx := context.Background()

	_, err := u.Upsert(ctx, "c1", entities.ClientOrderPatch{
		Customer:       entities.Customer{FirstName: "Jan", LastName: "Novák", Email: "jan@example.com"},
		Poptavka:       entities.Poptavka{Phone: "+420123", City: "Praha"},
		CurrentOrderID: "ord-1",
	})
	if err != nil {
		t.Fatalf("unexpected upsert error: %v", err)
	}

	// A later partial patch keeps everything not restated.
	_, err = u.Upsert(ctx, "c1", entities.ClientOrderPatch{
		Poptavka:       entities.Poptavka{Street: "Dlouhá 12"},
		CurrentOrderID: "ord-1",
	})
	if err != nil {
		t.Fatalf("unexpected upsert error: %v", err)
	}

	rec, found, err := u.Get(ctx, "c1")
	if err != nil || !found {
		t.Fatalf("expected stored record, got found=%v err=%v", found, err)
	}
	if rec.Customer.FirstName != "Jan" || rec.Customer.Email != "jan@example.com" {
		t.Fatalf("customer lost across patches: %+v", rec.Customer)
	}
	if rec.Poptavka.City != "Praha" || rec.Poptavka.Street != "Dlouhá 12" {
		t.Fatalf("poptavka merge wrong: %+v", rec.Poptavka)
	}
	if rec.CurrentOrderID != "ord-1" {
		t.Fatalf("expected order id ord-1, got %q", rec.CurrentOrderID)
	}
}

func TestClientRecordUseCase_OrderChangeInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv, _ := fakeStorage(ctrl)
	u := NewClientRecordUseCase(kv)
	ctx := context.Background()

	_, _ = u.Upsert(ctx, "c1", entities.ClientOrderPatch{
		Customer:       entities.Customer{FirstName: "Jan"},
		CurrentOrderID: "ord-1",
	})
	_, _ = u.Upsert(ctx, "c1", entities.ClientOrderPatch{CurrentOrderID: "ord-2"})

	rec, found, err := u.Get(ctx, "c1")
	if err != nil || !found {
		t.Fatalf("expected stored record, got found=%v err=%v", found, err)
	}
	if rec.Customer.FirstName != "" {
		t.Fatalf("stale customer survived order change: %+v", rec.Customer)
	}
	if rec.CurrentOrderID != "ord-2" {
		t.Fatalf("expected ord-2, got %q", rec.CurrentOrderID)
	}
}

func TestClientRecordUseCase_StoredPayloadIsNoteFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv, store := fakeStorage(ctrl)
	u := NewClientRecordUseCase(kv)
	ctx := context.Background()

	_, err := u.Upsert(ctx, "c1", entities.ClientOrderPatch{
		Poptavka: entities.Poptavka{Fields: entities.FormData{
			"rooms":                    3,
			entities.FormNoteField:     "FORM_NOTE_TEST",
			entities.PoptavkaNoteField: "POPT_NOTE_TEST",
		}},
	})
	if err != nil {
		t.Fatalf("unexpected upsert error: %v", err)
	}

	payload, ok := store["clientOrder#c1"]
	if !ok {
		t.Fatalf("record not written under clientOrder#c1: %v", store)
	}
	if !json.Valid(payload) {
		t.Fatalf("stored payload not JSON: %s", payload)
	}
	for _, needle := range []string{"FORM_NOTE_TEST", "POPT_NOTE_TEST"} {
		if strings.Contains(string(payload), needle) {
			t.Fatalf("note text persisted: %s", payload)
		}
	}

	var rec entities.ClientOrderRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		t.Fatalf("stored payload does not decode: %v", err)
	}
	if rec.Poptavka.Fields["rooms"] != float64(3) {
		t.Fatalf("non-note field lost in storage: %+v", rec.Poptavka.Fields)
	}
}

func TestClientRecordUseCase_GetStripsLegacyNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv, store := fakeStorage(ctrl)
	u := NewClientRecordUseCase(kv)
	ctx := context.Background()

	// Record persisted by an earlier shape that did not strip note slots.
	store["clientOrder#c1"] = json.RawMessage(
		`{"customer":{"firstName":"Jan"},"poptavka":{"fields":{"rooms":3,"notes":"stale","poptavkaNotes":"stale too"}}}`)

	rec, found, err := u.Get(ctx, "c1")
	if err != nil || !found {
		t.Fatalf("expected record, got found=%v err=%v", found, err)
	}
	if _, ok := rec.Poptavka.Fields[entities.FormNoteField]; ok {
		t.Fatalf("legacy form note surfaced on read: %+v", rec.Poptavka.Fields)
	}
	if _, ok := rec.Poptavka.Fields[entities.PoptavkaNoteField]; ok {
		t.Fatalf("legacy poptavka note surfaced on read: %+v", rec.Poptavka.Fields)
	}
	if rec.Poptavka.Fields["rooms"] != float64(3) {
		t.Fatalf("non-note field lost on read: %+v", rec.Poptavka.Fields)
	}
}

func TestClientRecordUseCase_InvalidClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv := mock_interfaces.NewMockIKeyValueRepository(ctrl)
	u := NewClientRecordUseCase(kv)
	ctx := context.Background()

	if _, err := u.Upsert(ctx, "  ", entities.ClientOrderPatch{}); !errors.Is(err, ErrInvalidClientID) {
		t.Fatalf("expected ErrInvalidClientID, got %v", err)
	}
	if _, _, err := u.Get(ctx, ""); !errors.Is(err, ErrInvalidClientID) {
		t.Fatalf("expected ErrInvalidClientID, got %v", err)
	}
	if err := u.Clear(ctx, ""); !errors.Is(err, ErrInvalidClientID) {
		t.Fatalf("expected ErrInvalidClientID, got %v", err)
	}
}

func TestClientRecordUseCase_StorageErrorStillReturnsMergedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv := mock_interfaces.NewMockIKeyValueRepository(ctrl)
	kv.EXPECT().Get(gomock.Any(), "clientOrder#c1").Return(nil, false, errors.New("storage down"))
	u := NewClientRecordUseCase(kv)

	rec, err := u.Upsert(context.Background(), "c1", entities.ClientOrderPatch{
		Customer: entities.Customer{FirstName: "Jan"},
	})
	if err == nil {
		t.Fatalf("expected storage error to surface")
	}
	if rec.Customer.FirstName != "Jan" {
		t.Fatalf("expected merged record despite error, got %+v", rec)
	}
}
