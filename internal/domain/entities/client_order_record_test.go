package entities

import (
	"testing"
	"time"
)

func TestClientOrderRecord_Apply(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	t.Run("partial merge preserves unspecified fields", func(t *testing.T) {
		rec := ClientOrderRecord{
			ClientID:       "c1",
			Customer:       Customer{FirstName: "Jan", LastName: "Novák", Email: "jan@example.com"},
			Poptavka:       Poptavka{Phone: "+420123456789", City: "Praha"},
			CurrentOrderID: "ord-1",
		}

		out := rec.Apply(ClientOrderPatch{
			Customer: Customer{Email: "novak@example.com"},
			Poptavka: Poptavka{Street: "Dlouhá 12"},
		}, now)

		if out.Customer.FirstName != "Jan" || out.Customer.LastName != "Novák" {
			t.Fatalf("expected name preserved, got %+v", out.Customer)
		}
		if out.Customer.Email != "novak@example.com" {
			t.Fatalf("expected email updated, got %q", out.Customer.Email)
		}
		if out.Poptavka.Phone != "+420123456789" || out.Poptavka.City != "Praha" {
			t.Fatalf("expected poptavka preserved, got %+v", out.Poptavka)
		}
		if out.Poptavka.Street != "Dlouhá 12" {
			t.Fatalf("expected street set, got %q", out.Poptavka.Street)
		}
		if !out.LastUpdated.Equal(now) {
			t.Fatalf("expected lastUpdated %v, got %v", now, out.LastUpdated)
		}
	})

	t.Run("changed order id invalidates the record", func(t *testing.T) {
		rec := ClientOrderRecord{
			ClientID:       "c1",
			Customer:       Customer{FirstName: "Jan"},
			Poptavka:       Poptavka{City: "Praha", Fields: FormData{"poptavkaNotes": "stará poznámka"}},
			CurrentOrderID: "ord-1",
		}

		out := rec.Apply(ClientOrderPatch{CurrentOrderID: "ord-2"}, now)

		if out.CurrentOrderID != "ord-2" {
			t.Fatalf("expected new order id, got %q", out.CurrentOrderID)
		}
		if out.Customer.FirstName != "" || out.Poptavka.City != "" {
			t.Fatalf("expected old record dropped, got %+v", out)
		}
		if _, ok := out.Poptavka.Fields["poptavkaNotes"]; ok {
			t.Fatalf("legacy note carried forward across order change")
		}
		if out.ClientID != "c1" {
			t.Fatalf("expected client id preserved")
		}
	})

	t.Run("same order id keeps the record", func(t *testing.T) {
		rec := ClientOrderRecord{ClientID: "c1", Customer: Customer{FirstName: "Jan"}, CurrentOrderID: "ord-1"}
		out := rec.Apply(ClientOrderPatch{CurrentOrderID: "ord-1", Poptavka: Poptavka{City: "Brno"}}, now)
		if out.Customer.FirstName != "Jan" || out.Poptavka.City != "Brno" {
			t.Fatalf("unexpected merge result: %+v", out)
		}
	})
}

func TestClientOrderRecord_NotesNeverPersist(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	// Every write path runs through Apply/Sanitized: seeding either note
	// slot must leave no trace in the resulting record.
	patches := []ClientOrderPatch{
		{Poptavka: Poptavka{Fields: FormData{FormNoteField: "FORM_NOTE_TEST"}}},
		{Poptavka: Poptavka{Fields: FormData{PoptavkaNoteField: "POPT_NOTE_TEST"}}},
		{Poptavka: Poptavka{Fields: FormData{"rooms": 3, FormNoteField: "x", PoptavkaNoteField: "y"}}},
	}
	for _, patch := range patches {
		out := ClientOrderRecord{ClientID: "c1"}.Apply(patch, now)
		if _, ok := out.Poptavka.Fields[FormNoteField]; ok {
			t.Fatalf("form note leaked into persisted record: %+v", out.Poptavka.Fields)
		}
		if _, ok := out.Poptavka.Fields[PoptavkaNoteField]; ok {
			t.Fatalf("poptavka note leaked into persisted record: %+v", out.Poptavka.Fields)
		}
	}

	out := ClientOrderRecord{ClientID: "c1"}.Apply(patches[2], now)
	if out.Poptavka.Fields["rooms"] != 3 {
		t.Fatalf("non-note field lost during sanitation: %+v", out.Poptavka.Fields)
	}
}

func TestStripNoteFields(t *testing.T) {
	if StripNoteFields(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}

	in := FormData{"rooms": 2, FormNoteField: "a", PoptavkaNoteField: "b"}
	out := StripNoteFields(in)
	if len(out) != 1 || out["rooms"] != 2 {
		t.Fatalf("unexpected strip result: %#v", out)
	}
	// Input stays untouched.
	if len(in) != 3 {
		t.Fatalf("strip mutated its input: %#v", in)
	}
}
