package entities

import "testing"

func tokenWithNotes(formNote, poptavkaNote string) OrderToken {
	form := FormData{"rooms": 3}
	if formNote != "" {
		form[FormNoteField] = formNote
	}
	if poptavkaNote != "" {
		form[PoptavkaNoteField] = poptavkaNote
	}
	return OrderToken{
		ServiceType:  "uklid",
		ServiceTitle: "Pravidelný úklid",
		TotalPrice:   1250,
		Currency:     DefaultCurrency,
		CalculationData: CalculationData{
			FormData: form,
			OrderID:  "ord-1",
		},
	}
}

func TestMergeForSubmission_NoteSeparation(t *testing.T) {
	rec := ClientOrderRecord{
		ClientID: "c1",
		Customer: Customer{FirstName: "Jan", LastName: "Novák", Email: "jan@example.com"},
		Poptavka: Poptavka{Phone: "+420123", Fields: FormData{"parking": true}},
	}

	t.Run("no notes stay absent", func(t *testing.T) {
		m := MergeForSubmission(tokenWithNotes("", ""), rec)
		if m.HasFormNote() || m.HasPoptavkaNote() {
			t.Fatalf("expected both notes absent, got %+v", m)
		}
		if _, ok := m.Answers[FormNoteField]; ok {
			t.Fatalf("note slot leaked into answers")
		}
	})

	t.Run("form note only", func(t *testing.T) {
		m := MergeForSubmission(tokenWithNotes("FORM_NOTE_TEST", ""), rec)
		if m.FormNote != "FORM_NOTE_TEST" {
			t.Fatalf("expected form note, got %q", m.FormNote)
		}
		if m.HasPoptavkaNote() {
			t.Fatalf("poptavka note appeared from nowhere: %q", m.PoptavkaNote)
		}
	})

	t.Run("poptavka note only", func(t *testing.T) {
		m := MergeForSubmission(tokenWithNotes("", "POPT_NOTE_TEST"), rec)
		if m.PoptavkaNote != "POPT_NOTE_TEST" {
			t.Fatalf("expected poptavka note, got %q", m.PoptavkaNote)
		}
		if m.HasFormNote() {
			t.Fatalf("form note appeared from nowhere: %q", m.FormNote)
		}
	})

	t.Run("both notes keep their own slots", func(t *testing.T) {
		m := MergeForSubmission(tokenWithNotes("FORM_NOTE_TEST", "POPT_NOTE_TEST"), rec)
		if m.FormNote != "FORM_NOTE_TEST" || m.PoptavkaNote != "POPT_NOTE_TEST" {
			t.Fatalf("notes swapped or lost: form=%q poptavka=%q", m.FormNote, m.PoptavkaNote)
		}
	})
}

func TestMergeForSubmission_GenericMergeExcludesNotes(t *testing.T) {
	tok := tokenWithNotes("FORM_NOTE_TEST", "POPT_NOTE_TEST")
	rec := ClientOrderRecord{
		Poptavka: Poptavka{Fields: FormData{"parking": true, "rooms": 99}},
	}

	m := MergeForSubmission(tok, rec)

	if _, ok := m.Answers[FormNoteField]; ok {
		t.Fatalf("form note slot present in generic answers")
	}
	if _, ok := m.Answers[PoptavkaNoteField]; ok {
		t.Fatalf("poptavka note slot present in generic answers")
	}
	// Token answers win over persisted answers for the same key.
	if m.Answers["rooms"] != 3 {
		t.Fatalf("expected token answer to win, got %v", m.Answers["rooms"])
	}
	if m.Answers["parking"] != true {
		t.Fatalf("expected persisted answer merged, got %v", m.Answers["parking"])
	}
}

func TestMergeForSubmission_RecordIsNeverANoteSource(t *testing.T) {
	// A record written by an older shape could still carry note keys in its
	// field bag; the merge must not surface them.
	rec := ClientOrderRecord{
		Poptavka: Poptavka{Fields: FormData{
			FormNoteField:     "stale form note",
			PoptavkaNoteField: "stale poptavka note",
		}},
	}

	m := MergeForSubmission(tokenWithNotes("", ""), rec)

	if m.HasFormNote() || m.HasPoptavkaNote() {
		t.Fatalf("stale note surfaced from persisted record: %+v", m)
	}
	if _, ok := m.Poptavka.Fields[PoptavkaNoteField]; ok {
		t.Fatalf("stale note kept in merged poptavka fields")
	}
}

func TestMergeForSubmission_DoesNotMutateInputs(t *testing.T) {
	tok := tokenWithNotes("FORM_NOTE_TEST", "")
	rec := ClientOrderRecord{Poptavka: Poptavka{Fields: FormData{"parking": true}}}

	_ = MergeForSubmission(tok, rec)

	if tok.CalculationData.FormData[FormNoteField] != "FORM_NOTE_TEST" {
		t.Fatalf("merge mutated token form data")
	}
	if rec.Poptavka.Fields["parking"] != true || len(rec.Poptavka.Fields) != 1 {
		t.Fatalf("merge mutated record fields: %#v", rec.Poptavka.Fields)
	}
}
