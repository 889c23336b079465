package token

import (
	"encoding/base64"
	"net/url"
	"reflect"
	"testing"
	"time"

	"kalkulacka/internal/domain/entities"
)

func sampleToken() entities.OrderToken {
	return entities.OrderToken{
		ServiceType:  "uklid",
		ServiceTitle: "Pravidelný úklid",
		TotalPrice:   1250,
		Currency:     "Kč",
		CalculationData: entities.CalculationData{
			CalculationResult: entities.CalculationResult{
				Total:     1250,
				Breakdown: map[string]float64{"base": 500, "rooms": 750},
			},
			FormData: entities.FormData{
				"rooms":   float64(3),
				"ironing": true,
				"floors":  []any{"1", "2"},
				"notes":   "prosím v pátek",
			},
			OrderID:      "ord-1700000000000-abcd1234",
			Timestamp:    time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
			Price:        1250,
			ServiceTitle: "Pravidelný úklid",
		},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec()
	in := sampleToken()

	raw, err := c.Encode(in)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	out, ok := c.Decode(raw)
	if !ok {
		t.Fatalf("expected decode to succeed")
	}

	if out.ServiceType != in.ServiceType || out.ServiceTitle != in.ServiceTitle {
		t.Fatalf("service identity mismatch: %+v", out)
	}
	if out.TotalPrice != in.TotalPrice || out.Currency != in.Currency {
		t.Fatalf("price mismatch: %+v", out)
	}
	if out.CalculationData.OrderID != in.CalculationData.OrderID {
		t.Fatalf("expected order id %q, got %q", in.CalculationData.OrderID, out.CalculationData.OrderID)
	}
	if !out.CalculationData.Timestamp.Equal(in.CalculationData.Timestamp) {
		t.Fatalf("timestamp mismatch: %v vs %v", out.CalculationData.Timestamp, in.CalculationData.Timestamp)
	}
	if !reflect.DeepEqual(out.CalculationData.FormData, in.CalculationData.FormData) {
		t.Fatalf("form data mismatch: %#v vs %#v", out.CalculationData.FormData, in.CalculationData.FormData)
	}
	if out.CalculationData.Total != in.CalculationData.Total {
		t.Fatalf("calculation total mismatch")
	}
	if !reflect.DeepEqual(out.CalculationData.Breakdown, in.CalculationData.Breakdown) {
		t.Fatalf("breakdown mismatch")
	}
}

func TestCodec_EncodeDoesNotMutateInput(t *testing.T) {
	c := NewCodec()
	in := sampleToken()
	before := len(in.CalculationData.FormData)

	if _, err := c.Encode(in); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if len(in.CalculationData.FormData) != before {
		t.Fatalf("encode mutated its input")
	}
	if in.CalculationData.FormData["notes"] != "prosím v pátek" {
		t.Fatalf("encode mutated form data")
	}
}

func TestCodec_OutputIsURLSafe(t *testing.T) {
	c := NewCodec()
	raw, err := c.Encode(sampleToken())
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if escaped := url.QueryEscape(raw); escaped != raw {
		t.Fatalf("token requires query escaping: %q vs %q", raw, escaped)
	}
}

func TestCodec_DecodeMalformed(t *testing.T) {
	c := NewCodec()

	t.Run("too short", func(t *testing.T) {
		if _, ok := c.Decode("abc"); ok {
			t.Fatalf("expected rejection of short input")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, ok := c.Decode(""); ok {
			t.Fatalf("expected rejection of empty input")
		}
	})

	t.Run("foreign input", func(t *testing.T) {
		if _, ok := c.Decode("!!!not-a-token-at-all!!!"); ok {
			t.Fatalf("expected rejection of foreign input")
		}
	})

	t.Run("valid base64, not json", func(t *testing.T) {
		if _, ok := c.Decode("dGhpcyBpcyBub3QganNvbiBhdCBhbGw"); ok {
			t.Fatalf("expected rejection of non-json payload")
		}
	})

	t.Run("truncated token", func(t *testing.T) {
		raw, err := c.Encode(sampleToken())
		if err != nil {
			t.Fatalf("unexpected encode error: %v", err)
		}
		if _, ok := c.Decode(raw[:len(raw)/2]); ok {
			t.Fatalf("expected rejection of truncated token")
		}
	})
}

func TestCodec_ForwardCompatibleDecode(t *testing.T) {
	c := NewCodec()

	t.Run("legacy shape without orderId and serviceTitle", func(t *testing.T) {
		// Token produced by an older encoder: no order id, no title, but a
		// denormalized price inside calculationData.
		legacy := `{"serviceType":"uklid","totalPrice":900,"calculationData":{"formData":{"rooms":2},"price":900}}`
		raw := encodeRawJSON(t, legacy)

		out, ok := c.Decode(raw)
		if !ok {
			t.Fatalf("expected legacy token to decode")
		}
		if out.CalculationData.OrderID != "" {
			t.Fatalf("expected absent order id, got %q", out.CalculationData.OrderID)
		}
		if out.ServiceTitle != "" {
			t.Fatalf("expected absent title, got %q", out.ServiceTitle)
		}
		if out.CalculationData.Price != 900 {
			t.Fatalf("expected denormalized price 900, got %v", out.CalculationData.Price)
		}
	})

	t.Run("unknown extra fields are ignored", func(t *testing.T) {
		withExtras := `{"serviceType":"uklid","totalPrice":900,"someOldField":true,"calculationData":{"formData":{},"legacyBlob":{"a":1}}}`
		raw := encodeRawJSON(t, withExtras)

		out, ok := c.Decode(raw)
		if !ok {
			t.Fatalf("expected decode to tolerate unknown fields")
		}
		if out.ServiceType != "uklid" {
			t.Fatalf("expected serviceType uklid, got %q", out.ServiceType)
		}
	})
}

// encodeRawJSON mirrors the encoder's wire format for hand-built legacy
// payloads.
func encodeRawJSON(t *testing.T, payload string) string {
	t.Helper()
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}
