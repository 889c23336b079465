// Package token implements the order-token codec and the order identifier
// generator: the state transport that carries one quote and its form answers
// across the result-page redirect inside a single URL query parameter.
package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"kalkulacka/internal/domain/entities"
)

// minTokenLength rejects obviously foreign input before attempting a
// structural decode. Any token the encoder produces is far longer.
const minTokenLength = 16

// Codec encodes and decodes OrderToken records. One instance is constructed
// per application and shared; it holds no state.
//
// The codec's sole contract is a faithful structural round-trip. It performs
// no semantic validation (a negative price encodes fine) and adds no
// tamper-proofing: the token is convenience state transport, not a security
// boundary.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

// Encode serializes the record into a string safe to place in a URL query
// parameter without further escaping. The input is not mutated.
func (c *Codec) Encode(tok entities.OrderToken) (string, error) {
	b, err := json.Marshal(tok)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Decode parses a token produced by Encode, by an older encoder version, or
// by nobody at all. It reports ok=false for malformed, truncated or foreign
// input so callers can render a "broken link" state instead of failing.
//
// Fields added after a token was minted decode as absent; unknown fields in
// older token shapes are ignored.
func (c *Codec) Decode(raw string) (entities.OrderToken, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < minTokenLength {
		return entities.OrderToken{}, false
	}
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		// Tolerate padded variants from clients that re-encode the value.
		b, err = base64.URLEncoding.DecodeString(raw)
		if err != nil {
			return entities.OrderToken{}, false
		}
	}
	var tok entities.OrderToken
	if err := json.Unmarshal(b, &tok); err != nil {
		return entities.OrderToken{}, false
	}
	return tok, true
}
