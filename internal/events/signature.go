package events

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/feral-file/ff-sales-engine/internal/adapter"
)

// SignedEvent is an event serialized for delivery together with its signature
type SignedEvent struct {
	Payload   []byte
	Signature string
	Timestamp int64
}

// Signer produces HMAC-SHA256 signatures over canonical (RFC 8785) event payloads
type Signer struct {
	secret []byte
	json   adapter.JSON
	jcs    adapter.JCS
}

// NewSigner creates a signer for the given shared secret
func NewSigner(secret string, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) *Signer {
	return &Signer{
		secret: []byte(secret),
		json:   jsonAdapter,
		jcs:    jcsAdapter,
	}
}

// Sign serializes the event canonically and signs "{timestamp}.{event_id}.{payload}".
// The signature has the form "sha256=<hex>".
func (s *Signer) Sign(event *ContractEvent) (*SignedEvent, error) {
	raw, err := s.json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	payload, err := s.jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize event: %w", err)
	}

	timestamp := event.Timestamp.Unix()
	return &SignedEvent{
		Payload:   payload,
		Signature: computeSignature(s.secret, timestamp, event.EventID, payload),
		Timestamp: timestamp,
	}, nil
}

// Verify checks a signature produced by Sign
func Verify(secret string, timestamp int64, eventID string, payload []byte, signature string) bool {
	expected := computeSignature([]byte(secret), timestamp, eventID, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func computeSignature(secret []byte, timestamp int64, eventID string, payload []byte) string {
	h := hmac.New(sha256.New, secret)
	_, _ = fmt.Fprintf(h, "%d.%s.%s", timestamp, eventID, payload)
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}
