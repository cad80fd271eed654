package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the normalized response envelope. The backend is inconsistent
// about its success flag: most endpoints use `success`, some use `status`
// (product rejection, for one). Both are decoded here so downstream code
// never duck-types the envelope. Neither flag is invented: a 2xx body that
// carries no flag at all reports OK.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Status  *bool           `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
	ErrText string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the backend flagged the operation as successful.
func (e *Envelope) OK() bool {
	if e.Success != nil {
		return *e.Success
	}
	if e.Status != nil {
		return *e.Status
	}
	return true
}

// Note returns the human-readable message the backend attached, preferring
// `message` over `error`, empty when neither is set.
func (e *Envelope) Note() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrText
}

// DecodeData unmarshals the envelope's data payload into v.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("response has no data payload")
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode data payload: %w", err)
	}
	return nil
}

// parseEnvelope shapes a raw 2xx body into an Envelope. Object bodies are
// decoded; any other JSON value (a bare array, for instance) is passed
// through untouched as Data. An empty body yields an empty OK envelope.
func parseEnvelope(raw []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &Envelope{}, nil
	}
	if trimmed[0] == '{' {
		var env Envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode response envelope: %w", err)
		}
		return &env, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("response body is not valid JSON")
	}
	return &Envelope{Data: json.RawMessage(trimmed)}, nil
}
