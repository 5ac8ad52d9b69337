package bfhl

import (
	"bytes"
	"encoding/json"
)

// ValidatePayload checks raw text against the /bfhl request contract:
// syntactically valid JSON, an object, with an array-typed "data" field.
// It inspects the raw bytes only and never re-serializes them, so a
// passing payload is sent exactly as the user typed it.
func ValidatePayload(raw []byte) error {
	if !json.Valid(raw) {
		return NewMalformedInputError()
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return NewMissingFieldError("payload must be a JSON object")
	}

	data, ok := obj["data"]
	if !ok {
		return NewMissingFieldError(`missing required "data" array field`)
	}

	// json.Valid already guaranteed well-formedness, so the first
	// non-space byte decides the value's type.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return NewMissingFieldError(`"data" field must be an array`)
	}

	return nil
}
