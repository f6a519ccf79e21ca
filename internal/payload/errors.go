package payload

import (
	"encoding/json"
	"fmt"
)

// ErrInvalidPayload indicates a JSON document that does not conform to
// its schema.
type ErrInvalidPayload struct {
	Schema  string
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", e.Schema, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
