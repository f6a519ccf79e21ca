// Package payload validates JSON documents exchanged with the store and
// the HTTP surface against compiled JSON schemas.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

func (s *Schema) invalid(raw json.RawMessage, err error) *ErrInvalidPayload {
	return &ErrInvalidPayload{Schema: s.Name, Content: raw, Err: err}
}

var compiled sync.Map // schema name -> *jsonschema.Schema

// Validate checks raw JSON against schema. A nil schema accepts anything.
func Validate(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return schema.invalid(raw, fmt.Errorf("invalid JSON: %w", err))
	}
	sch, err := schema.compile()
	if err != nil {
		return schema.invalid(raw, err)
	}
	if err := sch.Validate(doc); err != nil {
		return schema.invalid(raw, err)
	}
	return nil
}

// Decode validates raw against schema and then unmarshals it into dst.
// Every failure is an *ErrInvalidPayload.
func Decode(schema *Schema, raw json.RawMessage, dst any) error {
	if err := Validate(schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		name := ""
		if schema != nil {
			name = schema.Name
		}
		return &ErrInvalidPayload{Schema: name, Content: raw, Err: err}
	}
	return nil
}

// ValidateValue encodes v and checks the encoding against schema. The
// encoded form is returned so callers can store it as is.
func ValidateValue(schema *Schema, v any) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", schema.Name, err)
	}
	if err := Validate(schema, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	if v, ok := compiled.Load(s.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	// Definitions are Go literals with typed slices; the compiler wants
	// plain decoded JSON.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", s.Name, err)
	}

	url := "schema://" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", s.Name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", s.Name, err)
	}
	v, _ := compiled.LoadOrStore(s.Name, sch)
	return v.(*jsonschema.Schema), nil
}
