package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// PayloadField is the key used for issues that do not belong to a single field.
const PayloadField = "payload"

// FieldErrors maps request fields to validation issues.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	if f == nil {
		return
	}
	f[field] = append(f[field], message)
}

// Error is returned when an input payload is invalid.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation error"
	}

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return fmt.Sprintf("validation error: %s", strings.Join(keys, ", "))
}

// NewError builds an Error with one message per field.
func NewError(fields map[string]string) *Error {
	fe := FieldErrors{}
	for field, message := range fields {
		fe.Add(field, message)
	}
	return &Error{Fields: fe}
}

// Schema is a compiled JSON Schema used to validate request payloads.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile registers definition under name and compiles it with format
// assertions enabled.
func Compile(name string, definition []byte) (*Schema, error) {
	url := "memory://schemas/" + name

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(url, bytes.NewReader(definition)); err != nil {
		return nil, fmt.Errorf("register schema %s: %w", name, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}

	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is Compile for schemas embedded at build time.
func MustCompile(name string, definition []byte) *Schema {
	schema, err := Compile(name, definition)
	if err != nil {
		panic(err)
	}
	return schema
}

// Validate checks value, typically a request struct, against the schema.
// The value is round-tripped through encoding/json so struct tags decide
// property names.
func (s *Schema) Validate(value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", s.name, err)
	}
	return s.ValidateJSON(payload)
}

// ValidateJSON checks a raw JSON document against the schema. Schema
// violations are returned as *Error; anything else is a plain error.
func (s *Schema) ValidateJSON(payload []byte) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return NewError(map[string]string{PayloadField: "payload is required"})
	}

	var document any
	if err := json.Unmarshal(payload, &document); err != nil {
		return NewError(map[string]string{PayloadField: "payload must be valid JSON"})
	}

	if err := s.compiled.Validate(document); err != nil {
		var schemaErr *jsonschema.ValidationError
		if errors.As(err, &schemaErr) {
			return &Error{Fields: flatten(schemaErr)}
		}
		return fmt.Errorf("validate %s payload: %w", s.name, err)
	}

	return nil
}

var quotedName = regexp.MustCompile(`'([^']+)'`)

// flatten collects the leaf causes of a validation error keyed by the
// offending property. Required and additionalProperties failures are
// reported against the named property rather than its parent.
func flatten(root *jsonschema.ValidationError) FieldErrors {
	fields := FieldErrors{}

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, cause := range e.Causes {
				walk(cause)
			}
			return
		}

		base := fieldName(e.InstanceLocation)
		keyword := e.KeywordLocation[strings.LastIndex(e.KeywordLocation, "/")+1:]

		switch keyword {
		case "required", "additionalProperties":
			names := quotedName.FindAllStringSubmatch(e.Message, -1)
			if len(names) == 0 {
				fields.Add(base, e.Message)
				return
			}
			for _, match := range names {
				field := match[1]
				if base != PayloadField {
					field = base + "." + field
				}
				if keyword == "required" {
					fields.Add(field, "is required")
				} else {
					fields.Add(field, "is not allowed")
				}
			}
		default:
			fields.Add(base, e.Message)
		}
	}
	walk(root)

	if len(fields) == 0 {
		fields.Add(PayloadField, root.Message)
	}

	return fields
}

func fieldName(instanceLocation string) string {
	trimmed := strings.Trim(instanceLocation, "/")
	if trimmed == "" {
		return PayloadField
	}
	return strings.ReplaceAll(trimmed, "/", ".")
}
