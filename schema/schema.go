package schema

import (
	"fmt"
)

// Schema validates an input value and returns the validated, possibly
// coerced output. Parse(nil) must apply schema-level defaults when the
// schema defines them.
type Schema interface {
	Parse(v any) (any, error)
}

// ValidationError describes a value that failed its schema.
type ValidationError struct {
	// Field is the field name, or empty for whole-value failures.
	Field string
	// Reason describes the failure.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: field %q: %s", e.Field, e.Reason)
}

// ValueFunc validates a single value.
type ValueFunc func(v any) (any, error)

// valueSchema adapts a ValueFunc to the Schema interface.
type valueSchema struct {
	fn ValueFunc
}

// Value wraps a validation function into a Schema.
func Value(fn ValueFunc) Schema {
	return &valueSchema{fn: fn}
}

// Parse implements Schema.
func (s *valueSchema) Parse(v any) (any, error) {
	return s.fn(v)
}

// ObjectSchema validates a map against an ordered set of typed fields.
type ObjectSchema struct {
	fields []Field
}

// Object returns a schema for a map with the given fields. Declaration
// order is preserved and significant for serialization.
func Object(fields ...Field) *ObjectSchema {
	return &ObjectSchema{fields: fields}
}

// Fields returns the field names in declaration order.
func (s *ObjectSchema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Parse validates the input map. A nil input is treated as an empty map,
// so defaults still apply. Keys not declared as fields pass through
// unchanged.
func (s *ObjectSchema) Parse(v any) (any, error) {
	in, err := asMap(v)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(s.fields))
	for _, f := range s.fields {
		known[f.name] = true
	}

	out := make(map[string]any, len(in))
	for k, val := range in {
		if !known[k] {
			out[k] = val
		}
	}

	for _, f := range s.fields {
		val, ok := in[f.name]
		if !ok {
			if f.hasDefault {
				out[f.name] = f.def
				continue
			}
			if f.optional {
				continue
			}
			return nil, &ValidationError{Field: f.name, Reason: "missing required value"}
		}

		coerced, err := f.coerce(val)
		if err != nil {
			return nil, err
		}
		out[f.name] = coerced
	}

	return out, nil
}

// asMap normalizes the supported input shapes to map[string]any.
func asMap(v any) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return t, nil
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = val
		}
		return m, nil
	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("expected an object, got %T", v)}
	}
}
