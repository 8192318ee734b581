// Package schema provides runtime validation for loosely typed values,
// used by the routes package for query parameters and route metadata.
//
// The core contract is the Schema interface: Parse takes an input value
// and returns a validated, coerced output or an error. Parsing a nil
// input applies schema-level defaults, so a schema with defaults for
// every field produces a fully populated value from nothing.
//
// # Object Schemas
//
// Object describes a map with a fixed, ordered set of fields:
//
//	s := schema.Object(
//		schema.String("query").Default("hello world"),
//		schema.Int("page").Optional(),
//		schema.UUID("session"),
//	)
//
//	out, err := s.Parse(map[string]any{"session": id, "page": "3"})
//
// Fields are required unless they carry a default or are marked
// Optional. Values arriving as strings (from hand-written URLs) are
// coerced to the field's type where possible; unknown keys pass through
// untouched. Field declaration order is preserved and exposed via
// Fields, which callers use for deterministic serialization.
//
// # Custom Validators
//
// Value wraps a plain function into a Schema, so hosts can plug in any
// validation logic:
//
//	s := schema.Value(func(v any) (any, error) {
//		...
//	})
package schema
