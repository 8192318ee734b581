package schema

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// fieldKind is the declared type of an object field.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindBool
	kindUUID
)

// kindNames maps field kinds to the names used in error messages.
var kindNames = map[fieldKind]string{
	kindString: "string",
	kindInt:    "int",
	kindFloat:  "float",
	kindBool:   "bool",
	kindUUID:   "uuid",
}

// Field describes one typed field of an object schema. Fields are
// required unless they carry a default or are marked Optional.
type Field struct {
	name       string
	kind       fieldKind
	def        any
	hasDefault bool
	optional   bool
	enum       []string
}

// String declares a string field.
func String(name string) Field {
	return Field{name: name, kind: kindString}
}

// Int declares an integer field. String and JSON number inputs are
// coerced; fractional numbers are rejected.
func Int(name string) Field {
	return Field{name: name, kind: kindInt}
}

// Float declares a floating point field.
func Float(name string) Field {
	return Field{name: name, kind: kindFloat}
}

// Bool declares a boolean field. Accepts bools and the strings
// "true" and "false".
func Bool(name string) Field {
	return Field{name: name, kind: kindBool}
}

// UUID declares an RFC 4122 UUID field. Values are normalized to the
// canonical lowercase form.
func UUID(name string) Field {
	return Field{name: name, kind: kindUUID}
}

// Default sets the value used when the input omits this field. A field
// with a default is never required.
func (f Field) Default(v any) Field {
	f.def = v
	f.hasDefault = true
	return f
}

// Optional marks the field as allowed to be absent, with no default.
func (f Field) Optional() Field {
	f.optional = true
	return f
}

// Enum restricts a string field to the given values.
func (f Field) Enum(values ...string) Field {
	f.enum = values
	return f
}

// coerce validates v against the field's declared type.
func (f Field) coerce(v any) (any, error) {
	switch f.kind {
	case kindString:
		s, ok := v.(string)
		if !ok {
			return nil, f.typeError(v)
		}
		if len(f.enum) > 0 && !contains(f.enum, s) {
			return nil, &ValidationError{Field: f.name, Reason: fmt.Sprintf("value %q is not one of %v", s, f.enum)}
		}
		return s, nil

	case kindInt:
		switch t := v.(type) {
		case int:
			return t, nil
		case int64:
			return int(t), nil
		case float64:
			if t != math.Trunc(t) {
				return nil, &ValidationError{Field: f.name, Reason: fmt.Sprintf("value %v is not an integer", t)}
			}
			// math.MaxInt rounds up to 2^63 as a float64, so the
			// upper comparison must be inclusive.
			if t < math.MinInt || t >= math.MaxInt {
				return nil, &ValidationError{Field: f.name, Reason: fmt.Sprintf("value %v overflows int", t)}
			}
			return int(t), nil
		case string:
			n, err := strconv.Atoi(t)
			if err != nil {
				return nil, f.typeError(v)
			}
			return n, nil
		}
		return nil, f.typeError(v)

	case kindFloat:
		switch t := v.(type) {
		case float64:
			return t, nil
		case int:
			return float64(t), nil
		case string:
			n, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, f.typeError(v)
			}
			return n, nil
		}
		return nil, f.typeError(v)

	case kindBool:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			switch t {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, f.typeError(v)

	case kindUUID:
		s, ok := v.(string)
		if !ok {
			return nil, f.typeError(v)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, &ValidationError{Field: f.name, Reason: fmt.Sprintf("value %q is not a valid UUID", s)}
		}
		return id.String(), nil
	}

	return nil, f.typeError(v)
}

// typeError reports a value that cannot be coerced to the field's type.
func (f Field) typeError(v any) error {
	return &ValidationError{
		Field:  f.name,
		Reason: fmt.Sprintf("cannot use %T value %v as %s", v, v, kindNames[f.kind]),
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
