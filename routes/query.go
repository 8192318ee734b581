package routes

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vitalvas/routemap/schema"
)

// fieldOrderer is implemented by schemas that declare an ordered field
// set, such as schema.Object. It drives query serialization order.
type fieldOrderer interface {
	Fields() []string
}

// encodeSearchParams serializes query values with each value
// JSON-encoded before percent-escaping, so non-string types such as
// numbers, booleans, and arrays survive the round trip through the
// query string. The visible cost: a string value "x" serializes as the
// query value %22x%22.
func encodeSearchParams(values map[string]any, s schema.Schema) (string, error) {
	if len(values) == 0 {
		return "", nil
	}

	var buf strings.Builder
	for _, key := range queryKeyOrder(values, s) {
		raw, err := json.Marshal(values[key])
		if err != nil {
			return "", fmt.Errorf("routes: encoding query value %q: %w", key, err)
		}
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(escapeQuery(key))
		buf.WriteByte('=')
		buf.WriteString(escapeQuery(string(raw)))
	}

	return buf.String(), nil
}

// queryKeyOrder returns the keys of values in serialization order:
// schema field declaration order first, remaining keys sorted.
func queryKeyOrder(values map[string]any, s schema.Schema) []string {
	keys := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))

	if f, ok := s.(fieldOrderer); ok {
		for _, name := range f.Fields() {
			if _, present := values[name]; present {
				keys = append(keys, name)
				seen[name] = true
			}
		}
	}

	rest := make([]string, 0, len(values)-len(keys))
	for k := range values {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

// ParseSearchParams decodes and validates query parameters for a
// registered template. The input may be a raw query string such as
// "page=2", the same with a leading ?, or a full path: everything up to
// and including the first ? is discarded, and a path with no ? at all
// is treated as an empty query. Each value is
// JSON-decoded when it is valid JSON and kept as the raw string
// otherwise, so both Build output and hand-written URLs parse. When the
// template declares a query schema the assembled map is validated,
// coerced, and defaulted through it; validation failure propagates to
// the caller.
func (r *Registry) ParseSearchParams(rawQuery, key string) (map[string]any, error) {
	e, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, key)
	}

	if i := strings.IndexByte(rawQuery, '?'); i != -1 {
		rawQuery = rawQuery[i+1:]
	} else if strings.ContainsRune(rawQuery, '/') {
		// A path with no ? carries no query at all; parsing it as one
		// would invent a bogus key from the path text.
		rawQuery = ""
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("routes: parsing query string: %w", err)
	}

	raw := make(map[string]any, len(values))
	for k, vals := range values {
		if len(vals) == 0 {
			continue
		}
		raw[k] = decodeQueryValue(vals[0])
	}

	if e.search == nil {
		return raw, nil
	}

	parsed, err := e.search.Parse(raw)
	if err != nil {
		return nil, err
	}
	m, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("routes: query schema for %q returned %T, want a map", key, parsed)
	}

	return m, nil
}

// decodeQueryValue JSON-decodes a single query value, falling back to
// the raw string for values that are not valid JSON.
func decodeQueryValue(s string) any {
	if gjson.Valid(s) {
		return gjson.Parse(s).Value()
	}
	return s
}
