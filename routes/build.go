package routes

import (
	"bytes"
	"fmt"
)

// BuildInput carries the values for Build. Params binds template param
// names to segment values. SearchParams holds query values: a nil map
// yields a bare path with no query string, while a non-nil map (even an
// empty one) is run through the template's query schema, so schema
// defaults apply.
type BuildInput struct {
	Params       map[string]string
	SearchParams map[string]any
}

// Build produces a concrete path, and optionally a query string, from a
// registered template. Substitution is segment-aware: the parsed segment
// list is walked and each param emits its bound value, so a param name
// that prefixes another is never ambiguous. A wildcard marker
// contributes nothing to the output.
func (r *Registry) Build(key string, in BuildInput) (string, error) {
	e, ok := r.byKey[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, key)
	}

	var buf bytes.Buffer
	for _, seg := range e.template.segments {
		buf.WriteByte('/')
		if !seg.IsParam() {
			buf.WriteString(seg.Value())
			continue
		}

		v, ok := in.Params[seg.Value()]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %q", ErrMissingParam, seg.Value())
		}
		buf.WriteString(v)
	}
	// A slash between the last segment and the wildcard marker, as in
	// /files/(.*), is part of the path the pattern requires.
	if e.template.trailingSlash {
		buf.WriteByte('/')
	}
	if buf.Len() == 0 {
		buf.WriteByte('/')
	}
	path := cleanPath(buf.String())

	if in.SearchParams == nil {
		return path, nil
	}

	values := in.SearchParams
	if e.search != nil {
		parsed, err := e.search.Parse(values)
		if err != nil {
			return "", err
		}
		m, ok := parsed.(map[string]any)
		if !ok {
			return "", fmt.Errorf("routes: query schema for %q returned %T, want a map", key, parsed)
		}
		values = m
	}

	query, err := encodeSearchParams(values, e.search)
	if err != nil {
		return "", err
	}
	if query == "" {
		return path, nil
	}

	return path + "?" + query, nil
}
