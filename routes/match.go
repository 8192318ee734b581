package routes

// Match is the result of a successful lookup: the winning template
// string and its metadata, validated through the registry's metadata
// schema when one is configured.
type Match struct {
	Template string
	Metadata any
}

// Match finds the first registered template, in insertion order, that
// accepts the given pathname. Any query string is stripped before
// matching. A nil Match with a nil error means no template matched;
// that is an ordinary outcome, not a failure. A non-nil error means the
// matched entry's metadata failed the registry's metadata schema, which
// is a configuration bug and is surfaced rather than swallowed.
func (r *Registry) Match(pathname string) (*Match, error) {
	path := stripQuery(pathname)

	for _, e := range r.entries {
		if !e.pattern.match(path) {
			continue
		}

		meta := e.metadata
		if r.metadataSchema != nil {
			parsed, err := r.metadataSchema.Parse(meta)
			if err != nil {
				return nil, err
			}
			meta = parsed
		}

		return &Match{Template: e.template.raw, Metadata: meta}, nil
	}

	return nil, nil
}

// ExtractParams returns the param name to value bindings for a pathname
// against a registered template. The query string is stripped first.
// A nil map means the key is unknown or the path does not match the
// template's pattern; extraction never fails with an error because
// callers may probe templates speculatively.
func (r *Registry) ExtractParams(pathname, key string) map[string]string {
	e, ok := r.byKey[key]
	if !ok {
		return nil
	}
	return e.pattern.extract(stripQuery(pathname))
}
