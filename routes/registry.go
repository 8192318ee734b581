package routes

import (
	"fmt"

	"github.com/vitalvas/routemap/schema"
)

// entry holds everything registered for one template string.
type entry struct {
	template *Template
	pattern  *pattern
	search   schema.Schema
	metadata any
}

// Registry is an ordered, append-only collection of path templates.
// Insertion order is the precedence rule: Match returns the first
// template that accepts a path, with no specificity ranking, so more
// specific templates must be registered before more general ones.
//
// A Registry is built once during application configuration: construct,
// Add repeatedly, then Freeze. Registration must complete before
// concurrent match or build traffic begins; after Freeze all operations
// are read-only and safe for concurrent use.
type Registry struct {
	metadataSchema schema.Schema
	maxDepth       int
	entries        []*entry
	byKey          map[string]*entry
	frozen         bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithMetadataSchema sets a schema that every entry's metadata is
// validated against when a match is returned.
func WithMetadataSchema(s schema.Schema) Option {
	return func(r *Registry) {
		r.metadataSchema = s
	}
}

// WithMaxDepth overrides the segment-count limit for registered
// templates. The default is DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(r *Registry) {
		r.maxDepth = n
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		maxDepth: DefaultMaxDepth,
		byKey:    make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RouteOption configures a single registered template.
type RouteOption func(*entry)

// WithSearchParams declares the schema for the template's query
// parameters, used by Build and ParseSearchParams.
func WithSearchParams(s schema.Schema) RouteOption {
	return func(e *entry) {
		e.search = s
	}
}

// WithMetadata attaches an opaque metadata value to the template,
// returned on successful match.
func WithMetadata(v any) RouteOption {
	return func(e *entry) {
		e.metadata = v
	}
}

// Add parses and registers a template string. The template becomes the
// entry's key and must be unique; re-adding an existing template returns
// ErrDuplicateTemplate. A template that fails parser rules returns a
// *SyntaxError and leaves the registry unchanged.
func (r *Registry) Add(tpl string, opts ...RouteOption) error {
	if r.frozen {
		return ErrFrozen
	}
	if _, ok := r.byKey[tpl]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, tpl)
	}

	t, err := ParseTemplate(tpl, r.maxDepth)
	if err != nil {
		return err
	}
	p, err := compilePattern(t)
	if err != nil {
		return err
	}

	e := &entry{template: t, pattern: p}
	for _, opt := range opts {
		opt(e)
	}

	r.byKey[tpl] = e
	r.entries = append(r.entries, e)

	return nil
}

// Freeze ends the configuration phase. Subsequent Add and Load calls
// return ErrFrozen. The entry list is snapshotted so later reads never
// observe growth.
func (r *Registry) Freeze() {
	if r.frozen {
		return
	}
	r.frozen = true
	entries := make([]*entry, len(r.entries))
	copy(entries, r.entries)
	r.entries = entries
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool { return r.frozen }

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.entries) }

// Templates returns the registered template strings in insertion order.
func (r *Registry) Templates() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.template.raw
	}
	return out
}

// ParamNames returns the ordered parameter names of a registered
// template. The second return is false for an unknown key.
func (r *Registry) ParamNames(key string) ([]string, bool) {
	e, ok := r.byKey[key]
	if !ok {
		return nil, false
	}
	return e.template.ParamNames(), true
}
