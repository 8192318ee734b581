package routes

import (
	"fmt"
	"strings"
)

// wildcardMarker, when terminal, makes the template match any remaining
// suffix of the path. It binds no parameter.
const wildcardMarker = "(.*)"

// DefaultMaxDepth is the default limit on the number of segments in a
// template.
const DefaultMaxDepth = 5

// reservedChars may not appear in literal text or param names.
const reservedChars = ". /#&?|:"

// Segment is one /-delimited unit of a parsed template: either literal
// text or a named parameter.
type Segment struct {
	param bool
	value string
}

// IsParam reports whether the segment is a named parameter.
func (s Segment) IsParam() bool { return s.param }

// Value returns the literal text, or the param name without the : prefix.
func (s Segment) Value() string { return s.value }

// Template is the parsed, immutable form of a path template string such
// as /posts/details/:postId/:commentId or /files(.*).
type Template struct {
	raw      string
	segments []Segment
	params   []string
	wildcard bool
	// trailingSlash records a / between the last segment and the
	// wildcard marker, as in /files/(.*), so matching can require it.
	trailingSlash bool
}

// ParseTemplate parses a template string into its ordered segments.
// A maxDepth of zero or less applies DefaultMaxDepth.
func ParseTemplate(tpl string, maxDepth int) (*Template, error) {
	if !strings.HasPrefix(tpl, "/") {
		return nil, &SyntaxError{Template: tpl, Reason: "must start with /"}
	}

	rest := tpl
	wildcard := false
	if strings.HasSuffix(rest, wildcardMarker) {
		wildcard = true
		rest = strings.TrimSuffix(rest, wildcardMarker)
	}
	if strings.Contains(rest, wildcardMarker) {
		return nil, &SyntaxError{Template: tpl, Reason: "wildcard marker must be the last piece"}
	}

	t := &Template{
		raw:           tpl,
		wildcard:      wildcard,
		trailingSlash: wildcard && len(rest) > 1 && strings.HasSuffix(rest, "/"),
	}

	for _, piece := range strings.Split(rest, "/") {
		if piece == "" {
			continue
		}

		if name, ok := strings.CutPrefix(piece, ":"); ok {
			if err := checkSegmentText(tpl, name, "param name"); err != nil {
				return nil, err
			}
			t.segments = append(t.segments, Segment{param: true, value: name})
			t.params = append(t.params, name)
			continue
		}

		if err := checkSegmentText(tpl, piece, "literal segment"); err != nil {
			return nil, err
		}
		t.segments = append(t.segments, Segment{value: piece})
	}

	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if len(t.segments) > maxDepth {
		return nil, &SyntaxError{
			Template: tpl,
			Reason:   fmt.Sprintf("has %d segments, limit is %d", len(t.segments), maxDepth),
		}
	}

	if err := checkDuplicateParams(tpl, t.params); err != nil {
		return nil, err
	}

	return t, nil
}

// String returns the original template string.
func (t *Template) String() string { return t.raw }

// Segments returns the parsed segments in order.
func (t *Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// ParamNames returns the parameter names in the order they appear.
func (t *Template) ParamNames() []string {
	out := make([]string, len(t.params))
	copy(out, t.params)
	return out
}

// Wildcard reports whether the template ends in a wildcard marker.
func (t *Template) Wildcard() bool { return t.wildcard }

// checkSegmentText validates one piece of a template.
func checkSegmentText(tpl, text, what string) error {
	if text == "" {
		return &SyntaxError{Template: tpl, Reason: "empty " + what}
	}
	if strings.ContainsAny(text, reservedChars) {
		return &SyntaxError{
			Template: tpl,
			Reason:   fmt.Sprintf("%s %q contains a reserved character", what, text),
		}
	}
	return nil
}

// checkDuplicateParams returns an error if any param name repeats.
func checkDuplicateParams(tpl string, params []string) error {
	seen := make(map[string]bool, len(params))
	for _, name := range params {
		if seen[name] {
			return &SyntaxError{Template: tpl, Reason: fmt.Sprintf("duplicated param %q", name)}
		}
		seen[name] = true
	}
	return nil
}
