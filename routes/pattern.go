package routes

import (
	"bytes"
	"regexp"
)

// pattern is the compiled form of a template: an anchored regexp plus
// the param names in match-group order. Matching and extraction both run
// on the same compiled pattern, so they never disagree about which paths
// a template accepts.
type pattern struct {
	regexp *regexp.Regexp
	varsN  []string
}

// compilePattern builds the matching regexp for a parsed template.
// Literal segments are quoted, params become single-segment groups, and
// a wildcard tail leaves the pattern unanchored so any suffix matches.
func compilePattern(t *Template) (*pattern, error) {
	var buf bytes.Buffer
	buf.WriteByte('^')

	for _, seg := range t.segments {
		buf.WriteByte('/')
		if seg.IsParam() {
			buf.WriteString("([^/]+)")
		} else {
			buf.WriteString(regexp.QuoteMeta(seg.value))
		}
	}

	if len(t.segments) == 0 {
		buf.WriteByte('/')
	}

	if t.wildcard {
		if t.trailingSlash {
			buf.WriteByte('/')
		}
	} else {
		buf.WriteByte('$')
	}

	reg, err := compileRegexp(buf.String())
	if err != nil {
		return nil, err
	}

	return &pattern{regexp: reg, varsN: t.ParamNames()}, nil
}

// match reports whether the compiled pattern accepts the path.
func (p *pattern) match(path string) bool {
	return p.regexp.MatchString(path)
}

// extract returns the param bindings for the path, or nil if the path
// does not match the pattern.
func (p *pattern) extract(path string) map[string]string {
	matches := p.regexp.FindStringSubmatch(path)
	if matches == nil {
		return nil
	}
	vars := make(map[string]string, len(p.varsN))
	for i, name := range p.varsN {
		if i+1 < len(matches) {
			vars[name] = matches[i+1]
		}
	}
	return vars
}
