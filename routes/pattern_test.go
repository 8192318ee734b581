package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileTestPattern(t *testing.T, tpl string) *pattern {
	t.Helper()

	parsed, err := ParseTemplate(tpl, 0)
	require.NoError(t, err)

	p, err := compilePattern(parsed)
	require.NoError(t, err)

	return p
}

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		match    bool
	}{
		{name: "literal exact", template: "/posts", path: "/posts", match: true},
		{name: "literal mismatch", template: "/posts", path: "/post", match: false},
		{name: "param accepts segment", template: "/posts/:id", path: "/posts/1", match: true},
		{name: "param rejects empty segment", template: "/posts/:id", path: "/posts/", match: false},
		{name: "param rejects extra segment", template: "/posts/:id", path: "/posts/1/2", match: false},
		{name: "param rejects missing segment", template: "/posts/:id", path: "/posts", match: false},
		{name: "root", template: "/", path: "/", match: true},
		{name: "root rejects deeper path", template: "/", path: "/a", match: false},
		{name: "wildcard accepts empty suffix", template: "/a(.*)", path: "/a", match: true},
		{name: "wildcard accepts deep suffix", template: "/a(.*)", path: "/a/b/c/d/e/f/g", match: true},
		{name: "wildcard accepts textual suffix", template: "/a(.*)", path: "/abc", match: true},
		{name: "wildcard rejects other prefix", template: "/a(.*)", path: "/b/a", match: false},
		{name: "slash wildcard requires slash", template: "/files/(.*)", path: "/files", match: false},
		{name: "slash wildcard accepts suffix", template: "/files/(.*)", path: "/files/a/b", match: true},
		{name: "root wildcard accepts everything", template: "/(.*)", path: "/anything/at/all", match: true},
		{name: "param then wildcard", template: "/a/:x/(.*)", path: "/a/1/rest/of/path", match: true},
		{name: "regex metacharacters are literal", template: "/ver1+2", path: "/ver1+2", match: true},
		{name: "regex metacharacters do not repeat", template: "/ver1+2", path: "/ver11+2", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := compileTestPattern(t, tt.template)
			assert.Equal(t, tt.match, p.match(tt.path))
		})
	}
}

func TestPatternExtract(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		expected map[string]string
	}{
		{name: "single param", template: "/posts/:id", path: "/posts/7", expected: map[string]string{"id": "7"}},
		{name: "multiple params", template: "/posts/details/:postId/:commentId", path: "/posts/details/123/456", expected: map[string]string{"postId": "123", "commentId": "456"}},
		{name: "no params", template: "/posts", path: "/posts", expected: map[string]string{}},
		{name: "wildcard binds nothing", template: "/a/:x/(.*)", path: "/a/1/b/c", expected: map[string]string{"x": "1"}},
		{name: "no match", template: "/posts/:id", path: "/users/7", expected: nil},
		{name: "segment count mismatch", template: "/posts/:id", path: "/posts/1/2", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := compileTestPattern(t, tt.template)
			assert.Equal(t, tt.expected, p.extract(tt.path))
		})
	}
}

func TestCompileRegexpCache(t *testing.T) {
	first, err := compileRegexp("^/cached/([^/]+)$")
	require.NoError(t, err)

	second, err := compileRegexp("^/cached/([^/]+)$")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCompileRegexpInvalid(t *testing.T) {
	_, err := compileRegexp("([")
	assert.Error(t, err)
}
