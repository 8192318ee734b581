package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: "/"},
		{name: "root", input: "/", expected: "/"},
		{name: "already clean", input: "/a/b", expected: "/a/b"},
		{name: "missing leading slash", input: "a/b", expected: "/a/b"},
		{name: "dot segment removed", input: "/a/./b", expected: "/a/b"},
		{name: "dotdot segment resolved", input: "/a/../b", expected: "/b"},
		{name: "dotdot above root", input: "/../a", expected: "/a"},
		{name: "double slash collapsed", input: "/a//b", expected: "/a/b"},
		{name: "trailing slash kept", input: "/a/b/", expected: "/a/b/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanPath(tt.input))
		})
	}
}

func TestStripQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no query", input: "/a/b", expected: "/a/b"},
		{name: "query removed", input: "/a/b?x=1", expected: "/a/b"},
		{name: "empty query removed", input: "/a/b?", expected: "/a/b"},
		{name: "only first question mark splits", input: "/a?x=1?y=2", expected: "/a"},
		{name: "empty input", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripQuery(tt.input))
		})
	}
}

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "abc", expected: "abc"},
		{name: "space uses percent encoding", input: "hello world", expected: "hello%20world"},
		{name: "quotes escaped", input: `"x"`, expected: "%22x%22"},
		{name: "ampersand escaped", input: "a&b", expected: "a%26b"},
		{name: "equals escaped", input: "a=b", expected: "a%3Db"},
		{name: "plus escaped", input: "a+b", expected: "a%2Bb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeQuery(tt.input))
		})
	}
}
