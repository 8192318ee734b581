package routes

import (
	"regexp"
	"sync"
)

// patternCache caches compiled regular expressions by pattern string.
// The number of unique patterns is bounded by the number of registered
// templates, so the cache grows to a fixed size and stays there.
var patternCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given pattern,
// compiling and caching it on first use.
func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if v, ok := patternCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil
}
