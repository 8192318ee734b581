package routes

import (
	"net/url"
	"path"
	"strings"
)

// cleanPath returns the canonical path for p, eliminating . and .. elements
// per RFC 3986 Section 5.2.4 (remove dot segments).
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}

// stripQuery returns the pathname up to the first ?, so query parameters
// never take part in template selection.
func stripQuery(pathname string) string {
	if i := strings.IndexByte(pathname, '?'); i != -1 {
		return pathname[:i]
	}
	return pathname
}

// escapeQuery percent-encodes a query component, using %20 for space so
// the output matches encodeURIComponent-style encoding rather than the
// form encoding produced by url.QueryEscape alone.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
