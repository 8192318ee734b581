// Package routes implements a path-template registry with matching,
// parameter extraction, path building, and a typed query-parameter
// codec.
//
// The package implements path semantics based on:
//   - RFC 3986 (URIs; Section 3.3 path, Section 3.4 query,
//     Section 5.2.4 remove dot segments)
//
// # Templates
//
// A template is a /-delimited pattern string. Segments starting with a
// colon are named parameters; a trailing (.*) marker matches any
// remaining suffix and binds nothing:
//
//	/posts/details/:postId/:commentId
//	/files(.*)
//
// Literal text and parameter names must be non-empty and must not
// contain any of the reserved characters
//
//	. SPACE / # & ? | :
//
// and a template is limited to DefaultMaxDepth segments unless the
// registry overrides it.
//
// # Registry
//
// A Registry is an ordered, append-only route table built once at
// startup:
//
//	reg := routes.NewRegistry()
//	reg.Add("/posts/:postId",
//		routes.WithMetadata(meta),
//		routes.WithSearchParams(schema.Object(
//			schema.String("query").Default("hello world"),
//		)),
//	)
//	reg.Freeze()
//
// Insertion order is the precedence rule: Match returns the first
// template that accepts a path and performs no specificity ranking, so
// register /a/:x before /a(.*) when the former should win. Registration
// must complete before concurrent match or build traffic begins; after
// Freeze the registry is read-only and safe for concurrent use.
//
// # Matching and Extraction
//
//	m, err := reg.Match("/posts/123?x=1")   // query string ignored
//	params := reg.ExtractParams("/posts/123", "/posts/:postId")
//
// Both operations run on the same compiled pattern, so a path accepted
// by Match always yields bindings from ExtractParams. "No match" is an
// ordinary return value (nil), never an error.
//
// # Building and Query Parameters
//
//	p, err := reg.Build("/posts/:postId", routes.BuildInput{
//		Params:       map[string]string{"postId": "123"},
//		SearchParams: map[string]any{},
//	})
//
// A nil SearchParams map yields a bare path; a non-nil map is validated
// and defaulted through the template's query schema. Query values are
// JSON-encoded before percent-escaping, so numbers, booleans, and
// arrays round-trip through the query string:
//
//	/posts/123?query=%22hello%20world%22
//
// ParseSearchParams reverses this: values that are valid JSON decode to
// their typed form, anything else stays a raw string, and the declared
// schema validates the result.
//
// # Route Manifests
//
// Load registers a whole route table from YAML, including per-route
// metadata and typed search param declarations. See Registry.Load.
package routes
