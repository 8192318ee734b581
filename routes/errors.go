package routes

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTemplate is returned by Add when the template string is
	// already registered. Ambiguous route tables are configuration bugs,
	// so duplicates are rejected rather than silently ignored.
	ErrDuplicateTemplate = errors.New("routes: template already registered")

	// ErrFrozen is returned when Add or Load is called after Freeze.
	ErrFrozen = errors.New("routes: registry is frozen")

	// ErrRouteNotFound is returned by Build and ParseSearchParams when the
	// template key was never registered.
	ErrRouteNotFound = errors.New("routes: template not registered")

	// ErrMissingParam is returned by Build when a template param has no
	// value, or an empty value, in the input.
	ErrMissingParam = errors.New("routes: missing route param")
)

// SyntaxError describes a template string that fails parser rules.
type SyntaxError struct {
	// Template is the offending template string.
	Template string
	// Reason describes the rule that was violated.
	Reason string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("routes: invalid template %q: %s", e.Template, e.Reason)
}
