// internal/models/errors.go
package models

import "strings"

// ValidationError aggregates every violation found in a write payload so a
// caller gets the full list in one round trip instead of the first failure.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}
