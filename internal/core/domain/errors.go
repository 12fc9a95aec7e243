package domain

import "fmt"

// ValidationError reports a component invariant violated at construction or
// mutation time. Validation never waits for serialization.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// TypeMismatchError reports a value outside the closed set of shapes an
// operation accepts. It keeps the offending value for diagnostics.
type TypeMismatchError struct {
	Value    any
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("unknown type of %v (%T), expected %s", e.Value, e.Value, e.Expected)
}

func NewTypeMismatchError(value any, expected string) *TypeMismatchError {
	return &TypeMismatchError{Value: value, Expected: expected}
}
