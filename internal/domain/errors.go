package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by store lookups when no entity matches.
var ErrNotFound = errors.New("not found")

// InputError marks failures detected before any persistence: malformed
// documents, invalid price formats. Nothing was written, so nothing is
// rolled back.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationError marks an entity that fails store-level constraints,
// such as a blank name or a non-positive price. Inside a run it aborts
// the transaction.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConstraintError marks a store-level uniqueness or foreign-key
// violation that slipped past the pre-checks. Same rollback treatment
// as ValidationError.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation (%s): %v", e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// IsInputError reports whether err happened before the transaction
// opened, so the caller can distinguish input-stage failures from
// persistence-stage failures.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
