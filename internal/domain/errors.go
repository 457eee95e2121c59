// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request payload fails validation.
	// It is wrapped by every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an internal identifier is malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnknownField is returned when a payload carries a field outside the declared set.
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError names a single offending field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. If err is nil the
// error wraps ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error. ErrValidation is always reachable via errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrValidation) {
		return []error{ErrValidation}
	}
	return []error{e.Err, ErrValidation}
}

// ValidationErrors collects every offending field of one payload.
type ValidationErrors []*ValidationError

// Error joins the individual field messages.
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the individual field errors to errors.Is / errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e)+1)
	for _, fe := range e {
		errs = append(errs, fe)
	}
	return append(errs, ErrValidation)
}

// Fields lists the offending field names in order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}

// OrNil returns nil for an empty collection so callers can return it directly.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
