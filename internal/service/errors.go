package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

// ErrNilDependency is returned by constructors when a required dependency is nil.
var ErrNilDependency = errors.New("required dependency is nil")

// ServiceError wraps unexpected errors from a service operation with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "athlete", "category")
	Service string
	// Operation is the operation that failed (e.g., "create", "update")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err in a ServiceError. Not-found, duplicate and
// validation errors are returned unchanged so callers can match them
// directly. It returns nil if err is nil.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if store.IsNotFoundError(err) || store.IsDuplicateError(err) || errors.Is(err, domain.ErrValidation) {
		return err
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
