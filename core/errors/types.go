// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ResourceUnavailableError is the single failure kind for content retrieval.
// Network failure, a non-success response status, and body read errors all
// collapse to this type; the underlying cause is carried for diagnostics only.
type ResourceUnavailableError struct {
	// Source is the location that could not be retrieved
	Source string

	// StatusCode is the response status, or 0 if no status was obtained
	StatusCode int

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface
func (e *ResourceUnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("resource unavailable: %s returned status %d", e.Source, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("resource unavailable: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("resource unavailable: %s", e.Source)
}

// Unwrap exposes the underlying error for errors.Is/As chains
func (e *ResourceUnavailableError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsResourceUnavailable checks if an error is a ResourceUnavailableError
func IsResourceUnavailable(err error) bool {
	var unavailErr *ResourceUnavailableError
	return errors.As(err, &unavailErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
