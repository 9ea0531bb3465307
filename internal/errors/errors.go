package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by handlers when a /{id} lookup misses.
// Repositories themselves return nil for misses.
var ErrNotFound = errors.New("not found")

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ValidationError rejects input before any side effect.
// Field names the offending input field so the form can attach the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// InfrastructureError wraps a failure of an external collaborator.
type InfrastructureError struct {
	Service string
	Message string
	Err     error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}
