package models

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the requested record does not exist
var ErrNotFound = errors.New("record not found")

// Fixed messages returned to API clients
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgPizzaNotFound      = "Pizza not found"
	MsgValidationErrors   = "validation errors"
)

// ValidationError lists the reasons an input was rejected before any write happened
type ValidationError struct {
	Errors []string
}

// NewValidationError creates a ValidationError with the given messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// ErrorResponse is the body returned for not found and internal errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when an input is rejected
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
