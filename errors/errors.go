// Package errors defines custom error types for wallfilter
package errors

import (
	"errors"
	"fmt"
)

// Application error types
var (
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidScenario   = errors.New("invalid scenario file")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrValidation        = errors.New("validation failed")
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%s': %s", e.Field, e.Value, e.Message)
}

// Unwrap lets errors.Is match ErrValidation
func (e ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, message string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
