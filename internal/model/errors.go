package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	ErrValidation     = errors.New("validation failed")
	ErrPlayerExists   = errors.New("player already exists")
	ErrPlayerNotFound = errors.New("player not found")
)

// ValidationError reports a missing or empty required field
type ValidationError struct {
	Field string
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
