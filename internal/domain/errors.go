package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no complaint exists for the given ID
	ErrNotFound = errors.New("complaint not found")
	// ErrDuplicateID indicates an ID collision on insert
	ErrDuplicateID = errors.New("duplicate complaint id")
	// ErrInternal indicates a store or unexpected failure; the cause is logged
	// server-side and never exposed to callers
	ErrInternal = errors.New("internal error")
	// ErrRetrieval indicates an embedding, index or generation failure
	ErrRetrieval = errors.New("retrieval failed")
	// ErrUnavailable indicates the complaint service could not be reached
	ErrUnavailable = errors.New("complaint service unavailable")
)

// ValidationError rejects malformed input at the boundary, one message per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
