package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors. Services wrap them with context; callers test with
// errors.Is and the HTTP adapter maps each to one status code.
var (
	// ErrNotFound: the board, column or lead does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation: input breaks a rule; see ValidationError for fields.
	ErrValidation = errors.New("validation error")
	// ErrConflict: the write contradicts current state, e.g. deleting an
	// occupied column or reordering against a stale board version.
	ErrConflict = errors.New("conflict")
	// ErrForbidden: the principal is missing or the entity is outside its scope.
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable: a collaborator (store lock, identity service) did not answer.
	ErrUnavailable = errors.New("unavailable")
)

// Shared validation messages.
const (
	MsgRequired      = "is required"
	MsgMustNotEmpty  = "must not be empty"
	MsgUnknownColumn = "unknown column"
)

// ValidationError maps each offending field to its message. It matches
// ErrValidation under errors.Is; errors.As exposes the fields. Field names may
// carry a location prefix ("query.dateFrom", "header.X-Principal-Role").
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError with a single field failure.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields in name order so messages are stable.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
