// Package apperr defines the typed failures surfaced by the repository
// layer and mapped to HTTP status codes by the controllers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrDuplicateEmail reports an email collision on user creation.
// The storage layer enforces uniqueness; this is the translated form.
var ErrDuplicateEmail = errors.New("email already registered")

// ValidationError reports field-level constraint violations.
type ValidationError struct {
	Fields map[string]string // field name → message
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validation wraps a field→message map from pkg/validate.
func Validation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// MissingFieldError reports a required request field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("The %s field is required.", e.Field)
}

// MissingField builds a MissingFieldError for the named request field.
func MissingField(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string // "User" or "Item"
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// NotFound builds a NotFoundError for the named entity and key.
func NotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// HTTPStatus maps a repository failure to the response status code.
// Field-constraint violations deliberately fall through to 500: only
// missing request fields are treated as client errors on write paths.
func HTTPStatus(err error) int {
	var missing *MissingFieldError
	var notFound *NotFoundError

	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
