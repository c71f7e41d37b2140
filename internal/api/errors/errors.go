package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindNotFound     ErrorKind = "not_found"
	KindInternal     ErrorKind = "internal"
)

// APIError is the body of every non-2xx response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with per-field reasons
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewFieldError is a validation error for a single field
func NewFieldError(field, reason string) *APIError {
	return NewValidationError("Validation failed", map[string]string{field: reason})
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *APIError {
	return &APIError{Kind: KindUnauthorized, Message: message}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}

// Merge combines the details of several validation errors into one.
// Nil entries are skipped; returns nil when nothing is left.
func Merge(errs ...*APIError) *APIError {
	var merged *APIError
	for _, err := range errs {
		if err == nil {
			continue
		}
		if merged == nil {
			merged = NewValidationError("Validation failed", map[string]string{})
		}
		for field, reason := range err.Details {
			merged.Details[field] = reason
		}
	}
	return merged
}
