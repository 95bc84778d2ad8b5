package utils

import (
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// AppError is the one error type handlers and services return. The central
// HTTP error handler translates it into the response envelope.
type AppError struct {
	Code     int          `json:"-"`
	Message  string       `json:"message"`
	Errors   []FieldError `json:"errors,omitempty"`
	Internal error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

func NewValidationError(errs ...FieldError) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: "Validation failed", Errors: errs}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorized() *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: "Not authenticated"}
}

func NewForbidden() *AppError {
	return &AppError{Code: http.StatusForbidden, Message: "Insufficient permissions"}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewInternal(err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: "Internal server error", Internal: err}
}

// IsDuplicateKey reports whether err is a unique-index violation from the
// driver. The pre-insert existence checks race against concurrent inserts,
// so callers must treat this the same as their own duplicate pre-check.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
