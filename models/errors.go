package models

import (
	"github.com/pkg/errors"
)

// ErrorKind is the machine-readable error category returned to API callers.
type ErrorKind string

const (
	ValidationError   ErrorKind = "VALIDATION_ERROR"
	ConflictError     ErrorKind = "CONFLICT_ERROR"
	NotFoundError     ErrorKind = "NOT_FOUND_ERROR"
	PersistenceError  ErrorKind = "PERSISTENCE_ERROR"
	NotificationError ErrorKind = "NOTIFICATION_ERROR"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Cause keeps pkg/errors.Cause working through the typed error.
func (e *AppError) Cause() error {
	return e.cause
}

func NewAppError(kind ErrorKind, message string) error {
	return &AppError{Kind: kind, Message: message}
}

func WrapAppError(kind ErrorKind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Kind: kind, Message: message, cause: err}
}

func NewValidationError(message string) error {
	return NewAppError(ValidationError, message)
}

func NewConflictError(message string) error {
	return NewAppError(ConflictError, message)
}

func NewNotFoundError(message string) error {
	return NewAppError(NotFoundError, message)
}

func NewPersistenceError(err error, message string) error {
	return WrapAppError(PersistenceError, err, message)
}

// KindOf returns the kind of the first AppError in the chain.
// Untyped errors are treated as persistence failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return PersistenceError
}

// PublicMessage is the text safe to show to the user.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
