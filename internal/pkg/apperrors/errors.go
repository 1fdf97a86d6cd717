package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies failures for the HTTP error middleware.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindNetwork
	KindInitialization
	KindUnauthorized
	KindForbidden
	KindConflict
	KindInternal
)

type AppError struct {
	Kind    Kind
	Message string
	// Fields carries per-field validation messages (field name -> message).
	Fields map[string]string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func ValidationFields(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Network(message string, err error) *AppError {
	return &AppError{Kind: KindNetwork, Message: message, Err: err}
}

func Initialization(message string, err error) *AppError {
	return &AppError{Kind: KindInitialization, Message: message, Err: err}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
