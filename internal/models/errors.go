package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to API callers.
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindNotFound        ErrorKind = "not_found"
	KindUpstreamFailure ErrorKind = "upstream_failure"
)

// Error is the single error type handlers understand. Message is safe to
// return to clients; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common errors used throughout the application
var (
	ErrProductNotFound = &Error{Kind: KindNotFound, Message: "Product not found"}
	ErrOrderNotFound   = &Error{Kind: KindNotFound, Message: "Order not found"}
	ErrMissingUserID   = &Error{Kind: KindValidation, Message: "user_id is required"}
	ErrMissingFields   = &Error{Kind: KindValidation, Message: "Missing required fields"}
)

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates a not found error with the given message
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewUpstreamError wraps a store or infrastructure failure
func NewUpstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstreamFailure, Message: message, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error count as
// upstream failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstreamFailure
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
