// Package apperr defines the fixed error taxonomy every service boundary
// maps onto. Internal causes are carried as wrapped errors and never
// serialized to callers.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies one of the failure classes exposed to callers.
type Code string

const (
	CodeInvalidArgument Code = "invalid-argument"
	CodeUnauthenticated Code = "unauthenticated"
	CodeNotFound        Code = "not-found"
	CodeAlreadyExists   Code = "already-exists"
	CodeInternal        Code = "internal"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a tagged error carrying a taxonomy code, a caller-safe message,
// optional per-field details and an optional internal cause.
type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a tagged error with no internal cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap tags an internal cause with a code and caller-safe message.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Validation builds an invalid-argument error with field-level details.
func Validation(fields []FieldError) *Error {
	return &Error{
		Code:    CodeInvalidArgument,
		Message: "Invalid input",
		Fields:  fields,
	}
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func Unauthenticated(message string) *Error {
	return New(CodeUnauthenticated, message)
}

func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// Internal tags an unexpected failure. The cause is logged server-side only.
func Internal(message string, cause error) *Error {
	return Wrap(CodeInternal, message, cause)
}

// From extracts the tagged error from err, re-mapping anything untagged to
// an opaque internal error so no raw failure crosses the boundary.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("Something went wrong", err)
}

// CodeOf returns the taxonomy code for err, CodeInternal for untagged errors.
func CodeOf(err error) Code {
	return From(err).Code
}
