// Package errors provides structured error types for cansdash.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the layout engine, CLI and HTTP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages for placeholder chart areas
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Layout failures are always one of four input-validation codes:
//   - INVALID_CONFIG: non-positive dimensions, margins that swallow the plot, inverted domains
//   - INVALID_RECORD: missing or non-finite numeric fields
//   - EMPTY_TOTAL: a proportional stack whose values sum to zero
//   - EMPTY_DATASET: zero records
//
// The remaining codes are used by the shells around the engine.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRecord, "record %q: field %q is not finite", label, field)
//	if errors.Is(err, errors.ErrCodeInvalidRecord) {
//	    // Draw a placeholder instead of the chart
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidRecord Code = "INVALID_RECORD"
	ErrCodeEmptyTotal    Code = "EMPTY_TOTAL"
	ErrCodeEmptyDataset  Code = "EMPTY_DATASET"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidView   Code = "INVALID_VIEW"
	ErrCodeInvalidTheme  Code = "INVALID_THEME"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsLayoutError reports whether err is one of the four layout input failures.
// Shells use it to decide between drawing a placeholder and aborting.
func IsLayoutError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidRecord, ErrCodeEmptyTotal, ErrCodeEmptyDataset:
		return true
	}
	return false
}
