// Package errors provides structured error types for facetplot.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages naming the file or column at fault
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The three codes every run can fail with are:
//   - IO_ERROR: input missing or unreadable, output unwritable
//   - SCHEMA_ERROR: expected columns absent, non-numeric measurements,
//     duplicate headers, no column matching the measurement prefix
//   - MISSING_STYLE: a category present in the data has no style entry
//
// The remaining INVALID_* codes cover option validation.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSchema, "no column starts with %q", prefix)
//	if errors.Is(err, errors.ErrCodeSchema) {
//	    // Handle schema error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Run failures
	ErrCodeIO           Code = "IO_ERROR"
	ErrCodeSchema       Code = "SCHEMA_ERROR"
	ErrCodeMissingStyle Code = "MISSING_STYLE"

	// Option validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// MissingStyleError lists every category that has no style assignment.
// It carries ErrCodeMissingStyle so Is(err, ErrCodeMissingStyle) holds.
type MissingStyleError struct {
	Categories []string
}

// Error implements the error interface.
func (e *MissingStyleError) Error() string {
	return fmt.Sprintf("%s: no style for %s", ErrCodeMissingStyle, quoteList(e.Categories))
}

// Unwrap exposes the coded form of the error.
func (e *MissingStyleError) Unwrap() error {
	return &Error{Code: ErrCodeMissingStyle, Message: "no style for " + quoteList(e.Categories)}
}

// Code returns the error code for this error type.
func (e *MissingStyleError) Code() Code {
	return ErrCodeMissingStyle
}

func quoteList(items []string) string {
	s := ""
	for i, it := range items {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%q", it)
	}
	return s
}
