// Package errors provides structured error types for judgefmt.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the level builder, file loader and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - EMPTY_*, MISSING_*, DUPLICATE_*: Level specification failures
//   - *_NOT_FOUND: Resource not found
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLevelIndex, "level %q is not an integer", tok)
//	if errors.IsArgError(err) {
//	    // print usage, exit 2
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Level specification errors
	ErrCodeInvalidLevelMarker Code = "INVALID_LEVEL_MARKER"
	ErrCodeInvalidLevelIndex  Code = "INVALID_LEVEL_INDEX"
	ErrCodeEmptyLevel         Code = "EMPTY_LEVEL"
	ErrCodeMissingLevel       Code = "MISSING_LEVEL"
	ErrCodeDuplicateLevel     Code = "DUPLICATE_LEVEL"
	ErrCodeEmptySpec          Code = "EMPTY_SPEC"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidName   Code = "INVALID_NAME"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
)

// argCodes are the codes reported as usage errors by the CLI.
var argCodes = map[Code]bool{
	ErrCodeInvalidLevelMarker: true,
	ErrCodeInvalidLevelIndex:  true,
	ErrCodeEmptyLevel:         true,
	ErrCodeMissingLevel:       true,
	ErrCodeDuplicateLevel:     true,
	ErrCodeEmptySpec:          true,
	ErrCodeInvalidName:        true,
	ErrCodeInvalidInput:       true,
}

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

// IsArgError reports whether err describes a malformed command line or
// level specification. Such errors are answered with a usage message.
func IsArgError(err error) bool {
	return argCodes[GetCode(err)]
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
