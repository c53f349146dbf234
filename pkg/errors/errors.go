// Package errors provides structured error types for gridfold.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all CLI commands
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into three families, matching the failure modes of a
// collage run:
//   - INPUT_*: problems with the source folder or its contents
//   - INVALID_* / FONT_NOT_FOUND: bad flags or configuration
//   - LAYOUT_*: a grid that cannot be satisfied
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoImages, "no image files found in %q", folder)
//	if errors.Is(err, errors.ErrCodeNoImages) {
//	    // Handle empty folder
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDecodeFailed, origErr, "cannot decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors (source folder and its contents)
	ErrCodeInputNotFound Code = "INPUT_NOT_FOUND"
	ErrCodeInputNotDir   Code = "INPUT_NOT_DIR"
	ErrCodeNoImages      Code = "NO_IMAGES"
	ErrCodeDecodeFailed  Code = "DECODE_FAILED"

	// Configuration errors (flags and config file)
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeFontNotFound  Code = "FONT_NOT_FOUND"

	// Layout errors
	ErrCodeLayout Code = "LAYOUT_IMPOSSIBLE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
	ErrCodeEncode   Code = "ENCODE_FAILED"
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

// IsInput reports whether err belongs to the input error family.
func IsInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeInputNotFound, ErrCodeInputNotDir, ErrCodeNoImages, ErrCodeDecodeFailed:
		return true
	}
	return false
}

// IsConfiguration reports whether err belongs to the configuration error family.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidColor, ErrCodeFontNotFound:
		return true
	}
	return false
}
