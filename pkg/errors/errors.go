// Package errors provides structured error types for mavenviz.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the resolution core and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure of the resolution pipeline carries one of three codes:
//   - MALFORMED_COORDINATE: the "group:artifact" string has no separator
//   - RETRIEVAL_FAILED: the POM could not be fetched (see [RetrievalError])
//   - MANIFEST_PARSE: the POM is not well-formed XML
//
// Configuration problems detected before the pipeline runs use INVALID_INPUT.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedCoordinate, "missing ':' in %q", raw)
//	if errors.Is(err, errors.ErrCodeMalformedCoordinate) {
//	    // Handle bad input
//	}
//
//	var re *errors.RetrievalError
//	if stderrors.As(err, &re) && re.StatusCode == 404 {
//	    // Artifact or version does not exist in the repository
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput        Code = "INVALID_INPUT"
	ErrCodeMalformedCoordinate Code = "MALFORMED_COORDINATE"

	// Pipeline failures
	ErrCodeRetrieval     Code = "RETRIEVAL_FAILED"
	ErrCodeManifestParse Code = "MANIFEST_PARSE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for the outermost coded error.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Both *Error and typed errors exposing a Code() method are recognised.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c interface{ Code() Code }
	if errors.As(err, &c) {
		return c.Code()
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
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	var re *RetrievalError
	if errors.As(err, &re) {
		return re.describe()
	}
	return err.Error()
}

// RetrievalError reports a failed manifest download or read.
//
// StatusCode and Status are set for protocol failures (any response other
// than 200 OK). Transport and decoding failures leave StatusCode at zero and
// carry the underlying problem in Cause.
type RetrievalError struct {
	URL        string // Address that was requested
	StatusCode int    // HTTP status code, 0 when no response was received
	Status     string // Reason phrase, e.g. "Not Found"
	Cause      error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeRetrieval, e.describe())
}

// Unwrap returns the underlying cause.
func (e *RetrievalError) Unwrap() error { return e.Cause }

// Code returns the error code for this error type.
func (e *RetrievalError) Code() Code { return ErrCodeRetrieval }

func (e *RetrievalError) describe() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: HTTP %d - %s", e.URL, e.StatusCode, e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
	default:
		return fmt.Sprintf("fetch %s failed", e.URL)
	}
}
