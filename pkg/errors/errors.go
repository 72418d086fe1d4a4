// Package errors provides structured error types for agentsgen.
//
// Every fatal condition the generator can hit carries a machine-readable
// [Code] so callers (and tests) can tell a missing required file apart from a
// dependency that is absent from the build graph without matching on text.
//
// # Error Codes
//
//   - INVALID_*: bad flags, config files or paths
//   - *_NOT_FOUND: something expected in the input or the dependency graph is absent
//   - METADATA_QUERY: the build system's metadata command failed
//   - OUT_OF_DATE: --check found a stale output file
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDependencyNotFound, "cargo dependency not found: '%s'", name)
//	if errors.Is(err, errors.ErrCodeDependencyNotFound) {
//	    // ...
//	}
//
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput         Code = "INVALID_INPUT"
	ErrCodeInvalidConfig        Code = "INVALID_CONFIG"
	ErrCodeInvalidPath          Code = "INVALID_PATH"
	ErrCodeUnsupportedExtension Code = "UNSUPPORTED_EXTENSION"

	// File system errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

	// Dependency metadata errors
	ErrCodeMetadataQuery      Code = "METADATA_QUERY"
	ErrCodeMissingResolve     Code = "MISSING_RESOLVE"
	ErrCodeRootNodeNotFound   Code = "ROOT_NODE_NOT_FOUND"
	ErrCodeDependencyNotFound Code = "DEPENDENCY_NOT_FOUND"
	ErrCodePackageNotFound    Code = "PACKAGE_NOT_FOUND"

	// Output errors
	ErrCodeOutOfDate Code = "OUT_OF_DATE"

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

// WrapFile wraps a file system error as ErrCodeFileNotFound or ErrCodeIO.
// The *fs.PathError layer is dropped because the message names the path
// already; the result still matches fs.ErrNotExist.
func WrapFile(err error, format string, args ...any) *Error {
	code := ErrCodeIO
	if errors.Is(err, fs.ErrNotExist) {
		code = ErrCodeFileNotFound
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return Wrap(code, err, format, args...)
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
// For *Error types the code prefix is dropped throughout the chain; causes
// are kept.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
