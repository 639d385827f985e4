// Package clierr defines structured error types for CLI commands.
// Errors carry a machine-readable code, a human-readable message,
// and optional details for scripted consumers.
package clierr

import (
	"errors"
	"fmt"
)

// Error codes are uppercase and underscore-separated. They are stable across minor versions.
const (
	InvalidAction     = "INVALID_ACTION"
	InvalidField      = "INVALID_FIELD"
	InvalidPriority   = "INVALID_PRIORITY"
	InvalidDate       = "INVALID_DATE"
	InvalidTime       = "INVALID_TIME"
	InvalidTaskNumber = "INVALID_TASK_NUMBER"
	BlankTask         = "BLANK_TASK"
	InvalidInput      = "INVALID_INPUT"
	InvalidConfig     = "INVALID_CONFIG"
	StorageRead       = "STORAGE_READ"
	StorageWrite      = "STORAGE_WRITE"
	NotATerminal      = "NOT_A_TERMINAL"
	InternalError     = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error whose message is "message: cause".
func Wrap(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message + ": " + cause.Error(), cause: cause}
}

// WithDetails returns the error with the given details map attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode returns 2 for InternalError, 1 for all others.
func (e *Error) ExitCode() int {
	if e.Code == InternalError {
		return 2 //nolint:mnd // exit code 2 for internal errors
	}
	return 1
}

// HasCode reports whether err is (or wraps) an *Error with the given code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
