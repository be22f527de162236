package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrHelper   = "HELPER"
	ErrDispatch = "DISPATCH"
	ErrMetrics  = "METRICS"
	ErrTerminal = "TERMINAL"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered for the terminal as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrHelper code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrHelper,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface with the multi-line terminal format.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Short returns a single-line form suitable for log panels: the message,
// followed by the cause when there is one.
func (e *Error) Short() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, Short(e.Cause))
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var rmErr *Error
	if errors.As(err, &rmErr) {
		return rmErr.Code == code
	}
	return false
}

// Short flattens any error to one line. Structured errors use their Short
// form; anything else has newlines collapsed.
func Short(err error) string {
	if err == nil {
		return ""
	}
	var rmErr *Error
	if errors.As(err, &rmErr) {
		return rmErr.Short()
	}
	return strings.Join(strings.Fields(err.Error()), " ")
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
