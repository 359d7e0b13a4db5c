// Package errors provides sentinel errors for the pyforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrSchema indicates a malformed question schema (cycle or dangling
	// activation reference). Detected at load time, before any prompting.
	ErrSchema = errors.New("schema error")

	// ErrTemplate indicates an unresolved substitution token or a
	// malformed template. A packaging bug, not user error.
	ErrTemplate = errors.New("template error")

	// ErrConflict indicates two template units claim the same target
	// path incompatibly.
	ErrConflict = errors.New("resolution conflict")

	// ErrInput indicates user input could not be obtained or validated
	// (bad answer file, cancelled prompt, exhausted retries).
	ErrInput = errors.New("input error")

	// ErrWrite indicates one or more files failed to write.
	ErrWrite = errors.New("write error")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file path, question ID, or unit ID (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying sentinel or error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewSchemaError creates a schema error with details.
func NewSchemaError(message, location, hint string) error {
	return &DetailError{
		Type:     "invalid schema",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrSchema,
	}
}

// NewTemplateError creates a template error with details.
func NewTemplateError(message, location string) error {
	return &DetailError{
		Type:     "template rendering failed",
		Message:  message,
		Location: location,
		Hint:     "This indicates a template/schema mismatch in the template set, not bad input.",
		Cause:    ErrTemplate,
	}
}

// NewConflictError creates a resolution conflict error naming both units.
func NewConflictError(path, unitA, unitB string) error {
	return &DetailError{
		Type:     "conflicting template units",
		Message:  fmt.Sprintf("units %q and %q both target %q with incompatible write policies", unitA, unitB, path),
		Location: path,
		Hint:     "Units sharing a target path must all use the append policy.",
		Cause:    ErrConflict,
	}
}

// NewInputError creates an input error with details.
func NewInputError(message, location, hint string) error {
	return &DetailError{
		Type:     "invalid input",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrInput,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
