package cmd

import (
	"errors"

	oerrors "github.com/pyforge/cli/internal/errors"
)

// ExitError wraps an error with an explicit exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrSchema):
		return ExitSchemaError
	case errors.Is(err, oerrors.ErrTemplate):
		return ExitTemplateError
	case errors.Is(err, oerrors.ErrConflict):
		return ExitConflictError
	case errors.Is(err, oerrors.ErrInput):
		return ExitInputError
	case errors.Is(err, oerrors.ErrWrite):
		return ExitWriteError
	default:
		return ExitGeneralError
	}
}
