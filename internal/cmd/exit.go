// Package cmd provides CLI command implementations.
package cmd

// Exit codes reported by the pyforge binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitSchemaError indicates a malformed question schema or unit
	// catalog was detected at load time.
	ExitSchemaError = 2

	// ExitTemplateError indicates a template failed to render.
	ExitTemplateError = 3

	// ExitConflictError indicates two template units claimed the same
	// target path incompatibly.
	ExitConflictError = 4

	// ExitInputError indicates user input could not be obtained or
	// validated (bad answer file, cancelled prompt).
	ExitInputError = 5

	// ExitWriteError indicates one or more files failed to write.
	ExitWriteError = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitSchemaError:
		return "Schema Error"
	case ExitTemplateError:
		return "Template Error"
	case ExitConflictError:
		return "Resolution Conflict"
	case ExitInputError:
		return "Input Error"
	case ExitWriteError:
		return "Write Error"
	default:
		return "Unknown"
	}
}
