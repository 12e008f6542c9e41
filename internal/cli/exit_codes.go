package cli

import "fmt"

// Exit codes for the relnote CLI. Distinct codes let release pipelines
// branch on the failure kind.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates a general failure or a failed check.
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitMissingPrerequisite indicates a required file is missing.
	ExitMissingPrerequisite = 4
)

// ExitError carries an exit code through RunE when the command has already
// reported its own diagnostics. Execute unwraps it into the process exit
// status without printing anything further.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}
