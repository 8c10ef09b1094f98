package cli

// Exit codes for the cluewright CLI.
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates the clue passed all requested checks
	ExitSuccess = 0

	// ExitAuditFailed indicates the clue failed validation or auditing
	ExitAuditFailed = 1

	// ExitInvalidArguments indicates invalid command arguments or input files
	ExitInvalidArguments = 3

	// ExitMissingDependency indicates a required resource could not be loaded
	ExitMissingDependency = 4
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return ""
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitAuditFailed
}
