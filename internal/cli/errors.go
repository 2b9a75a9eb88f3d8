package cli

import "fmt"

// ExitError signals a specific process exit code from a command without
// calling os.Exit directly, keeping command execution testable. [Execute]
// extracts the code at the top level; everything below it just returns
// errors.
type ExitError struct {
	// Code is the exit code to return to the shell.
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError reports whether err is an *ExitError and extracts its code.
func IsExitError(err error) (int, bool) {
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code, true
	}
	return 0, false
}
