package errors

import (
	"errors"
	"fmt"
)

// Exit codes for try-rs
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitNotGitRepo      = 2
	ExitConfigError     = 3
	ExitGitFailed       = 4
	ExitTerminalMissing = 5
)

// TryError is the base error type for try-rs
type TryError struct {
	Code    int
	Message string
	Cause   error
}

func (e *TryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TryError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *TryError) ExitCode() int {
	return e.Code
}

// New creates a new TryError
func New(code int, message string) *TryError {
	return &TryError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a TryError
func Wrap(code int, message string, cause error) *TryError {
	return &TryError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// NotGitRepo returns an error when a command needs a git repository
func NotGitRepo(dir string) *TryError {
	return New(ExitNotGitRepo, fmt.Sprintf("not inside a git repository: %s", dir))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *TryError {
	return Wrap(ExitConfigError, message, cause)
}

// GitError returns an error for failed git invocations
func GitError(op string, cause error) *TryError {
	return Wrap(ExitGitFailed, fmt.Sprintf("git %s failed", op), cause)
}

// TerminalError returns an error when the picker cannot take over the terminal
func TerminalError(message string, cause error) *TryError {
	return Wrap(ExitTerminalMissing, message, cause)
}

// WorkspaceError returns an error for workspace directory operations
func WorkspaceError(op string, cause error) *TryError {
	return Wrap(ExitGeneralError, fmt.Sprintf("workspace %s failed", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *TryError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var tryErr *TryError
	if errors.As(err, &tryErr) {
		return tryErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
