package system

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExitError reports a command that started but exited non-zero.
// MockExecutor responses use it to stand in for *exec.ExitError.
type ExitError struct {
	Code   int
	Stderr []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// IsExitError reports whether err means the command ran and failed, as
// opposed to never starting. Both *exec.ExitError and *ExitError qualify.
func IsExitError(err error) bool {
	var coder interface{ ExitCode() int }
	return errors.As(err, &coder)
}

// Stderr returns what a failed command wrote to stderr, or nil when err
// does not come from a command that ran.
func Stderr(err error) []byte {
	var osErr *exec.ExitError
	if errors.As(err, &osErr) {
		return osErr.Stderr
	}
	var mockErr *ExitError
	if errors.As(err, &mockErr) {
		return mockErr.Stderr
	}
	return nil
}

// FirstLine returns the first non-empty line of command output.
func FirstLine(output []byte) string {
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
