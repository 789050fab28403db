package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output functions with emoji prefixes.
// Everything goes to stderr: stdout carries only the command the
// shell wrapper evaluates.

var userOut io.Writer = os.Stderr

// SetUserOutput redirects user-facing messages. Passing nil restores stderr.
func SetUserOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	userOut = w
}

// UserInfo prints an info message.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(userOut, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...interface{}) {
	fmt.Fprintf(userOut, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(userOut, "⚠ "+format+"\n", args...)
}

// UserError prints an error message.
func UserError(format string, args ...interface{}) {
	fmt.Fprintf(userOut, "✗ "+format+"\n", args...)
}
