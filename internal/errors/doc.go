// Package errors provides typed errors with exit codes for try-rs.
//
// TryError wraps an error with the process exit code main should use:
//
//	type TryError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitNotGitRepo      = 2  // --worktree used outside a repository
//	ExitConfigError     = 3  // Malformed config.toml
//	ExitGitFailed       = 4  // git clone / worktree add failed
//	ExitTerminalMissing = 5  // No TTY for the picker
//
// Errors raised inside the interactive picker never reach this package; they
// are shown on the status line instead.
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
