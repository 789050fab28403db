// Package logging provides logging utilities for try-rs.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
//	logging.Debug("catalog built", "root", root, "entries", len(entries))
//	logging.Warn("config has unknown keys", "keys", keys)
//
// The picker draws on stderr, so while it runs the logger is either pointed
// at a --log-file or reduced to warnings with Quiet.
//
// # User Output
//
//	logging.UserInfo("Cloning %s...", url)
//	logging.UserSuccess("Integration written to %s", path)
//	logging.UserWarning("Shell integration not detected")
//	logging.UserError("Failed to create worktree: %v", err)
//
// All user messages go to stderr. Status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
