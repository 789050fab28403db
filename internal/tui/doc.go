// Package tui provides the interactive workspace picker for try-rs.
//
// This package uses the Bubble Tea framework. The picker draws on stderr so
// the caller can print a shell command on stdout once it returns:
//
//	result, err := tui.Run(app.Default, tui.Options{Query: "api"})
//	switch result.Selection.Kind {
//	case tui.SelectFolder:
//	    // cd into (or edit) an existing entry
//	case tui.SelectNew:
//	    // create the folder first
//	case tui.SelectNone:
//	    // user aborted
//	}
//
// # Modes
//
// The model is always in exactly one Mode. Each mode has a handler that maps
// a key press to a list of effects, and a single apply step executes them in
// order. Modes other than ModeNormal are overlays:
//
//   - ModeDeleteConfirm: y deletes the selected entry, n or Esc cancels
//   - ModeThemeSelect: hovered themes apply immediately, Space toggles the
//     background, Esc rolls back, Enter keeps the theme and saves it
//   - ModeConfigSavePrompt / ModeConfigSaveLocationSelect: create a config
//     file when none exists yet
//   - ModeAbout: version and project links
//
// Ctrl+C ends the session from any mode, rolling back an unconfirmed theme.
//
// # Deletion
//
// Git worktrees (a .git file rather than a directory) are removed with
// `git worktree remove .` run inside the worktree. Everything else is removed
// recursively. Errors become the status line and never end the session.
//
// # Rendering
//
// View builds a Frame from the model and renders it with lipgloss. The
// directory size shown in the Disk panel is computed once in the background
// by internal/disk; Init waits for it and triggers a repaint.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - key bindings and the help legend
//   - github.com/charmbracelet/lipgloss - Styling
//   - github.com/charmbracelet/x/ansi - width-aware truncation and overlays
package tui
