package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tassiovirginio/try-rs/internal/app"
)

// Options configures Run.
type Options struct {
	// Query pre-fills the search box.
	Query string

	// Inline draws below the prompt instead of on the alternate screen,
	// using at most InlineHeight rows.
	Inline       bool
	InlineHeight int
}

// Run shows the picker on stderr and blocks until the user finishes. Stdout
// is left untouched so the caller can print the resulting shell command.
func Run(a *app.App, opts Options) (Result, error) {
	m, err := NewModel(a, opts.Query)
	if err != nil {
		return Result{}, err
	}

	progOpts := []tea.ProgramOption{
		tea.WithOutput(os.Stderr),
		tea.WithInputTTY(),
	}
	if opts.Inline {
		m.inlineHeight = max(opts.InlineHeight, searchHeight+legendHeight+3)
		m.height = m.inlineHeight
	} else {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("picker failed: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("picker returned unexpected model %T", final)
	}
	return fm.Result(), nil
}
