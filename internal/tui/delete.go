package tui

import (
	"context"
	"fmt"

	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/paths"
	"github.com/tassiovirginio/try-rs/internal/system"
	"github.com/tassiovirginio/try-rs/internal/workspace"
)

// deleteSelected removes the selected entry. Git worktrees are handed to
// `git worktree remove` so the main repository's bookkeeping stays
// consistent; anything else is removed recursively. Failures become the
// status message and leave the catalog untouched.
func (m *Model) deleteSelected() {
	sel, ok := m.selected()
	if !ok {
		return
	}

	target, err := paths.Entry(m.root, sel.Name)
	if err != nil {
		m.status = fmt.Sprintf("Error deleting: %v", err)
		return
	}

	if workspace.IsWorktree(target) {
		if err := m.git.RemoveWorktree(context.Background(), target); err != nil {
			logging.Debug("worktree remove failed", "path", target, "error", err)
			if system.IsExitError(err) {
				m.status = "Error deleting: " + system.FirstLine(system.Stderr(err))
			} else {
				m.status = fmt.Sprintf("Error removing worktree: %v", err)
			}
			return
		}
		m.status = "Worktree removed: " + target
	} else {
		if err := m.fs.RemoveAll(target); err != nil {
			logging.Debug("remove failed", "path", target, "error", err)
			m.status = fmt.Sprintf("Error deleting: %v", err)
			return
		}
		m.status = "Deleted: " + target
	}

	m.entries = catalog.Remove(m.entries, sel.Name)
	m.refilter()
}
