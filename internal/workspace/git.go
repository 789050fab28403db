package workspace

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/system"
)

// Git runs the git commands try-rs needs through a CommandExecutor.
type Git struct {
	exec system.CommandExecutor
}

// NewGit returns a Git bound to exec. A nil exec uses the system default.
func NewGit(exec system.CommandExecutor) *Git {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Git{exec: exec}
}

// IsInsideRepo reports whether dir is inside a git work tree.
func (g *Git) IsInsideRepo(ctx context.Context, dir string) bool {
	_, err := g.exec.Execute(ctx, "git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// BranchExists reports whether refs/heads/<branch> exists in repo.
func (g *Git) BranchExists(ctx context.Context, repo, branch string) bool {
	_, err := g.exec.Execute(ctx, "git", "-C", repo, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// AddWorktree checks out branch at path, creating the branch from HEAD when
// it does not exist yet.
func (g *Git) AddWorktree(ctx context.Context, repo, branch, path string) error {
	args := []string{"-C", repo, "worktree", "add"}
	if g.BranchExists(ctx, repo, branch) {
		args = append(args, path, branch)
	} else {
		args = append(args, "-b", branch, path)
	}

	logging.Debug("adding worktree", "repo", repo, "branch", branch, "path", path)
	if err := g.exec.ExecuteAttached(ctx, "git", args...); err != nil {
		return fmt.Errorf("failed to create git worktree: %w", err)
	}
	return nil
}

// RemoveWorktree runs "git worktree remove ." inside path. Use
// system.IsExitError to tell a refusal by git apart from git failing to
// start; system.Stderr then holds git's explanation.
func (g *Git) RemoveWorktree(ctx context.Context, path string) error {
	logging.Debug("removing worktree", "path", path)
	_, err := g.exec.Execute(ctx, "git", "-C", path, "worktree", "remove", ".")
	return err
}

// CloneOptions controls Clone.
type CloneOptions struct {
	Shallow bool
}

// Clone clones url into dest with submodules and all branches.
func (g *Git) Clone(ctx context.Context, url, dest string, opts CloneOptions) error {
	args := []string{"clone"}
	if opts.Shallow {
		args = append(args, "--depth", "1")
	}
	args = append(args, url, filepath.Clean(dest), "--recurse-submodules", "--no-single-branch")

	logging.Debug("cloning", "url", url, "dest", dest, "shallow", opts.Shallow)
	if err := g.exec.ExecuteAttached(ctx, "git", args...); err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}
