// Package workspace wraps the git operations behind workspace folders:
// recognising linked worktrees (and locked ones), removing them the way git
// expects, creating worktrees from the current repository, and cloning.
//
// Commands go through system.CommandExecutor so tests can observe them:
//
//	g := workspace.NewGit(system.NewMockExecutor())
//	err := g.RemoveWorktree(ctx, "/home/me/work/tries/feature-x")
//
// Classification helpers (IsWorktree, IsWorktreeLocked) only look at the
// filesystem and never run git.
package workspace
