package workspace

import (
	"bytes"
	"os"
	"path/filepath"
)

// IsRepo reports whether dir has a .git entry (directory or file).
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// IsWorktree reports whether dir is a linked worktree: its .git is a file
// pointing at the main repository rather than a directory.
func IsWorktree(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.Mode().IsRegular()
}

// GitDir returns the administrative directory named by a worktree's .git
// file ("gitdir: <path>"). Relative paths are resolved against dir.
func GitDir(dir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, ".git"))
	if err != nil {
		return "", false
	}

	line := data
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	i := bytes.IndexByte(line, ' ')
	if i < 0 {
		return "", false
	}
	gitdir := string(bytes.TrimRight(line[i+1:], "\r"))
	if gitdir == "" {
		return "", false
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(dir, gitdir)
	}
	return gitdir, true
}

// IsWorktreeLocked reports whether dir is a worktree that was locked with
// "git worktree lock".
func IsWorktreeLocked(dir string) bool {
	if !IsWorktree(dir) {
		return false
	}
	gitdir, ok := GitDir(dir)
	if !ok {
		return false
	}
	_, err := os.Stat(filepath.Join(gitdir, "locked"))
	return err == nil
}
