package workspace

import (
	"fmt"
	"regexp"
	"strings"
)

// IsGitURL reports whether s looks like something git clone accepts.
func IsGitURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "git@") ||
		strings.HasPrefix(s, "ssh://") ||
		strings.HasSuffix(s, ".git")
}

// RepoName derives a folder name from a clone URL.
func RepoName(url string) string {
	clean := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if i := strings.LastIndexAny(clean, "/:"); i >= 0 {
		clean = clean[i+1:]
	}
	if clean == "" {
		return "cloned-repo"
	}
	return clean
}

// validName matches safe branch/folder names: alphanumeric, hyphens, underscores, dots.
var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateName checks that a worktree name can double as a branch name and
// a single folder under the tries root.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("worktree name must not be empty")
	}
	if len(name) > 128 {
		return fmt.Errorf("worktree name too long (max 128 characters)")
	}
	if !validName.MatchString(name) {
		return fmt.Errorf("worktree name %q contains invalid characters (allowed: alphanumeric, hyphens, underscores, dots)", name)
	}
	return nil
}
