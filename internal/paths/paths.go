// Package paths resolves user directories and builds paths under the tries
// root without letting them escape it.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	homedir "github.com/mitchellh/go-homedir"
)

// AppDirName is the per-user directory name for config and shell files.
const AppDirName = "try-rs"

// Home returns the user's home directory.
func Home() (string, error) {
	return homedir.Dir()
}

// Expand replaces a leading ~ with the home directory.
func Expand(path string) (string, error) {
	return homedir.Expand(path)
}

// ConfigBase returns the platform config directory, falling back to
// ~/.config when the platform has none.
func ConfigBase() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir, nil
	}
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// DefaultTriesRoot is ~/work/tries.
func DefaultTriesRoot() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "work", "tries"), nil
}

// Entry returns the path of the folder called name directly under root.
// The last component is not resolved, so a symlinked entry stays the link
// itself. Names with separators, "." and ".." are rejected.
func Entry(root, name string) (string, error) {
	switch {
	case name == "":
		return "", fmt.Errorf("empty entry name")
	case name == "." || name == "..":
		return "", fmt.Errorf("invalid entry name %q", name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return "", fmt.Errorf("entry name %q must not contain a path separator", name)
	}
	return filepath.Join(root, name), nil
}

// Join resolves a relative path such as a clone destination under root.
// Symlinks and ".." are resolved inside root, never outside it.
func Join(root, rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("empty path")
	}
	p, err := securejoin.SecureJoin(root, rel)
	if err != nil {
		return "", fmt.Errorf("resolving %q under %s: %w", rel, root, err)
	}
	if p == filepath.Clean(root) {
		return "", fmt.Errorf("path %q resolves to the root itself", rel)
	}
	return p, nil
}
