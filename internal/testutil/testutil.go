// Package testutil provides test utilities for packages that work on a
// tries root.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tassiovirginio/try-rs/internal/app"
	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/system"
	"github.com/tassiovirginio/try-rs/internal/theme"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Root     string
	Home     string
	Settings *config.Settings
	Exec     *system.MockExecutor
	App      *app.App
	cleanup  func()
}

// NewTestEnv creates a tries root inside a temp dir and an App that uses the
// real filesystem and a mock executor.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "tries")
	home := filepath.Join(tmpDir, "home")
	for _, dir := range []string{root, home} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	settings := &config.Settings{
		TriesRoot:   root,
		Theme:       theme.Default(),
		ConfigName:  config.DefaultFileName,
		Transparent: true,
	}

	mockExec := system.NewMockExecutor()
	loader := &config.Loader{
		FS:         system.DefaultFS(),
		Lookup:     func(string) (string, bool) { return "", false },
		Home:       home,
		ConfigBase: filepath.Join(home, ".config"),
	}

	testApp := app.New(
		app.WithSettings(settings),
		app.WithLoader(loader),
		app.WithExecutor(mockExec),
		app.WithClock(func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local) }),
	)

	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:        t,
		TmpDir:   tmpDir,
		Root:     root,
		Home:     home,
		Settings: settings,
		Exec:     mockExec,
		App:      testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// Path returns the absolute path of an entry.
func (e *TestEnv) Path(name string) string {
	return filepath.Join(e.Root, name)
}

// AddEntry creates a folder under the root with the given marker files and
// sets its modification time.
func (e *TestEnv) AddEntry(name string, modified time.Time, markers ...string) string {
	e.T.Helper()

	path := e.Path(name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create entry: %v", err)
	}
	for _, m := range markers {
		if err := os.WriteFile(filepath.Join(path, m), nil, 0644); err != nil {
			e.T.Fatalf("Failed to write marker %s: %v", m, err)
		}
	}
	if !modified.IsZero() {
		if err := os.Chtimes(path, modified, modified); err != nil {
			e.T.Fatalf("Failed to set mtime: %v", err)
		}
	}
	return path
}

// AddWorktree creates a folder whose .git file points at an admin dir
// inside the temp dir, optionally locked.
func (e *TestEnv) AddWorktree(name string, modified time.Time, locked bool) string {
	e.T.Helper()

	admin := filepath.Join(e.TmpDir, "main", ".git", "worktrees", name)
	if err := os.MkdirAll(admin, 0755); err != nil {
		e.T.Fatalf("Failed to create admin dir: %v", err)
	}
	if locked {
		if err := os.WriteFile(filepath.Join(admin, "locked"), nil, 0644); err != nil {
			e.T.Fatalf("Failed to lock worktree: %v", err)
		}
	}

	path := e.Path(name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create worktree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(path, ".git"), []byte("gitdir: "+admin+"\n"), 0644); err != nil {
		e.T.Fatalf("Failed to write .git: %v", err)
	}
	if !modified.IsZero() {
		if err := os.Chtimes(path, modified, modified); err != nil {
			e.T.Fatalf("Failed to set mtime: %v", err)
		}
	}
	return path
}

// Exists reports whether an entry is still on disk.
func (e *TestEnv) Exists(name string) bool {
	_, err := os.Stat(e.Path(name))
	return err == nil
}
