// Package app provides the application context for try-rs.
// It allows dependency injection for testing.
package app

import (
	"fmt"
	"time"

	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/paths"
	"github.com/tassiovirginio/try-rs/internal/system"
	"github.com/tassiovirginio/try-rs/internal/workspace"
)

// Version is stamped at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// App holds the application dependencies
type App struct {
	// Settings is the resolved configuration. Loaded on first use when nil.
	Settings *config.Settings

	// Loader resolves Settings and the config save locations
	Loader *config.Loader

	// FS performs deletes and config/shell file writes
	FS system.FileSystem

	// Exec runs git
	Exec system.CommandExecutor

	// Git wraps Exec for worktree and clone operations
	Git *workspace.Git

	// Now supplies the date used for folder prefixes
	Now func() time.Time
}

// Option is a function that configures the App
type Option func(*App)

// WithSettings sets pre-resolved settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithLoader sets a custom config loader
func WithLoader(l *config.Loader) Option {
	return func(a *App) {
		a.Loader = l
	}
}

// WithFS sets a custom filesystem
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Exec = exec
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.Now = now
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Exec == nil {
		app.Exec = system.DefaultExecutor()
	}
	if app.Loader == nil {
		app.Loader = config.NewLoader()
		app.Loader.FS = app.FS
	}
	if app.Git == nil {
		app.Git = workspace.NewGit(app.Exec)
	}
	if app.Now == nil {
		app.Now = time.Now
	}

	return app
}

// LoadSettings returns Settings, resolving them on first call.
func (a *App) LoadSettings() (*config.Settings, error) {
	if a.Settings != nil {
		return a.Settings, nil
	}
	s, err := a.Loader.Load()
	if err != nil {
		return nil, err
	}
	a.Settings = s
	return s, nil
}

// EnsureRoot creates the tries root if it is missing.
func (a *App) EnsureRoot() error {
	s, err := a.LoadSettings()
	if err != nil {
		return err
	}
	if a.FS.IsDir(s.TriesRoot) {
		return nil
	}
	logging.Debug("creating tries root", "root", s.TriesRoot)
	if err := a.FS.MkdirAll(s.TriesRoot, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.TriesRoot, err)
	}
	return nil
}

// EntryPath returns the absolute path of a folder under the tries root.
func (a *App) EntryPath(name string) (string, error) {
	s, err := a.LoadSettings()
	if err != nil {
		return "", err
	}
	return paths.Entry(s.TriesRoot, name)
}

// JoinPath resolves a user-supplied relative path under the tries root.
func (a *App) JoinPath(rel string) (string, error) {
	s, err := a.LoadSettings()
	if err != nil {
		return "", err
	}
	return paths.Join(s.TriesRoot, rel)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
