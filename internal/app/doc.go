// Package app provides the application context for try-rs.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
//	type App struct {
//	    Settings *config.Settings        // Resolved configuration
//	    Loader   *config.Loader          // Config discovery
//	    FS       system.FileSystem       // Deletes, config and shell writes
//	    Exec     system.CommandExecutor  // git
//	    Git      *workspace.Git          // Worktree and clone helpers
//	    Now      func() time.Time        // Date prefix clock
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithSettings(settings),
//	    app.WithFS(system.NewMockFS()),
//	    app.WithExecutor(system.NewMockExecutor()),
//	)
//
// # Available Options
//
//	WithSettings(settings)  // Skip config discovery
//	WithLoader(loader)      // Custom environment / directories
//	WithFS(fs)              // Custom filesystem
//	WithExecutor(exec)      // Custom command executor
//	WithClock(now)          // Fixed date for prefixes
package app
