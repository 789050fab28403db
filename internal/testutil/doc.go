// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// TOML config fixtures are embedded using go:embed:
//
//	fixtures/valid_config.toml
//	fixtures/custom_colors.toml
//	fixtures/invalid_config.toml
//
//	f, err := testutil.ValidConfig()
//	data, err := testutil.LoadFixture("invalid_config.toml")
//
// # Test Environment
//
// NewTestEnv builds a temporary tries root and installs an app.App that uses
// it as app.Default for the duration of the test:
//
//	env := testutil.NewTestEnv(t)
//	env.AddEntry("2024-01-01 alpha", time.Now(), "go.mod")
//	env.AddWorktree("feature", time.Now(), true)
//	env.Exec.AddResponse("git -C "+env.Path("feature")+" worktree remove", nil, nil)
package testutil
