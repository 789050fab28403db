package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tassiovirginio/try-rs/internal/app"
	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/errors"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/shell"
	"github.com/tassiovirginio/try-rs/internal/tui"
	"github.com/tassiovirginio/try-rs/internal/workspace"
)

// Replaced in tests.
var (
	runPicker  = tui.Run
	getwd      = os.Getwd
	lookupEnv  = os.LookupEnv
	isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
)

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Script printing needs neither settings nor a tries root.
	if completionsShell != "" {
		fmt.Fprint(out, shell.Completions(completionsShell))
		return nil
	}
	if setupStdoutShell != "" {
		fmt.Fprint(out, shell.Content(setupStdoutShell))
		return nil
	}

	a := app.Default
	settings, err := a.LoadSettings()
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}
	if err := a.EnsureRoot(); err != nil {
		return errors.WorkspaceError("create root", err)
	}

	installer, err := shell.NewInstaller(a.Loader, a.FS)
	if err != nil {
		return errors.ConfigError("failed to resolve shell directories", err)
	}
	if setupShell != "" {
		if err := installer.Setup(setupShell); err != nil {
			return errors.Wrap(errors.ExitGeneralError, "shell setup failed", err)
		}
		return nil
	}

	ctx := cmd.Context()
	if worktreeName != "" {
		path, err := createWorktree(ctx, a, settings, worktreeName)
		if err != nil {
			return err
		}
		return emitCd(out, path)
	}

	offerSetup(cmd, installer)

	var query string
	if len(args) > 0 {
		query = args[0]
	}
	if workspace.IsGitURL(query) {
		var dest string
		if len(args) > 1 {
			dest = args[1]
		}
		path, err := cloneRepo(ctx, a, settings, query, dest)
		if err != nil {
			return err
		}
		return emitCd(out, path)
	}
	if len(args) > 1 {
		return errors.ValidationError("DESTINATION is only accepted together with a git URL")
	}

	if query != "" {
		matches := catalog.Matching(catalog.Build(settings.TriesRoot), query)
		logging.Debug("direct jump", "query", query, "matches", len(matches))
		switch len(matches) {
		case 0:
			return finish(out, a, settings, tui.Result{Selection: tui.New(query)})
		case 1:
			return finish(out, a, settings, tui.Result{Selection: tui.Folder(matches[0])})
		}
	}

	if !isTerminal(os.Stderr) {
		return errors.TerminalError("the picker needs a terminal on stderr", nil)
	}
	result, err := runPicker(a, tui.Options{
		Query:        query,
		Inline:       inlinePicker,
		InlineHeight: inlineHeight,
	})
	if err != nil {
		return errors.TerminalError("picker failed", err)
	}
	return finish(out, a, settings, result)
}

// createWorktree adds a worktree of the repository in the working directory
// under the tries root. An existing folder of the same name is reused.
func createWorktree(ctx context.Context, a *app.App, s *config.Settings, name string) (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", errors.WorkspaceError("resolve working directory", err)
	}
	if !a.Git.IsInsideRepo(ctx, cwd) {
		return "", errors.NotGitRepo(cwd)
	}
	if err := workspace.ValidateName(name); err != nil {
		return "", errors.ValidationError(err.Error())
	}

	folder := name
	if s.ApplyDatePrefix {
		folder = catalog.WithDatePrefix(name, a.Now())
	}
	path, err := a.EntryPath(folder)
	if err != nil {
		return "", errors.ValidationError(err.Error())
	}
	if a.FS.Exists(path) {
		logging.Debug("worktree folder already exists", "path", path)
		return path, nil
	}

	if err := a.Git.AddWorktree(ctx, cwd, name, path); err != nil {
		return "", errors.GitError("worktree add", err)
	}
	logSuccess("Worktree created at %s", path)
	return path, nil
}

// cloneRepo clones url into dest (or a folder named after the repository).
// dest may name a nested folder; it is resolved inside the tries root.
func cloneRepo(ctx context.Context, a *app.App, s *config.Settings, url, dest string) (string, error) {
	name := dest
	if name == "" {
		name = workspace.RepoName(url)
	}
	if s.ApplyDatePrefix {
		name = catalog.WithDatePrefix(name, a.Now())
	}
	path, err := a.JoinPath(name)
	if err != nil {
		return "", errors.ValidationError(err.Error())
	}

	logInfo("Cloning %s into %s", url, path)
	if err := a.Git.Clone(ctx, url, path, workspace.CloneOptions{Shallow: shallowClone}); err != nil {
		return "", errors.GitError("clone", err)
	}
	return path, nil
}
