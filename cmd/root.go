package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tassiovirginio/try-rs/internal/app"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/shell"
)

// EnvLogFile names a file that receives logs when --log-file is not given.
const EnvLogFile = "TRY_LOG_FILE"

var (
	verbose    bool
	jsonOutput bool
	logFile    string

	setupShell       shell.Shell
	setupStdoutShell shell.Shell
	completionsShell shell.Shell

	shallowClone bool
	worktreeName string
	inlinePicker bool
	inlineHeight int

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "try-rs [NAME_OR_URL] [DESTINATION]",
	Short: "Fuzzy-find and jump into your experiment folders",
	Long: `try-rs keeps throwaway projects under one root (~/work/tries by default)
and lets you fuzzy-search, create, clone and delete them from the terminal.

The picker draws on stderr and prints a shell command on stdout, so it is
meant to be called through the shell function installed with --setup:
  - NAME jumps straight to a matching folder, or creates it
  - a git URL clones into a new folder
  - no argument opens the picker`,
	Version:           app.Version,
	Args:              cobra.MaximumNArgs(2),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
			logCloser = nil
		}
	},
	RunE: runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (needs --log-file)")
	pf.BoolVar(&jsonOutput, "json", false, "Write logs in JSON format")
	pf.StringVar(&logFile, "log-file", "", "Append logs to this file (env "+EnvLogFile+")")

	f := rootCmd.Flags()
	f.Var(&setupShell, "setup", "Install shell integration (fish, zsh, bash, nu-shell, power-shell)")
	f.Var(&setupStdoutShell, "setup-stdout", "Print the shell integration script instead of installing it")
	f.Var(&completionsShell, "completions", "Print only the tab completion script for a shell")
	f.BoolVarP(&shallowClone, "shallow-clone", "s", false, "Clone with --depth 1")
	f.StringVarP(&worktreeName, "worktree", "w", "", "Create a git worktree of the current repository under the tries root")
	f.BoolVar(&inlinePicker, "inline-picker", false, "Draw the picker below the prompt instead of full screen")
	f.IntVar(&inlineHeight, "inline-height", 18, "Rows used by --inline-picker")

	rootCmd.MarkFlagsMutuallyExclusive("setup", "setup-stdout", "completions", "worktree")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// setupLogging keeps stderr quiet unless logs go to a file: the picker owns
// the terminal while it runs.
func setupLogging(cmd *cobra.Command, args []string) error {
	path := logFile
	if path == "" {
		path = os.Getenv(EnvLogFile)
	}
	if path == "" {
		logging.Quiet(cmd.ErrOrStderr())
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logCloser = f
	logging.Setup(verbose, jsonOutput, f)
	logging.Debug("logging started", "version", app.Version, "args", args)
	return nil
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
