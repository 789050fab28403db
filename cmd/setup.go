package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/shell"
)

// offerSetup asks once per run whether to install the integration for the
// detected shell. It stays silent when the shell is unknown, already
// configured, or stdin is not interactive.
func offerSetup(cmd *cobra.Command, installer *shell.Installer) {
	sh, ok := shell.DetectCurrent(lookupEnv)
	if !ok || installer.IsConfigured(sh) {
		return
	}
	if !isTerminal(os.Stdin) {
		logging.Debug("skipping setup prompt, stdin is not a terminal", "shell", sh)
		return
	}

	logInfo("Detected shell: %s", sh)
	fmt.Fprint(cmd.ErrOrStderr(), "Shell integration not configured. Do you want to set it up? [Y/n] ")

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return
	}
	if !acceptsDefaultYes(answer) {
		return
	}
	if err := installer.Setup(sh); err != nil {
		logWarning("Shell setup failed: %v", err)
	}
}

func acceptsDefaultYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	}
	return false
}
