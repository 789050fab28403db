package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/system"
)

const rcMarker = "# try-rs integration"

// Installer writes integration files and wires them into shell rc files.
type Installer struct {
	FS system.FileSystem

	Home string
	// ConfigBase is the user config directory (fish and nushell live there).
	ConfigBase string
	// ConfigDir is the try-rs config directory.
	ConfigDir string
}

// NewInstaller resolves the directories from a config loader.
func NewInstaller(l *config.Loader, fs system.FileSystem) (*Installer, error) {
	home, err := l.HomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	base, err := l.ConfigBaseDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	dir, err := l.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return &Installer{FS: fs, Home: home, ConfigBase: base, ConfigDir: dir}, nil
}

// IntegrationPath is where Setup writes the script for s.
func (i *Installer) IntegrationPath(s Shell) string {
	switch s {
	case Fish:
		return filepath.Join(i.ConfigBase, "fish", "functions", "try-rs.fish")
	case Zsh:
		return filepath.Join(i.ConfigDir, "try-rs.zsh")
	case Bash:
		return filepath.Join(i.ConfigDir, "try-rs.bash")
	case PowerShell:
		return filepath.Join(i.ConfigDir, "try-rs.ps1")
	case NuShell:
		return filepath.Join(i.ConfigDir, "try-rs.nu")
	}
	return ""
}

// IsConfigured reports whether the integration file for s exists.
func (i *Installer) IsConfigured(s Shell) bool {
	return i.FS.Exists(i.IntegrationPath(s))
}

// Setup writes the integration script for s and, where the shell has a
// known rc file, adds a line that sources it.
func (i *Installer) Setup(s Shell) error {
	path := i.IntegrationPath(s)
	if path == "" {
		return fmt.Errorf("unsupported shell %q", s)
	}
	if err := i.write(path, Content(s)); err != nil {
		return err
	}
	logging.UserSuccess("%s function file created at: %s", s, path)

	switch s {
	case Fish:
		picker := filepath.Join(i.ConfigBase, "fish", "functions", "try-rs-picker.fish")
		if err := i.write(picker, PickerFunction()); err != nil {
			return err
		}
		logging.UserSuccess("Fish picker function file created at: %s", picker)
		logging.UserInfo("You may need to restart your shell or run 'source %s' to apply changes.", path)
		logging.UserInfo("Optional: append the following to %s to bind Ctrl+T:",
			filepath.Join(i.ConfigBase, "fish", "config.fish"))
		logging.UserInfo("bind \\ct try-rs-picker")
		logging.UserInfo("bind -M insert \\ct try-rs-picker")
		return nil

	case Zsh:
		return i.appendSource(filepath.Join(i.Home, ".zshrc"), sourceLine("source", path))

	case Bash:
		return i.appendSource(filepath.Join(i.Home, ".bashrc"), sourceLine("source", path))

	case NuShell:
		rc := filepath.Join(i.ConfigBase, "nushell", "config.nu")
		line := sourceLine("source", path)
		if !i.FS.Exists(rc) {
			logging.UserWarning("Could not find config.nu at %s", rc)
			logging.UserInfo("Please add the following line manually:")
			logging.UserInfo("%s", line)
			return nil
		}
		return i.appendSource(rc, line)

	case PowerShell:
		return i.setupPowerShell(path)
	}
	return nil
}

func (i *Installer) setupPowerShell(path string) error {
	docs := filepath.Join(i.Home, "Documents")
	profile := filepath.Join(docs, "PowerShell", "Microsoft.PowerShell_profile.ps1")
	if legacy := filepath.Join(docs, "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1"); !i.FS.Exists(profile) && i.FS.Exists(legacy) {
		profile = legacy
	}

	line := sourceLine(".", path)
	if i.FS.Exists(profile) {
		if err := i.appendSource(profile, line); err != nil {
			return err
		}
	} else {
		if err := i.write(profile, rcMarker+"\n"+line+"\n"); err != nil {
			return err
		}
		logging.UserSuccess("PowerShell profile created and configured at: %s", profile)
	}

	logging.UserInfo("You may need to restart your shell or run '. %s' to apply changes.", profile)
	logging.UserInfo("If you get an error about running scripts, you may need to run: " +
		"Set-ExecutionPolicy -Scope CurrentUser -ExecutionPolicy RemoteSigned")
	return nil
}

func sourceLine(cmd, path string) string {
	return fmt.Sprintf("%s '%s'", cmd, path)
}

func (i *Installer) write(path, content string) error {
	if dir := filepath.Dir(path); !i.FS.Exists(dir) {
		if err := i.FS.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := i.FS.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// appendSource adds line to an existing rc file unless it is already there.
// A missing rc file is left alone and the user is told what to add.
func (i *Installer) appendSource(rc, line string) error {
	if !i.FS.Exists(rc) {
		logging.UserInfo("You need to add the following line to %s:", rc)
		logging.UserInfo("%s", line)
		return nil
	}

	data, err := i.FS.ReadFile(rc)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", rc, err)
	}
	content := string(data)
	if strings.Contains(content, line) {
		logging.UserInfo("Configuration already present in %s", rc)
		return nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += "\n" + rcMarker + "\n" + line + "\n"
	if err := i.FS.WriteFile(rc, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to update %s: %w", rc, err)
	}
	logging.UserSuccess("Added configuration to %s", rc)
	return nil
}
