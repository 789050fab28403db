// Package shell generates and installs the shell functions that turn the
// command printed by try-rs into a directory change.
package shell

import (
	"embed"
	"fmt"
	"runtime"
	"strings"
)

//go:embed scripts/*
var scripts embed.FS

// Shell identifies a supported shell.
type Shell string

const (
	Fish       Shell = "fish"
	Zsh        Shell = "zsh"
	Bash       Shell = "bash"
	NuShell    Shell = "nu-shell"
	PowerShell Shell = "power-shell"
)

// All lists the supported shells.
func All() []Shell {
	return []Shell{Fish, Zsh, Bash, NuShell, PowerShell}
}

var aliases = map[string]Shell{
	"fish":        Fish,
	"zsh":         Zsh,
	"bash":        Bash,
	"nu-shell":    NuShell,
	"nushell":     NuShell,
	"nu":          NuShell,
	"power-shell": PowerShell,
	"powershell":  PowerShell,
	"pwsh":        PowerShell,
}

// Parse resolves a shell name, accepting common spellings.
func Parse(name string) (Shell, error) {
	if s, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	names := make([]string, 0, len(All()))
	for _, s := range All() {
		names = append(names, string(s))
	}
	return "", fmt.Errorf("unsupported shell %q (expected one of: %s)", name, strings.Join(names, ", "))
}

// String implements pflag.Value.
func (s *Shell) String() string {
	return string(*s)
}

// Set implements pflag.Value.
func (s *Shell) Set(v string) error {
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Shell) Type() string {
	return "shell"
}

func script(name string) string {
	data, err := scripts.ReadFile("scripts/" + name)
	if err != nil {
		panic(fmt.Sprintf("missing embedded script %s: %v", name, err))
	}
	return string(data)
}

func join(parts ...string) string {
	return strings.Join(parts, "\n")
}

// Content returns the integration script installed by Setup: the wrapper
// function plus tab completion.
func Content(s Shell) string {
	switch s {
	case Fish:
		return join(script("wrapper.fish"), script("picker.fish"), script("complete.fish"))
	case Zsh:
		return join(script("wrapper.sh"), script("complete.zsh"))
	case Bash:
		return join(script("wrapper.sh"), script("complete.bash"))
	case NuShell:
		return join(script("complete.nu"), script("wrapper.nu"))
	case PowerShell:
		return join(script("wrapper.ps1"), script("complete.ps1"))
	}
	return ""
}

// Completions returns only the tab completion script.
func Completions(s Shell) string {
	switch s {
	case Fish:
		return script("complete.fish")
	case Zsh:
		return script("complete.zsh")
	case Bash:
		return script("complete.bash")
	case NuShell:
		return join(script("complete.nu"), script("extern.nu"))
	case PowerShell:
		return script("complete.ps1")
	}
	return ""
}

// PickerFunction is the fish function bound to a key to open the inline
// picker.
func PickerFunction() string {
	return script("picker.fish")
}

// Detect guesses the user's shell from the environment. goos is normally
// runtime.GOOS.
func Detect(lookup func(string) (string, bool), goos string) (Shell, bool) {
	if goos == "windows" {
		return PowerShell, true
	}
	if _, ok := lookup("NU_VERSION"); ok {
		return NuShell, true
	}
	sh, _ := lookup("SHELL")
	switch {
	case strings.Contains(sh, "fish"):
		return Fish, true
	case strings.Contains(sh, "zsh"):
		return Zsh, true
	case strings.Contains(sh, "bash"):
		return Bash, true
	}
	return "", false
}

// DetectCurrent is Detect over the process environment.
func DetectCurrent(lookup func(string) (string, bool)) (Shell, bool) {
	return Detect(lookup, runtime.GOOS)
}
