package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/paths"
	"github.com/tassiovirginio/try-rs/internal/system"
	"github.com/tassiovirginio/try-rs/internal/theme"
)

// DefaultFileName is used when TRY_CONFIG is unset.
const DefaultFileName = "config.toml"

// Environment variables consulted while loading.
const (
	EnvTriesPath = "TRY_PATH"
	EnvConfig    = "TRY_CONFIG"
	EnvConfigDir = "TRY_CONFIG_DIR"
	EnvVisual    = "VISUAL"
	EnvEditor    = "EDITOR"
)

// File mirrors config.toml. Unset keys stay nil so saving never writes
// values the user did not choose.
type File struct {
	TriesPath             *string           `toml:"tries_path,omitempty"`
	Theme                 *string           `toml:"theme,omitempty"`
	Colors                map[string]string `toml:"colors,omitempty"`
	Editor                *string           `toml:"editor,omitempty"`
	ApplyDatePrefix       *bool             `toml:"apply_date_prefix,omitempty"`
	TransparentBackground *bool             `toml:"transparent_background,omitempty"`
}

// Settings is the resolved configuration handed to the picker.
type Settings struct {
	TriesRoot string
	Theme     theme.Theme
	Editor    string

	// ConfigPath is the file the settings came from, empty when none exists.
	ConfigPath string
	ConfigName string

	ApplyDatePrefix bool
	Transparent     bool
}

// FirstRun reports whether no config file was found.
func (s *Settings) FirstRun() bool {
	return s.ConfigPath == ""
}

// Loader resolves settings from the environment and config.toml.
type Loader struct {
	FS     system.FileSystem
	Lookup func(key string) (string, bool)

	// Home and ConfigBase override the user's directories when set.
	Home       string
	ConfigBase string
}

// NewLoader returns a Loader bound to the real environment.
func NewLoader() *Loader {
	return &Loader{
		FS:     system.DefaultFS(),
		Lookup: os.LookupEnv,
	}
}

// Load resolves settings using the real environment.
func Load() (*Settings, error) {
	return NewLoader().Load()
}

func (l *Loader) env(key string) string {
	if l.Lookup == nil {
		return ""
	}
	v, _ := l.Lookup(key)
	return v
}

// HomeDir returns the user's home directory.
func (l *Loader) HomeDir() (string, error) {
	if l.Home != "" {
		return l.Home, nil
	}
	return paths.Home()
}

// ConfigBaseDir returns the user config directory that holds try-rs/.
func (l *Loader) ConfigBaseDir() (string, error) {
	if l.ConfigBase != "" {
		return l.ConfigBase, nil
	}
	return paths.ConfigBase()
}

// FileName returns $TRY_CONFIG or config.toml.
func (l *Loader) FileName() string {
	if name := l.env(EnvConfig); name != "" {
		return name
	}
	return DefaultFileName
}

// ConfigDir is $TRY_CONFIG_DIR, else <config dir>/try-rs.
func (l *Loader) ConfigDir() (string, error) {
	if dir := l.env(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base, err := l.ConfigBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, paths.AppDirName), nil
}

// SystemPath is the preferred location for a new config file.
func (l *Loader) SystemPath() (string, error) {
	dir, err := l.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, l.FileName()), nil
}

// HomePath is the alternative location under ~/.try-rs.
func (l *Loader) HomePath() (string, error) {
	home, err := l.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+paths.AppDirName, l.FileName()), nil
}

// Candidates lists config file locations in lookup order.
func (l *Loader) Candidates() []string {
	name := l.FileName()
	var out []string
	if dir := l.env(EnvConfigDir); dir != "" {
		out = append(out, filepath.Join(dir, name))
	}
	if base, err := l.ConfigBaseDir(); err == nil {
		out = append(out, filepath.Join(base, paths.AppDirName, name))
	}
	if home, err := l.HomeDir(); err == nil {
		out = append(out,
			filepath.Join(home, ".config", paths.AppDirName, name),
			filepath.Join(home, "."+paths.AppDirName, name),
		)
	}
	return dedupe(out)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, p := range in {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// Load resolves the settings. A config file that exists but cannot be
// parsed is an error; a missing file is not.
func (l *Loader) Load() (*Settings, error) {
	s := &Settings{
		Theme:       theme.Default(),
		ConfigName:  l.FileName(),
		Transparent: true,
	}

	home, err := l.HomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	s.TriesRoot = filepath.Join(home, "work", "tries")

	s.Editor = l.env(EnvVisual)
	if s.Editor == "" {
		s.Editor = l.env(EnvEditor)
	}

	var file *File
	for _, candidate := range l.Candidates() {
		if !l.FS.Exists(candidate) {
			continue
		}
		file, err = l.readFile(candidate)
		if err != nil {
			return nil, err
		}
		s.ConfigPath = candidate
		break
	}

	if file != nil {
		s.apply(file, home)
	}

	if p := l.env(EnvTriesPath); p != "" {
		s.TriesRoot = expandHome(p, home)
	}

	logging.Debug("settings resolved",
		"root", s.TriesRoot,
		"theme", s.Theme.Name,
		"config", s.ConfigPath,
		"editor", s.Editor,
	)
	return s, nil
}

func (l *Loader) readFile(path string) (*File, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Debug("ignoring unknown config keys", "path", path, "keys", keys)
	}
	return &f, nil
}

func (s *Settings) apply(f *File, home string) {
	if f.TriesPath != nil && *f.TriesPath != "" {
		s.TriesRoot = expandHome(*f.TriesPath, home)
	}
	if f.Editor != nil && *f.Editor != "" {
		s.Editor = *f.Editor
	}

	switch {
	case f.Theme != nil:
		if t, ok := theme.ByName(*f.Theme); ok {
			s.Theme = t
		} else {
			logging.Debug("unknown theme, using default", "theme", *f.Theme)
		}
	case len(f.Colors) > 0:
		t, err := theme.Custom(f.Colors)
		if err != nil {
			logging.Debug("some custom colors were skipped", "error", err)
		}
		s.Theme = t
	}

	if f.ApplyDatePrefix != nil {
		s.ApplyDatePrefix = *f.ApplyDatePrefix
	}
	if f.TransparentBackground != nil {
		s.Transparent = *f.TransparentBackground
	}
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}

// SaveRequest carries the values written by Save. Colors is set for a
// palette that has no registry name.
type SaveRequest struct {
	ThemeName       string
	Colors          map[string]string
	TriesRoot       string
	Editor          string
	ApplyDatePrefix bool
	Transparent     bool
}

// Save writes a config file at path, creating parent directories. A named
// theme is written as `theme`; a palette given as Colors is written as a
// [colors] table instead, since `theme` would take precedence on reload.
func Save(fs system.FileSystem, path string, req SaveRequest) error {
	f := File{
		TriesPath:             &req.TriesRoot,
		ApplyDatePrefix:       &req.ApplyDatePrefix,
		TransparentBackground: &req.Transparent,
	}
	if len(req.Colors) > 0 {
		f.Colors = req.Colors
	} else {
		f.Theme = &req.ThemeName
	}
	if req.Editor != "" {
		f.Editor = &req.Editor
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); !fs.Exists(dir) {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logging.Debug("config saved", "path", path, "theme", req.ThemeName)
	return nil
}
