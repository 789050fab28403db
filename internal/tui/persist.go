package tui

import (
	"fmt"

	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/theme"
)

func (m *Model) beginThemeSelect() {
	m.original = &theme.Snapshot{Theme: m.theme, Transparent: m.transparent}
	m.themeCursor = theme.IndexOf(m.theme.Name)
}

// restoreTheme rolls back an unconfirmed preview. It is a no-op when no
// preview is in progress.
func (m *Model) restoreTheme() {
	if m.original == nil {
		return
	}
	m.theme = m.original.Theme
	m.transparent = m.original.Transparent
	m.original = nil
}

// commitTheme keeps the previewed theme. With a known config file it is
// saved right away; otherwise the user is asked whether to create one.
func (m *Model) commitTheme() {
	m.original = nil
	if m.configPath == "" {
		m.mode = ModeConfigSavePrompt
		return
	}

	if err := m.save(m.configPath); err != nil {
		m.status = fmt.Sprintf("Error saving: %v", err)
	} else {
		m.status = "Theme saved."
	}
	m.mode = ModeNormal
}

func (m *Model) saveToLocation(loc saveLocation) {
	var (
		path string
		err  error
	)
	switch loc {
	case locationHome:
		path, err = m.loader.HomePath()
	default:
		path, err = m.loader.SystemPath()
	}
	if err == nil {
		err = m.save(path)
	}
	if err != nil {
		m.status = fmt.Sprintf("Error saving config: %v", err)
		return
	}
	m.configPath = path
	m.status = "Theme saved!"
}

func (m *Model) save(path string) error {
	req := config.SaveRequest{
		ThemeName:       m.theme.Name,
		TriesRoot:       m.root,
		Editor:          m.editor,
		ApplyDatePrefix: m.datePrefix,
		Transparent:     m.transparent,
	}
	if _, ok := theme.ByName(m.theme.Name); !ok {
		req.Colors = m.theme.Colors()
	}
	if err := config.Save(m.fs, path, req); err != nil {
		logging.Debug("config save failed", "path", path, "error", err)
		return err
	}
	return nil
}
