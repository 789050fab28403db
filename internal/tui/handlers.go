package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// modeHandler maps a key press to the effects it causes in one mode.
type modeHandler func(m *Model, msg tea.KeyMsg) []effect

var handlers = map[Mode]modeHandler{
	ModeNormal:                   handleNormal,
	ModeDeleteConfirm:            handleDeleteConfirm,
	ModeThemeSelect:              handleThemeSelect,
	ModeConfigSavePrompt:         handleConfigSavePrompt,
	ModeConfigSaveLocationSelect: handleLocationSelect,
	ModeAbout:                    handleAbout,
}

// keyEffects resolves a key press to effects. ctrl+c ends the session from
// any mode after rolling back a theme preview.
func (m *Model) keyEffects(msg tea.KeyMsg) []effect {
	if key.Matches(msg, forceQuit) {
		return []effect{only(effThemeRestore), finish(Result{Selection: None()})}
	}
	h, ok := handlers[m.mode]
	if !ok {
		return nil
	}
	return h(m, msg)
}

func handleNormal(m *Model, msg tea.KeyMsg) []effect {
	k := normalKeyMap
	switch {
	case key.Matches(msg, k.Select):
		if sel, ok := m.selected(); ok {
			return []effect{finish(Result{Selection: Folder(sel.Name)})}
		}
		if m.query != "" {
			return []effect{finish(Result{Selection: New(m.query)})}
		}
		return nil

	case key.Matches(msg, k.Quit):
		return []effect{finish(Result{Selection: None()})}

	case key.Matches(msg, k.Up):
		return []effect{moveCursor(-1)}

	case key.Matches(msg, k.Down):
		return []effect{moveCursor(1)}

	case key.Matches(msg, k.Backspace):
		return []effect{only(effBackspace)}

	case key.Matches(msg, k.ClearQuery):
		return []effect{only(effClearQuery)}

	case key.Matches(msg, k.Delete):
		if len(m.filtered) == 0 {
			return nil
		}
		return []effect{setMode(ModeDeleteConfirm)}

	case key.Matches(msg, k.Edit):
		if m.editor == "" {
			return []effect{setStatus("No editor configured in config.toml")}
		}
		if sel, ok := m.selected(); ok {
			return []effect{finish(Result{Selection: Folder(sel.Name), WantsEditor: true})}
		}
		if m.query != "" {
			return []effect{finish(Result{Selection: New(m.query), WantsEditor: true})}
		}
		return nil

	case key.Matches(msg, k.Theme):
		return []effect{only(effThemeBegin), setMode(ModeThemeSelect)}

	case key.Matches(msg, k.About):
		return []effect{setMode(ModeAbout)}
	}

	switch {
	case msg.Type == tea.KeySpace:
		return []effect{appendQuery(" ")}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		return []effect{appendQuery(string(msg.Runes))}
	}
	return nil
}

func handleDeleteConfirm(_ *Model, msg tea.KeyMsg) []effect {
	switch {
	case key.Matches(msg, yesKey):
		return []effect{only(effDeleteSelected), setMode(ModeNormal)}
	case key.Matches(msg, noKey):
		return []effect{setMode(ModeNormal)}
	}
	return nil
}

func handleThemeSelect(_ *Model, msg tea.KeyMsg) []effect {
	k := listKeyMap
	switch {
	case key.Matches(msg, k.Up):
		return []effect{themeMove(-1)}
	case key.Matches(msg, k.Down):
		return []effect{themeMove(1)}
	case key.Matches(msg, k.Toggle):
		return []effect{only(effThemeToggleTransparent)}
	case key.Matches(msg, k.Cancel):
		return []effect{only(effThemeRestore), setMode(ModeNormal)}
	case key.Matches(msg, k.Confirm):
		return []effect{only(effThemeCommit)}
	}
	return nil
}

func handleConfigSavePrompt(_ *Model, msg tea.KeyMsg) []effect {
	switch {
	case key.Matches(msg, acceptKey):
		return []effect{setMode(ModeConfigSaveLocationSelect)}
	case key.Matches(msg, noKey):
		return []effect{setMode(ModeNormal)}
	}
	return nil
}

func handleLocationSelect(_ *Model, msg tea.KeyMsg) []effect {
	k := listKeyMap
	switch {
	case key.Matches(msg, k.Up):
		return []effect{locationMove(-1)}
	case key.Matches(msg, k.Down):
		return []effect{locationMove(1)}
	case key.Matches(msg, k.Confirm):
		return []effect{only(effLocationCommit), setMode(ModeNormal)}
	case key.Matches(msg, k.Cancel):
		return []effect{setMode(ModeNormal)}
	}
	return nil
}

func handleAbout(_ *Model, msg tea.KeyMsg) []effect {
	if key.Matches(msg, closeKey) {
		return []effect{setMode(ModeNormal)}
	}
	return nil
}
