package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/logging"
)

type effectKind int

const (
	effAppendQuery effectKind = iota
	effBackspace
	effClearQuery
	effMoveCursor
	effSetMode
	effDeleteSelected
	effThemeBegin
	effThemeMove
	effThemeToggleTransparent
	effThemeRestore
	effThemeCommit
	effLocationMove
	effLocationCommit
	effSetStatus
	effFinish
)

// effect is one state change requested by a key handler. Handlers only read
// the model; apply is the single place that mutates it.
type effect struct {
	kind   effectKind
	text   string
	delta  int
	mode   Mode
	result Result
}

func appendQuery(s string) effect   { return effect{kind: effAppendQuery, text: s} }
func moveCursor(delta int) effect   { return effect{kind: effMoveCursor, delta: delta} }
func setMode(mode Mode) effect      { return effect{kind: effSetMode, mode: mode} }
func themeMove(delta int) effect    { return effect{kind: effThemeMove, delta: delta} }
func locationMove(delta int) effect { return effect{kind: effLocationMove, delta: delta} }
func setStatus(msg string) effect   { return effect{kind: effSetStatus, text: msg} }
func finish(r Result) effect        { return effect{kind: effFinish, result: r} }

func only(kind effectKind) effect { return effect{kind: kind} }

// apply runs effects in order and returns tea.Quit once the session is
// finished.
func (m *Model) apply(effects []effect) tea.Cmd {
	for _, e := range effects {
		switch e.kind {
		case effAppendQuery:
			m.query += e.text
			m.refilter()
		case effBackspace:
			if r := []rune(m.query); len(r) > 0 {
				m.query = string(r[:len(r)-1])
			}
			m.refilter()
		case effClearQuery:
			m.query = ""
			m.refilter()
		case effMoveCursor:
			m.cursor = clamp(m.cursor+e.delta, len(m.filtered))
		case effSetMode:
			m.mode = e.mode
			if e.mode == ModeConfigSaveLocationSelect {
				m.locationCursor = 0
			}
		case effDeleteSelected:
			m.deleteSelected()
		case effThemeBegin:
			m.beginThemeSelect()
		case effThemeMove:
			m.themeCursor = clamp(m.themeCursor+e.delta, len(m.themes))
			m.theme = m.themes[m.themeCursor]
		case effThemeToggleTransparent:
			m.transparent = !m.transparent
		case effThemeRestore:
			m.restoreTheme()
		case effThemeCommit:
			m.commitTheme()
		case effLocationMove:
			m.locationCursor = clamp(m.locationCursor+e.delta, int(locationCount))
		case effLocationCommit:
			m.saveToLocation(saveLocation(m.locationCursor))
		case effSetStatus:
			m.status = e.text
		case effFinish:
			m.result = e.result
			m.quitting = true
			logging.Debug("session finished",
				"selection", e.result.Selection.Kind.String(),
				"name", e.result.Selection.Name,
				"editor", e.result.WantsEditor,
			)
			return tea.Quit
		}
	}
	return nil
}

// refilter recomputes the filtered list from the catalog and resets the
// cursor.
func (m *Model) refilter() {
	m.filtered = catalog.Refilter(m.entries, m.query)
	m.cursor = 0
}

// clamp keeps i within [0, n-1], or 0 when n is zero.
func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
