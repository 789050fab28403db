package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// normalKeys are the bindings active in ModeNormal. Their help text makes up
// the legend shown when there is no status message.
type normalKeys struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Delete     key.Binding
	Edit       key.Binding
	Theme      key.Binding
	About      key.Binding
	Quit       key.Binding
	ClearQuery key.Binding
	Backspace  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k normalKeys) ShortHelp() []key.Binding {
	nav := key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Nav"))
	return []key.Binding{nav, k.Select, k.Delete, k.Edit, k.Theme, k.About, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k normalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down, k.ClearQuery}}
}

var normalKeyMap = normalKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k", "ctrl+p"),
		key.WithHelp("↑/ctrl+k", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j", "ctrl+n"),
		key.WithHelp("↓/ctrl+j", "Down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	),
	Delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("Ctrl-D", "Del"),
	),
	Edit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("Ctrl-E", "Edit"),
	),
	Theme: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("Ctrl-T", "Theme"),
	),
	About: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("Ctrl-A", "About"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc/Ctrl+C", "Quit"),
	),
	ClearQuery: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("Ctrl-U", "Clear"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
	),
}

// listKeys drive the overlay lists (themes and config locations).
type listKeys struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Toggle  key.Binding
}

var listKeyMap = listKeys{
	Up:      key.NewBinding(key.WithKeys("up", "k", "p")),
	Down:    key.NewBinding(key.WithKeys("down", "j", "n")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Cancel:  key.NewBinding(key.WithKeys("esc")),
	Toggle:  key.NewBinding(key.WithKeys(" ")),
}

var (
	yesKey    = key.NewBinding(key.WithKeys("y", "Y"))
	noKey     = key.NewBinding(key.WithKeys("n", "N", "esc"))
	acceptKey = key.NewBinding(key.WithKeys("y", "Y", "enter"))
	closeKey  = key.NewBinding(key.WithKeys("esc", "enter", "q", " "))
	forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))
)
