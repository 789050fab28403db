package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tassiovirginio/try-rs/internal/app"
	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/disk"
	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/system"
	"github.com/tassiovirginio/try-rs/internal/theme"
	"github.com/tassiovirginio/try-rs/internal/workspace"
)

// Model is the bubbletea model for the workspace picker.
type Model struct {
	root    string
	entries []catalog.Entry

	filtered []catalog.Entry
	cursor   int
	query    string

	mode     Mode
	status   string
	result   Result
	quitting bool

	theme       theme.Theme
	transparent bool
	themes      []theme.Theme
	themeCursor int
	// original is the theme in effect when ModeThemeSelect was entered. nil
	// when no preview is in progress.
	original *theme.Snapshot

	locationCursor int
	configPath     string

	editor     string
	datePrefix bool

	probe  *disk.Probe
	freeMB uint64
	hasFS  bool

	fs     system.FileSystem
	git    *workspace.Git
	loader *config.Loader
	now    func() time.Time

	width  int
	height int
	// inlineHeight caps height when drawing without the alternate screen.
	inlineHeight int
}

// sizeReadyMsg is posted once the size probe has finished.
type sizeReadyMsg struct{}

// NewModel builds the catalog under the configured root, starts the size
// probe, and applies query as the initial filter.
func NewModel(a *app.App, query string) (Model, error) {
	s, err := a.LoadSettings()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		root:        s.TriesRoot,
		entries:     catalog.Build(s.TriesRoot),
		query:       query,
		theme:       s.Theme,
		transparent: s.Transparent,
		themes:      theme.All(),
		configPath:  s.ConfigPath,
		editor:      s.Editor,
		datePrefix:  s.ApplyDatePrefix,
		probe:       disk.StartProbe(s.TriesRoot),
		fs:          a.FS,
		git:         a.Git,
		loader:      a.Loader,
		now:         a.Now,
		width:       80,
		height:      24,
	}
	m.freeMB, m.hasFS = disk.FreeMB(s.TriesRoot)
	m.refilter()

	logging.Debug("picker ready",
		"root", m.root,
		"entries", len(m.entries),
		"query", query,
	)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.probe == nil {
		return nil
	}
	done := m.probe.Done()
	return func() tea.Msg {
		<-done
		return sizeReadyMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.inlineHeight > 0 {
			m.height = min(msg.Height, m.inlineHeight)
		}
		return m, nil

	case sizeReadyMsg:
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		cmd := m.apply(m.keyEffects(msg))
		return m, cmd
	}
	return m, nil
}

// Result returns the outcome once the session has finished.
func (m Model) Result() Result {
	return m.result
}

// Mode returns the active mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.query
}

// Status returns the transient status message, if any.
func (m Model) Status() string {
	return m.status
}

// Theme returns the palette in effect, including an unconfirmed preview.
func (m Model) Theme() theme.Theme {
	return m.theme
}

// Transparent reports whether the theme background is suppressed.
func (m Model) Transparent() bool {
	return m.transparent
}

// Filtered returns the entries matching the current query.
func (m Model) Filtered() []catalog.Entry {
	return m.filtered
}

// Cursor returns the index of the selected row.
func (m Model) Cursor() int {
	return m.cursor
}

// ConfigPath returns the config file saves go to, empty when none is known.
func (m Model) ConfigPath() string {
	return m.configPath
}

func (m *Model) selected() (catalog.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return catalog.Entry{}, false
	}
	return m.filtered[m.cursor], true
}
