package tui

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/paths"
	"github.com/tassiovirginio/try-rs/internal/theme"
)

// Frame is everything the renderer needs to draw one screen. It is built
// from the model on every View call and never mutated afterwards.
type Frame struct {
	Width  int
	Height int
	Now    time.Time

	Theme       theme.Theme
	Transparent bool

	Query   string
	Entries []catalog.Entry
	Cursor  int
	Status  string

	UsedMB  uint64
	FreeMB  uint64
	HasFree bool

	// Preview lists the selected entry's children. nil when nothing is
	// selected.
	Preview []PreviewItem

	Mode           Mode
	Themes         []theme.Theme
	ThemeCursor    int
	Locations      []string
	LocationCursor int
}

// PreviewItem is one child of the selected entry.
type PreviewItem struct {
	Name  string
	IsDir bool
}

// Selected returns the highlighted entry.
func (f Frame) Selected() (catalog.Entry, bool) {
	if f.Cursor < 0 || f.Cursor >= len(f.Entries) {
		return catalog.Entry{}, false
	}
	return f.Entries[f.Cursor], true
}

func (m Model) frame() Frame {
	f := Frame{
		Width:          m.width,
		Height:         m.height,
		Now:            time.Now(),
		Theme:          m.theme,
		Transparent:    m.transparent,
		Query:          m.query,
		Entries:        m.filtered,
		Cursor:         m.cursor,
		Status:         m.status,
		FreeMB:         m.freeMB,
		HasFree:        m.hasFS,
		Mode:           m.mode,
		Themes:         m.themes,
		ThemeCursor:    m.themeCursor,
		LocationCursor: m.locationCursor,
	}
	if m.now != nil {
		f.Now = m.now()
	}
	if m.probe != nil {
		f.UsedMB = m.probe.MB()
	}
	if sel, ok := m.selected(); ok {
		f.Preview = m.preview(sel.Name)
	}
	if m.mode == ModeConfigSaveLocationSelect {
		f.Locations = m.locationLabels()
	}
	return f
}

// locationLabels names each save destination by the file it writes,
// with the home directory shortened to "~".
func (m Model) locationLabels() []string {
	sys := filepath.Join("~", ".config", paths.AppDirName, config.DefaultFileName)
	home := filepath.Join("~", "."+paths.AppDirName, config.DefaultFileName)
	if m.loader != nil {
		dir, _ := m.loader.HomeDir()
		if p, err := m.loader.SystemPath(); err == nil {
			sys = tildeHome(p, dir)
		}
		if p, err := m.loader.HomePath(); err == nil {
			home = tildeHome(p, dir)
		}
	}
	return []string{
		"System Config (" + sys + ")",
		"Home Directory (" + home + ")",
	}
}

func tildeHome(p, home string) string {
	if home == "" {
		return p
	}
	if rel, err := filepath.Rel(home, p); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Join("~", rel)
	}
	return p
}

// preview lists the children of an entry. Unreadable folders show as empty.
func (m Model) preview(name string) []PreviewItem {
	dir, err := paths.Entry(m.root, name)
	if err != nil {
		return []PreviewItem{}
	}
	if m.fs == nil {
		return []PreviewItem{}
	}
	children, err := m.fs.ReadDir(dir)
	if err != nil {
		return []PreviewItem{}
	}
	items := make([]PreviewItem, 0, len(children))
	for _, c := range children {
		items = append(items, PreviewItem{
			Name:  c.Name(),
			IsDir: c.IsDir(),
		})
	}
	return items
}
