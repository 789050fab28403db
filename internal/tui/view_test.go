package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/config"
	"github.com/tassiovirginio/try-rs/internal/testutil"
	"github.com/tassiovirginio/try-rs/internal/theme"
)

func sized(m Model, w, h int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "(00d 00h 00m)"},
		{26*time.Hour + 3*time.Minute, "(01d 02h 03m)"},
		{45 * time.Second, "(00d 00h 00m)"},
		{-time.Hour, "(00d 00h 00m)"},
		{123 * 24 * time.Hour, "(123d 00h 00m)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatAge(tt.d); got != tt.want {
				t.Errorf("formatAge(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	base := []string{"aaaaaaaaaa", "bbbbbbbbbb", "cccc"}
	got := overlay(base, []string{"XX", "YY"}, 3, 1)

	assert.Equal(t, []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYY"}, got)
	assert.Equal(t, "bbbbbbbbbb", base[1], "base must not be modified")
}

func TestOverlay_PadsShortLines(t *testing.T) {
	got := overlay([]string{"ab"}, []string{"XY"}, 4, 0)
	assert.Equal(t, []string{"ab  XY"}, got)
}

func TestPanel(t *testing.T) {
	p := painter{t: theme.Default()}
	lines := p.panel(" T ", "", "", 10, 4, []string{"hello world", "x"})

	require.Len(t, lines, 4)
	assert.Equal(t, "┌ T ─────┐", lines[0])
	assert.Equal(t, "│hello wo│", lines[1])
	assert.Equal(t, "│x       │", lines[2])
	for _, l := range lines {
		assert.Equal(t, 10, ansi.StringWidth(l), "line %q", l)
	}
	assert.Equal(t, "└────────┘", lines[3])
}

func TestEntryRow_AlignsAge(t *testing.T) {
	f := Frame{Theme: theme.Default(), Now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	p := newPainter(f)
	long := catalog.Entry{
		DisplayName: strings.Repeat("very-long-name-", 10),
		Modified:    f.Now.Add(-26 * time.Hour),
		IsGit:       true,
	}
	short := catalog.Entry{DisplayName: "x", Modified: f.Now}

	for _, e := range []catalog.Entry{long, short} {
		row := entryRow(p, f, e, 60, false)
		assert.Equal(t, 60, ansi.StringWidth(row), "row %q", row)
	}
	row := entryRow(p, f, long, 60, true)
	assert.True(t, strings.HasPrefix(row, "→ "), row)
	assert.Contains(t, row, "...")
	assert.True(t, strings.HasSuffix(row, "(01d 02h 00m)"), row)
}

func TestView_Normal(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("2024-01-01 alpha", time.Time{}, "go.mod", "Cargo.toml")
	m := sized(newModel(t, env, ""), 120, 30)

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 30)
	for _, want := range []string{"Search/New", "Disk", "Used:", "Folders", "Preview", "Legends", "alpha", "Cargo.toml", "go.mod"} {
		assert.Contains(t, view, want)
	}
	assert.Contains(t, view, "Ctrl-D Del")
	assert.Contains(t, view, "Esc/Ctrl+C Quit")
}

func TestView_EmptyPreview(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("hollow", time.Time{})
	m := sized(newModel(t, env, ""), 100, 24)

	assert.Contains(t, m.View(), "(empty)")
}

func TestView_StatusReplacesLegend(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.Settings.Editor = ""
	m := sized(newModel(t, env, ""), 100, 24)

	m, _ = press(m, ctrlE)
	view := m.View()
	assert.Contains(t, view, "No editor configured in config.toml")
	assert.NotContains(t, view, "Ctrl-D Del")
}

func TestView_Popups(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want []string
	}{
		{"delete", []tea.KeyMsg{ctrlD}, []string{"WARNING", "Delete 'beta'? (y/n)"}},
		{"theme", []tea.KeyMsg{ctrlT}, []string{"Select Theme", ">> Default", "[x] Transparent Background"}},
		{"prompt", []tea.KeyMsg{ctrlT, keyEnter}, []string{"Create Config?", "Config file not found."}},
		{"location", []tea.KeyMsg{ctrlT, keyEnter, keyEnter}, []string{"Select Config Location", ">> System Config", "Home Directory (~/.try-rs/config.toml)"}},
		{"about", []tea.KeyMsg{ctrlA}, []string{"About", "github.com/tassiovirginio/try-rs", "MIT", "Press Esc to close"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnv(t)
			env.AddEntry("beta", time.Time{})
			m := sized(newModel(t, env, ""), 120, 30)

			m, _ = press(m, tt.keys...)
			view := m.View()
			for _, want := range tt.want {
				assert.Contains(t, view, want)
			}
			assert.Len(t, strings.Split(view, "\n"), 30)
		})
	}
}

func TestFrame_LocationsShowSaveTargets(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")
	custom := filepath.Join(env.TmpDir, "cfg")
	m.loader = &config.Loader{
		Lookup: func(key string) (string, bool) {
			if key == config.EnvConfigDir {
				return custom, true
			}
			return "", false
		},
		Home:       env.Home,
		ConfigBase: filepath.Join(env.Home, "Library", "Application Support"),
	}

	m, _ = press(m, ctrlT, keyEnter, keyEnter)
	require.Equal(t, ModeConfigSaveLocationSelect, m.Mode())
	assert.Equal(t, []string{
		"System Config (" + filepath.Join(custom, "config.toml") + ")",
		"Home Directory (~/.try-rs/config.toml)",
	}, m.frame().Locations)

	m.loader.Lookup = func(string) (string, bool) { return "", false }
	assert.Equal(t, "System Config (~/Library/Application Support/try-rs/config.toml)", m.frame().Locations[0])
}

func TestRender_ZeroSize(t *testing.T) {
	assert.Empty(t, render(Frame{}))
}
