package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassiovirginio/try-rs/internal/system"
	"github.com/tassiovirginio/try-rs/internal/testutil"
	"github.com/tassiovirginio/try-rs/internal/theme"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	ctrlA    = tea.KeyMsg{Type: tea.KeyCtrlA}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	ctrlD    = tea.KeyMsg{Type: tea.KeyCtrlD}
	ctrlE    = tea.KeyMsg{Type: tea.KeyCtrlE}
	ctrlJ    = tea.KeyMsg{Type: tea.KeyCtrlJ}
	ctrlK    = tea.KeyMsg{Type: tea.KeyCtrlK}
	ctrlT    = tea.KeyMsg{Type: tea.KeyCtrlT}
	ctrlU    = tea.KeyMsg{Type: tea.KeyCtrlU}
)

func char(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press feeds keys to the model and returns it with the last command.
func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, char(r))
	}
	return m
}

func names(m Model) []string {
	out := make([]string, 0, len(m.Filtered()))
	for _, e := range m.Filtered() {
		out = append(out, e.Name)
	}
	return out
}

func newModel(t *testing.T, env *testutil.TestEnv, query string) Model {
	t.Helper()
	m, err := NewModel(env.App, query)
	require.NoError(t, err)
	return m
}

// threeEntries creates a, b and c with a most recently modified.
func threeEntries(env *testutil.TestEnv) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	env.AddEntry("c", base)
	env.AddEntry("b", base.Add(time.Hour))
	env.AddEntry("a", base.Add(2*time.Hour))
}

func TestEndToEnd_SelectAlpha(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("2024-01-01 alpha", time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local))
	env.AddEntry("beta", time.Date(2024, 2, 1, 10, 0, 0, 0, time.Local))

	m := newModel(t, env, "")
	assert.Equal(t, []string{"beta", "2024-01-01 alpha"}, names(m))

	m = typeText(m, "alp")
	require.Len(t, m.Filtered(), 1)
	assert.Equal(t, "alpha", m.Filtered()[0].DisplayName)

	m, cmd := press(m, keyEnter)
	assert.NotNil(t, cmd, "enter should quit")
	assert.Equal(t, Result{Selection: Folder("2024-01-01 alpha")}, m.Result())
	assert.Empty(t, m.View(), "finished model renders nothing")
}

func TestNewModel_InitialQuery(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("alpha", time.Time{})
	env.AddEntry("beta", time.Time{})

	m := newModel(t, env, "bet")
	assert.Equal(t, "bet", m.Query())
	assert.Equal(t, []string{"beta"}, names(m))
}

func TestQueryEditing(t *testing.T) {
	env := testutil.NewTestEnv(t)
	threeEntries(env)

	m := newModel(t, env, "")
	m, _ = press(m, keyDown, keyDown)
	require.Equal(t, 2, m.Cursor())

	m = typeText(m, "ab")
	assert.Equal(t, "ab", m.Query())
	assert.Equal(t, 0, m.Cursor(), "refilter resets the cursor")

	m, _ = press(m, keyBack)
	assert.Equal(t, "a", m.Query())

	m, _ = press(m, keySpace)
	assert.Equal(t, "a ", m.Query())

	m, _ = press(m, ctrlU)
	assert.Equal(t, "", m.Query())
	assert.Equal(t, []string{"a", "b", "c"}, names(m))

	m, _ = press(m, keyBack)
	assert.Equal(t, "", m.Query(), "backspace on empty query is harmless")
}

func TestQueryEditing_IgnoresAltRunes(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	assert.Equal(t, "", m.Query())
}

func TestCursorClamping(t *testing.T) {
	env := testutil.NewTestEnv(t)
	threeEntries(env)
	m := newModel(t, env, "")

	m, _ = press(m, keyUp)
	assert.Equal(t, 0, m.Cursor())

	m, _ = press(m, keyDown, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, 2, m.Cursor())

	m, _ = press(m, ctrlK)
	assert.Equal(t, 1, m.Cursor())
	m, _ = press(m, ctrlJ)
	assert.Equal(t, 2, m.Cursor())
}

func TestCursorClamping_EmptyList(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	m, _ = press(m, keyDown, keyUp, keyDown)
	assert.Equal(t, 0, m.Cursor())
}

func TestEnter(t *testing.T) {
	t.Run("no match creates from query", func(t *testing.T) {
		env := testutil.NewTestEnv(t)
		env.AddEntry("alpha", time.Time{})
		m := newModel(t, env, "")

		m = typeText(m, "zzz")
		require.Empty(t, m.Filtered())
		m, cmd := press(m, keyEnter)
		assert.NotNil(t, cmd)
		assert.Equal(t, New("zzz"), m.Result().Selection)
	})

	t.Run("nothing to select is a no-op", func(t *testing.T) {
		env := testutil.NewTestEnv(t)
		m := newModel(t, env, "")

		m, cmd := press(m, keyEnter)
		assert.Nil(t, cmd)
		assert.Equal(t, ModeNormal, m.Mode())
		assert.NotEmpty(t, m.View(), "session should still be running")
	})
}

func TestEscAborts(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("alpha", time.Time{})
	m := newModel(t, env, "")

	m, cmd := press(m, keyEsc)
	assert.NotNil(t, cmd)
	assert.Equal(t, SelectNone, m.Result().Selection.Kind)
}

func TestDelete_RemovesMiddleEntry(t *testing.T) {
	env := testutil.NewTestEnv(t)
	threeEntries(env)
	m := newModel(t, env, "")

	m, _ = press(m, keyDown, ctrlD)
	require.Equal(t, ModeDeleteConfirm, m.Mode())

	m, _ = press(m, char('y'))
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, []string{"a", "c"}, names(m))
	assert.Equal(t, "Deleted: "+env.Path("b"), m.Status())
	assert.False(t, env.Exists("b"))
	assert.True(t, env.Exists("a"))
	assert.True(t, env.Exists("c"))
	assert.Empty(t, env.Exec.Commands, "plain folders never touch git")
}

func TestDelete_SymlinkedEntryKeepsTarget(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	env.AddEntry("real", base, "keep.txt")
	require.NoError(t, os.Symlink(env.Path("real"), env.Path("zlink")))

	m := newModel(t, env, "zlink")
	require.Equal(t, []string{"zlink"}, names(m))

	m, _ = press(m, ctrlD, char('y'))
	assert.Equal(t, "Deleted: "+env.Path("zlink"), m.Status())

	_, err := os.Lstat(env.Path("zlink"))
	assert.True(t, os.IsNotExist(err), "the link itself is removed")
	assert.True(t, env.Exists("real"), "the link target survives")
	assert.FileExists(t, filepath.Join(env.Path("real"), "keep.txt"))

	m, _ = press(m, keyBack, keyBack, keyBack, keyBack, keyBack)
	assert.Equal(t, []string{"real"}, names(m))
}

func TestEnter_SymlinkedEntryKeepsName(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("real", time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))
	require.NoError(t, os.Symlink(env.Path("real"), env.Path("zlink")))

	m := newModel(t, env, "zlink")
	m, cmd := press(m, keyEnter)
	assert.NotNil(t, cmd)
	assert.Equal(t, Folder("zlink"), m.Result().Selection)
}

func TestDelete_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{char('n'), char('N'), keyEsc} {
		t.Run(k.String(), func(t *testing.T) {
			env := testutil.NewTestEnv(t)
			threeEntries(env)
			m := newModel(t, env, "")

			m, _ = press(m, ctrlD, k)
			assert.Equal(t, ModeNormal, m.Mode())
			assert.Len(t, m.Filtered(), 3)
			assert.True(t, env.Exists("a"))
		})
	}
}

func TestDelete_IgnoredWithoutSelection(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	m, _ = press(m, ctrlD)
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestDelete_FailureKeepsEntry(t *testing.T) {
	env := testutil.NewTestEnv(t)
	threeEntries(env)
	m := newModel(t, env, "")

	mockFS := system.NewMockFS()
	mockFS.RemoveAllErr = errors.New("permission denied")
	m.fs = mockFS

	m, _ = press(m, ctrlD, char('Y'))
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, "Error deleting: permission denied", m.Status())
	assert.Len(t, m.Filtered(), 3)
}

func TestDelete_Worktree(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.AddWorktree("feature", time.Time{}, false)
	env.Exec.AddResponse("git -C "+path+" worktree remove", nil, nil)

	m := newModel(t, env, "")
	m, _ = press(m, ctrlD, char('y'))

	cmd, ok := env.Exec.LastCommand()
	require.True(t, ok, "git should have been invoked")
	assert.Equal(t, "git -C "+path+" worktree remove .", cmd.Line())
	assert.True(t, env.Exists("feature"), "removal is left to git")
	assert.Empty(t, m.Filtered())
	assert.Equal(t, "Worktree removed: "+path, m.Status())
}

func TestDelete_WorktreeRefused(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.AddWorktree("feature", time.Time{}, true)
	stderr := []byte("fatal: cannot remove a locked working tree\nuse 'remove -f -f' to override\n")
	env.Exec.AddResponse("git -C "+path+" worktree remove", nil, &system.ExitError{Code: 128, Stderr: stderr})

	m := newModel(t, env, "")
	require.True(t, m.Filtered()[0].IsWorktreeLocked)

	m, _ = press(m, ctrlD, char('y'))
	assert.Equal(t, "Error deleting: fatal: cannot remove a locked working tree", m.Status())
	assert.Len(t, m.Filtered(), 1)
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestDelete_WorktreeRefusedReportsStderr(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.AddWorktree("feature", time.Time{}, false)
	stdout := []byte("warning: not a fatal problem\n")
	stderr := []byte("\nfatal: 'feature' contains modified or untracked files, use --force to delete it\n")
	env.Exec.AddResponse("git -C "+path+" worktree remove", stdout, &system.ExitError{Code: 128, Stderr: stderr})

	m := newModel(t, env, "")
	m, _ = press(m, ctrlD, char('y'))
	assert.Equal(t, "Error deleting: fatal: 'feature' contains modified or untracked files, use --force to delete it", m.Status())
	assert.Len(t, m.Filtered(), 1)
}

func TestDelete_WorktreeGitMissing(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.AddWorktree("feature", time.Time{}, false)
	env.Exec.AddResponse("git -C "+path, nil, errors.New(`exec: "git": executable file not found in $PATH`))

	m := newModel(t, env, "")
	m, _ = press(m, ctrlD, char('y'))
	assert.True(t, strings.HasPrefix(m.Status(), "Error removing worktree: "), m.Status())
	assert.Len(t, m.Filtered(), 1)
}

func TestEditor(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		env := testutil.NewTestEnv(t)
		env.Settings.Editor = ""
		env.AddEntry("alpha", time.Time{})
		m := newModel(t, env, "")

		m, cmd := press(m, ctrlE)
		assert.Nil(t, cmd)
		assert.Equal(t, "No editor configured in config.toml", m.Status())
		assert.Equal(t, ModeNormal, m.Mode())

		m, _ = press(m, keyDown)
		assert.Empty(t, m.Status(), "status clears on the next key")
	})

	t.Run("selected folder", func(t *testing.T) {
		env := testutil.NewTestEnv(t)
		env.Settings.Editor = "nvim"
		env.AddEntry("alpha", time.Time{})
		m := newModel(t, env, "")

		m, cmd := press(m, ctrlE)
		assert.NotNil(t, cmd)
		assert.Equal(t, Result{Selection: Folder("alpha"), WantsEditor: true}, m.Result())
	})

	t.Run("new folder from query", func(t *testing.T) {
		env := testutil.NewTestEnv(t)
		env.Settings.Editor = "nvim"
		m := newModel(t, env, "scratch")

		m, _ = press(m, ctrlE)
		assert.Equal(t, Result{Selection: New("scratch"), WantsEditor: true}, m.Result())
	})
}

func TestThemeSelect_EscRestoresSnapshot(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")
	before := m.Theme()
	require.True(t, m.Transparent())

	m, _ = press(m, ctrlT)
	require.Equal(t, ModeThemeSelect, m.Mode())
	assert.Equal(t, theme.IndexOf(before.Name), m.themeCursor)

	m, _ = press(m, keyDown, keyDown, keySpace)
	assert.Equal(t, theme.All()[2].Name, m.Theme().Name, "hovered theme applies immediately")
	assert.False(t, m.Transparent())

	m, _ = press(m, keyEsc)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, before, m.Theme())
	assert.True(t, m.Transparent())
	assert.Nil(t, m.original)
}

func TestThemeSelect_VimKeysClamp(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	m, _ = press(m, ctrlT, char('k'))
	assert.Equal(t, 0, m.themeCursor)

	for range theme.All() {
		m, _ = press(m, char('j'))
	}
	last := theme.All()[len(theme.All())-1]
	assert.Equal(t, last.Name, m.Theme().Name)
}

func TestThemeSelect_CustomThemeStartsAtTop(t *testing.T) {
	env := testutil.NewTestEnv(t)
	custom, err := theme.Custom(map[string]string{"title_try": "#ff0000"})
	require.NoError(t, err)
	env.Settings.Theme = custom
	m := newModel(t, env, "")

	m, _ = press(m, ctrlT)
	assert.Equal(t, 0, m.themeCursor)
	assert.Equal(t, theme.CustomName, m.Theme().Name, "entering the selector does not change the theme")
}

func TestForceQuit_RestoresTheme(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")
	before := m.Theme()

	m, _ = press(m, ctrlT, keyDown)
	require.NotEqual(t, before, m.Theme())

	m, cmd := press(m, ctrlC)
	assert.NotNil(t, cmd)
	assert.Equal(t, before, m.Theme())
	assert.Equal(t, SelectNone, m.Result().Selection.Kind)
}

func TestForceQuit_AnyMode(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("alpha", time.Time{})

	for _, enter := range []tea.KeyMsg{ctrlD, ctrlA, ctrlT} {
		t.Run(enter.String(), func(t *testing.T) {
			m := newModel(t, env, "")
			m, _ = press(m, enter)
			require.NotEqual(t, ModeNormal, m.Mode())

			_, cmd := press(m, ctrlC)
			assert.NotNil(t, cmd)
		})
	}
}

func TestThemeCommit_FirstSaveAsksForLocation(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")
	require.Empty(t, m.ConfigPath())

	m, _ = press(m, ctrlT, keyDown, keyEnter)
	require.Equal(t, ModeConfigSavePrompt, m.Mode())
	chosen := m.Theme().Name

	m, _ = press(m, char('y'))
	require.Equal(t, ModeConfigSaveLocationSelect, m.Mode())
	assert.Equal(t, 0, m.locationCursor)

	m, _ = press(m, keyDown, keyDown, keyEnter)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, "Theme saved!", m.Status())

	want := filepath.Join(env.Home, ".try-rs", "config.toml")
	assert.Equal(t, want, m.ConfigPath())
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), chosen)

	// With a known path the next commit saves straight away.
	m, _ = press(m, ctrlT, keyDown, keyEnter)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, "Theme saved.", m.Status())
	data, err = os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), m.Theme().Name)
}

func TestThemeCommit_CustomPaletteKeepsColors(t *testing.T) {
	env := testutil.NewTestEnv(t)
	custom, err := theme.Custom(map[string]string{"search_title": "#ff0000"})
	require.NoError(t, err)
	env.Settings.Theme = custom
	env.Settings.ConfigPath = filepath.Join(env.Home, ".try-rs", "config.toml")
	m := newModel(t, env, "")

	m, _ = press(m, ctrlT, keySpace, keyEnter)
	require.Equal(t, "Theme saved.", m.Status())

	data, err := os.ReadFile(env.Settings.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[colors]")
	assert.Contains(t, string(data), `search_title = "#ff0000"`)
	assert.NotContains(t, string(data), "theme =")
	assert.Contains(t, string(data), "transparent_background = true")
}

func TestThemeCommit_SystemLocation(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	m, _ = press(m, ctrlT, keyDown, keyEnter, keyEnter, keyEnter)
	want := filepath.Join(env.Home, ".config", "try-rs", "config.toml")
	assert.Equal(t, want, m.ConfigPath())
	_, err := os.Stat(want)
	assert.NoError(t, err)
}

func TestConfigSavePrompt_Declined(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	m, _ = press(m, ctrlT, keyDown, keyEnter, char('n'))
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, theme.All()[1].Name, m.Theme().Name, "theme stays for the session")
	assert.Empty(t, m.ConfigPath())
}

func TestConfigSaveLocation_Cancel(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	m, _ = press(m, ctrlT, keyDown, keyEnter, keyEnter, keyEsc)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Empty(t, m.ConfigPath())
	assert.NoFileExists(t, filepath.Join(env.Home, ".config", "try-rs", "config.toml"))
}

func TestThemeCommit_SaveError(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	mockFS := system.NewMockFS()
	mockFS.WriteFileErr = errors.New("read-only file system")
	m.fs = mockFS
	m.configPath = "/etc/try-rs/config.toml"

	m, _ = press(m, ctrlT, keyEnter)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.True(t, strings.HasPrefix(m.Status(), "Error saving: "), m.Status())
	assert.Contains(t, m.Status(), "read-only file system")
}

func TestAbout(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, keyEnter, char('q'), keySpace} {
		t.Run(k.String(), func(t *testing.T) {
			env := testutil.NewTestEnv(t)
			m := newModel(t, env, "")

			m, _ = press(m, ctrlA)
			require.Equal(t, ModeAbout, m.Mode())
			m, cmd := press(m, k)
			assert.Equal(t, ModeNormal, m.Mode())
			assert.Nil(t, cmd)
		})
	}
}

func TestOverlayModesSuspendNormalKeys(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddEntry("alpha", time.Time{})
	m := newModel(t, env, "")

	m, _ = press(m, ctrlA, char('x'), ctrlD)
	assert.Equal(t, ModeAbout, m.Mode())
	assert.Empty(t, m.Query())
}

func TestHandlersCoverEveryMode(t *testing.T) {
	for mode := ModeNormal; mode <= ModeAbout; mode++ {
		if _, ok := handlers[mode]; !ok {
			t.Errorf("no key handler for mode %s", mode)
		}
	}
}

func TestInit_WaitsForProbe(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := newModel(t, env, "")

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(sizeReadyMsg)
	assert.True(t, ok, "Init command should report the finished probe, got %T", msg)

	next, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.IsType(t, Model{}, next)
}

func TestWindowSize(t *testing.T) {
	m := Model{}
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, next.(Model).width)
	assert.Equal(t, 50, next.(Model).height)

	m.inlineHeight = 18
	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	assert.Equal(t, 18, next.(Model).height)
}

func TestSelectionConstructors(t *testing.T) {
	tests := []struct {
		sel  Selection
		kind SelectionKind
		str  string
	}{
		{Folder("x"), SelectFolder, "folder"},
		{New("x"), SelectNew, "new"},
		{None(), SelectNone, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if tt.sel.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.sel.Kind, tt.kind)
			}
			if tt.sel.Kind.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.sel.Kind.String(), tt.str)
			}
		})
	}
}
