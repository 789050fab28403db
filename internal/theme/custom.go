package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

func (t *Theme) slots() map[string]*lipgloss.Color {
	return map[string]*lipgloss.Color{
		"background":         &t.Background,
		"title_try":          &t.TitleTry,
		"title_rs":           &t.TitleRS,
		"search_title":       &t.SearchTitle,
		"search_border":      &t.SearchBorder,
		"folder_title":       &t.FolderTitle,
		"folder_border":      &t.FolderBorder,
		"disk_title":         &t.DiskTitle,
		"disk_border":        &t.DiskBorder,
		"preview_title":      &t.PreviewTitle,
		"preview_border":     &t.PreviewBorder,
		"legends_title":      &t.LegendsTitle,
		"legends_border":     &t.LegendsBorder,
		"list_date":          &t.ListDate,
		"list_highlight_bg":  &t.ListHighlightBG,
		"list_highlight_fg":  &t.ListHighlightFG,
		"helpers_colors":     &t.Helpers,
		"status_message":     &t.StatusMessage,
		"popup_bg":           &t.PopupBG,
		"popup_text":         &t.PopupText,
		"icon_rust":          &t.IconRust,
		"icon_maven":         &t.IconMaven,
		"icon_flutter":       &t.IconFlutter,
		"icon_go":            &t.IconGo,
		"icon_python":        &t.IconPython,
		"icon_mise":          &t.IconMise,
		"icon_worktree":      &t.IconWorktree,
		"icon_worktree_lock": &t.IconWorktreeLock,
		"icon_gitmodules":    &t.IconGitmodules,
		"icon_git":           &t.IconGit,
		"icon_folder":        &t.IconFolder,
		"icon_file":          &t.IconFile,
	}
}

// Custom builds a palette named CustomName from config-file color strings,
// keyed like the [colors] table. Missing or invalid values keep Default's
// color; an invalid background leaves the background unset. The returned
// error lists every value that was skipped.
func Custom(colors map[string]string) (Theme, error) {
	t := Default()
	t.Name = CustomName
	slots := t.slots()

	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		slot, ok := slots[key]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown color key %q", key))
			continue
		}
		c, err := ParseColor(colors[key])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		*slot = c
	}
	return t, errors.Join(errs...)
}

// Colors returns the palette keyed like the [colors] table, in the form
// Custom reads back. An unset background is left out.
func (t Theme) Colors() map[string]string {
	out := make(map[string]string)
	for key, c := range t.slots() {
		if *c != "" {
			out[key] = string(*c)
		}
	}
	return out
}
