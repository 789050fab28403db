package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tassiovirginio/try-rs/internal/app"
	"github.com/tassiovirginio/try-rs/internal/catalog"
	"github.com/tassiovirginio/try-rs/internal/disk"
	"github.com/tassiovirginio/try-rs/internal/theme"
)

// Nerd Font glyphs.
const (
	glyphFolder     = "\U000F0770"
	glyphFile       = "\U000F0219"
	glyphDisk       = "\U000F02CA"
	glyphLicense    = "\U000F0219"
	glyphGit        = "\uF1D2"
	glyphWorktree   = "\U000F0645"
	glyphLock       = "\uF023"
	glyphGitmodules = "\uF414"
	glyphMise       = "\U000F0B14"
	glyphRust       = "\uE7A8"
	glyphMaven      = "\uE738"
	glyphFlutter    = "\uE64C"
	glyphGo         = "\uE627"
	glyphPython     = "\uE73C"
)

const (
	searchHeight = 3
	legendHeight = 4
	diskWidth    = 45
	minSearch    = 20
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return render(m.frame())
}

// painter renders text in a theme, on the theme background unless the frame
// is transparent.
type painter struct {
	t     theme.Theme
	bg    lipgloss.Color
	hasBG bool
}

func newPainter(f Frame) painter {
	p := painter{t: f.Theme}
	if !f.Transparent && f.Theme.HasBackground() {
		p.bg = f.Theme.Background
		p.hasBG = true
	}
	return p
}

// on returns a painter drawing over a solid background color.
func (p painter) on(bg lipgloss.Color) painter {
	p.bg = bg
	p.hasBG = bg != ""
	return p
}

func (p painter) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.hasBG {
		s = s.Background(p.bg)
	}
	return s
}

func (p painter) fg(c lipgloss.Color) lipgloss.Style {
	return p.style().Foreground(c)
}

func (p painter) blank(n int) string {
	if n <= 0 {
		return ""
	}
	return p.style().Render(strings.Repeat(" ", n))
}

// fit truncates or pads s to exactly w cells.
func (p painter) fit(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	return s + p.blank(w-ansi.StringWidth(s))
}

func (p painter) center(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	gap := w - ansi.StringWidth(s)
	return p.blank(gap/2) + s + p.blank(gap-gap/2)
}

// panel draws a w by h box with title set into the top border.
func (p painter) panel(title string, titleColor, borderColor lipgloss.Color, w, h int, body []string) []string {
	if w < 2 || h < 2 {
		return nil
	}
	iw := w - 2
	border := p.fg(borderColor)
	title = ansi.Truncate(title, iw, "")

	lines := make([]string, 0, h)
	lines = append(lines, border.Render("┌")+
		p.fg(titleColor).Render(title)+
		border.Render(strings.Repeat("─", iw-ansi.StringWidth(title))+"┐"))
	for i := 0; i < h-2; i++ {
		var line string
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, border.Render("│")+p.fit(line, iw)+border.Render("│"))
	}
	lines = append(lines, border.Render("└"+strings.Repeat("─", iw)+"┘"))
	return lines
}

// render lays out the whole screen for one frame.
func render(f Frame) string {
	w, h := f.Width, f.Height
	if w <= 0 || h <= 0 {
		return ""
	}
	p := newPainter(f)
	t := f.Theme

	dw := diskWidth
	if w-dw < minSearch {
		dw = max(w-minSearch, 0)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(p.panel(" Search/New ", t.SearchTitle, t.SearchBorder, w-dw, searchHeight,
			[]string{p.fg(t.SearchTitle).Render(f.Query)}), "\n"),
		strings.Join(p.panel(" Disk ", t.DiskTitle, t.DiskBorder, dw, searchHeight,
			[]string{p.center(diskLine(p, f), dw-2)}), "\n"),
	)

	midH := max(h-searchHeight-1, 3)
	lw := w * 7 / 10
	rw := w - lw
	previewH := max(midH-legendHeight, 2)

	right := append(
		p.panel(" Preview ", t.PreviewTitle, t.PreviewBorder, rw, previewH, previewLines(p, f, previewH-2)),
		p.panel(" Legends ", t.LegendsTitle, t.LegendsBorder, rw, midH-previewH, legendLines(p, rw-2))...,
	)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(p.panel(" Folders ", t.FolderTitle, t.FolderBorder, lw, midH, listLines(p, f, lw-2, midH-2)), "\n"),
		strings.Join(right, "\n"),
	)

	screen := strings.Split(lipgloss.JoinVertical(lipgloss.Left, top, middle, statusLine(p, f)), "\n")
	if box := popup(f); box != nil {
		bw := ansi.StringWidth(box[0])
		screen = overlay(screen, box, (w-bw)/2, (len(screen)-len(box))/2)
	}
	return strings.Join(screen, "\n")
}

func diskLine(p painter, f Frame) string {
	t := f.Theme
	free := "N/A"
	if f.HasFree {
		free = disk.FormatMB(f.FreeMB)
	}
	return p.fg(t.TitleRS).Render(glyphDisk+" ") +
		p.fg(t.Helpers).Render("Used: ") +
		p.fg(t.StatusMessage).Render(disk.FormatMB(f.UsedMB)) +
		p.fg(t.Helpers).Render(" | Free: ") +
		p.fg(t.StatusMessage).Render(free)
}

// formatAge renders d as "(DDd HHh MMm)".
func formatAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("(%02dd %02dh %02dm)", secs/86400, secs%86400/3600, secs%3600/60)
}

type icon struct {
	glyph string
	color lipgloss.Color
	label string
}

func entryIcons(t theme.Theme, e catalog.Entry) []icon {
	var out []icon
	add := func(on bool, glyph string, c lipgloss.Color) {
		if on {
			out = append(out, icon{glyph: glyph, color: c})
		}
	}
	add(e.IsCargo, glyphRust, t.IconRust)
	add(e.IsMaven, glyphMaven, t.IconMaven)
	add(e.IsFlutter, glyphFlutter, t.IconFlutter)
	add(e.IsGo, glyphGo, t.IconGo)
	add(e.IsPython, glyphPython, t.IconPython)
	add(e.IsMise, glyphMise, t.IconMise)
	add(e.IsWorktreeLocked, glyphLock, t.IconWorktreeLock)
	add(e.IsWorktree, glyphWorktree, t.IconWorktree)
	add(e.IsGitmodules, glyphGitmodules, t.IconGitmodules)
	add(e.IsGit, glyphGit, t.IconGit)
	return out
}

func listLines(p painter, f Frame, w, h int) []string {
	if h <= 0 {
		return nil
	}
	offset := 0
	if f.Cursor >= h {
		offset = f.Cursor - h + 1
	}
	var lines []string
	for i := offset; i < len(f.Entries) && i < offset+h; i++ {
		lines = append(lines, entryRow(p, f, f.Entries[i], w, i == f.Cursor))
	}
	return lines
}

// entryRow renders one folder: date, name, marker icons and age, with the
// name truncated so the right-hand columns stay aligned.
func entryRow(p painter, f Frame, e catalog.Entry, w int, selected bool) string {
	t := f.Theme
	marker := "  "
	if selected {
		p = p.on(t.ListHighlightBG)
		marker = "→ "
	}
	paint := func(c lipgloss.Color) lipgloss.Style {
		if selected {
			return p.fg(t.ListHighlightFG).Bold(true)
		}
		return p.fg(c)
	}

	created := e.Created.Format(catalog.DateLayout)
	age := formatAge(f.Now.Sub(e.Modified))
	icons := entryIcons(t, e)

	fixed := ansi.StringWidth(marker) + 3 + len(created) + 1 + 2*len(icons) + len(age)
	name := e.DisplayName
	if avail := w - fixed - 1; ansi.StringWidth(name) > avail {
		name = ansi.Truncate(name, max(avail, 3), "...")
	}
	pad := max(w-fixed-ansi.StringWidth(name), 1)

	var b strings.Builder
	b.WriteString(paint(t.ListHighlightFG).Render(marker))
	b.WriteString(paint(t.IconFolder).Render(" " + glyphFolder + " "))
	b.WriteString(paint(t.ListDate).Render(created))
	nameStyle := p.style()
	if selected {
		nameStyle = paint(t.ListHighlightFG)
	}
	b.WriteString(nameStyle.Render(" " + name))
	b.WriteString(p.blank(pad))
	for _, ic := range icons {
		b.WriteString(paint(ic.color).Render(ic.glyph + " "))
	}
	b.WriteString(paint(t.ListDate).Render(age))
	return b.String()
}

func previewLines(p painter, f Frame, h int) []string {
	if f.Preview == nil {
		return nil
	}
	t := f.Theme
	if len(f.Preview) == 0 {
		return []string{p.fg(t.Helpers).Render(" (empty) ")}
	}
	var lines []string
	for i, item := range f.Preview {
		if i >= h {
			break
		}
		glyph, c := glyphFile, t.IconFile
		if item.IsDir {
			glyph, c = glyphFolder, t.IconFolder
		}
		lines = append(lines, p.fg(c).Render(glyph+" ")+p.style().Render(item.Name))
	}
	return lines
}

// legendLines wraps the icon legend into lines of at most w cells.
func legendLines(p painter, w int) []string {
	t := p.t
	items := []icon{
		{glyphRust, t.IconRust, "Rust"},
		{glyphMaven, t.IconMaven, "Maven"},
		{glyphFlutter, t.IconFlutter, "Flutter"},
		{glyphGo, t.IconGo, "Go"},
		{glyphPython, t.IconPython, "Python"},
		{glyphMise, t.IconMise, "Mise"},
		{glyphLock, t.IconWorktreeLock, "Locked"},
		{glyphWorktree, t.IconWorktree, "Git-Worktree"},
		{glyphGitmodules, t.IconGitmodules, "Git-Submod"},
		{glyphGit, t.IconGit, "Git"},
	}

	var lines []string
	var line string
	used := 0
	for _, it := range items {
		cells := ansi.StringWidth(it.glyph) + 1 + len(it.label) + 1
		if used > 0 && used+cells > w {
			lines = append(lines, line)
			line, used = "", 0
		}
		line += p.fg(it.color).Render(it.glyph+" ") + p.fg(t.Helpers).Render(it.label+" ")
		used += cells
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func statusLine(p painter, f Frame) string {
	t := f.Theme
	if f.Status != "" {
		return p.center(p.fg(t.StatusMessage).Bold(true).Render(f.Status), f.Width)
	}
	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = p.fg(t.Helpers).Bold(true)
	h.Styles.ShortDesc = p.fg(t.Helpers)
	h.Styles.ShortSeparator = p.fg(t.Helpers)
	return p.center(h.ShortHelpView(normalKeyMap.ShortHelp()), f.Width)
}

// popup renders the overlay for the active mode, nil in ModeNormal.
func popup(f Frame) []string {
	t := f.Theme
	p := painter{t: t}.on(t.PopupBG)
	text := p.fg(t.PopupText)

	switch f.Mode {
	case ModeDeleteConfirm:
		sel, ok := f.Selected()
		if !ok {
			return nil
		}
		return messageBox(p, f, " WARNING ", fmt.Sprintf("Delete '%s'? (y/n)", sel.Name))

	case ModeConfigSavePrompt:
		return messageBox(p, f, " Create Config? ",
			"Config file not found.", "Create one now to save theme? (y/n)")

	case ModeThemeSelect:
		w := clampWidth(f.Width/2, f.Width)
		h := max(f.Height/2, 6)
		names := make([]string, len(f.Themes))
		for i, th := range f.Themes {
			names[i] = th.Name
		}
		box := p.panel(" Select Theme ", t.PopupText, t.PopupText, w, h-3,
			choiceLines(p, names, f.ThemeCursor, w-2, h-5))
		check := "[ ]"
		if f.Transparent {
			check = "[x]"
		}
		return append(box, p.panel("", t.PopupText, t.PopupText, w, 3,
			[]string{text.Render(" " + check + " Transparent Background (Space to toggle)")})...)

	case ModeConfigSaveLocationSelect:
		w := clampWidth(f.Width*6/10, f.Width)
		return p.panel(" Select Config Location ", t.PopupText, t.PopupText, w, len(f.Locations)+2,
			choiceLines(p, f.Locations, f.LocationCursor, w-2, len(f.Locations)))

	case ModeAbout:
		w := clampWidth(max(f.Width*4/10, 40), f.Width)
		title := p.fg(t.TitleTry).Bold(true).Render("try") +
			p.fg(lipgloss.Color("8")).Render("-") +
			p.fg(t.TitleRS).Bold(true).Render("rs") +
			p.fg(lipgloss.Color("8")).Render(" v"+app.Version)
		license := p.fg(t.Helpers).Render(glyphLicense+" License: ") +
			p.fg(t.StatusMessage).Bold(true).Render("MIT")
		body := []string{
			title,
			"",
			p.fg(t.SearchTitle).Render("try-rs.org"),
			"",
			p.fg(t.SearchTitle).Render("github.com/tassiovirginio/try-rs"),
			"",
			license,
			"",
			p.fg(t.Helpers).Render("Press Esc to close"),
		}
		for i, l := range body {
			body[i] = p.center(l, w-2)
		}
		return p.panel(" About ", t.PopupText, t.PopupText, w, len(body)+2, body)
	}
	return nil
}

func clampWidth(w, limit int) int {
	return min(max(w, 20), limit)
}

func messageBox(p painter, f Frame, title string, msg ...string) []string {
	t := f.Theme
	w := clampWidth(f.Width/2, f.Width)
	body := []string{""}
	for _, l := range msg {
		body = append(body, p.center(p.fg(t.PopupText).Render(l), w-2))
	}
	return p.panel(title, t.PopupText, t.PopupText, w, len(body)+2, body)
}

// choiceLines renders a scrolling list with ">> " in front of the cursor.
func choiceLines(p painter, items []string, cursor, w, h int) []string {
	t := p.t
	offset := 0
	if cursor >= h {
		offset = cursor - h + 1
	}
	var lines []string
	for i := offset; i < len(items) && i < offset+h; i++ {
		if i == cursor {
			hl := p.on(t.ListHighlightBG)
			lines = append(lines, hl.fit(hl.fg(t.ListHighlightFG).Bold(true).Render(">> "+items[i]), w))
			continue
		}
		lines = append(lines, p.fg(t.ListHighlightFG).Render("   "+items[i]))
	}
	return lines
}

// overlay draws box over base with its top-left corner at (x, y).
func overlay(base, box []string, x, y int) []string {
	x, y = max(x, 0), max(y, 0)
	out := make([]string, len(base))
	copy(out, base)
	for i, line := range box {
		row := y + i
		if row >= len(out) {
			break
		}
		bg := out[row]
		left := ansi.Truncate(bg, x, "")
		if gap := x - ansi.StringWidth(left); gap > 0 {
			left += strings.Repeat(" ", gap)
		}
		right := ansi.TruncateLeft(bg, x+ansi.StringWidth(line), "")
		out[row] = left + line + right
	}
	return out
}
