// Package theme holds the built-in color palettes for the picker.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultName is the palette used when nothing is configured.
const DefaultName = "Default"

// CustomName names a palette assembled from a [colors] table.
const CustomName = "Custom"

// Theme is a named palette. An empty Background means the terminal's own
// background shows through. Theme is comparable with ==.
type Theme struct {
	Name       string
	Background lipgloss.Color

	TitleTry lipgloss.Color
	TitleRS  lipgloss.Color

	SearchTitle   lipgloss.Color
	SearchBorder  lipgloss.Color
	FolderTitle   lipgloss.Color
	FolderBorder  lipgloss.Color
	DiskTitle     lipgloss.Color
	DiskBorder    lipgloss.Color
	PreviewTitle  lipgloss.Color
	PreviewBorder lipgloss.Color
	LegendsTitle  lipgloss.Color
	LegendsBorder lipgloss.Color

	ListDate        lipgloss.Color
	ListHighlightBG lipgloss.Color
	ListHighlightFG lipgloss.Color

	Helpers       lipgloss.Color
	StatusMessage lipgloss.Color
	PopupBG       lipgloss.Color
	PopupText     lipgloss.Color

	IconRust         lipgloss.Color
	IconMaven        lipgloss.Color
	IconFlutter      lipgloss.Color
	IconGo           lipgloss.Color
	IconPython       lipgloss.Color
	IconMise         lipgloss.Color
	IconWorktree     lipgloss.Color
	IconWorktreeLock lipgloss.Color
	IconGitmodules   lipgloss.Color
	IconGit          lipgloss.Color
	IconFolder       lipgloss.Color
	IconFile         lipgloss.Color
}

// HasBackground reports whether the palette paints its own background.
func (t Theme) HasBackground() bool {
	return t.Background != ""
}

// Snapshot is the part of the display state a theme preview can change.
type Snapshot struct {
	Theme       Theme
	Transparent bool
}

// All returns a copy of the built-in palettes in display order.
func All() []Theme {
	out := make([]Theme, len(builtin))
	copy(out, builtin)
	return out
}

// Default returns the palette named DefaultName.
func Default() Theme {
	return builtin[0]
}

// ByName looks up a built-in palette.
func ByName(name string) (Theme, bool) {
	for _, t := range builtin {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// IndexOf returns the position of name in All, or 0 when it is not built in.
func IndexOf(name string) int {
	for i, t := range builtin {
		if t.Name == name {
			return i
		}
	}
	return 0
}

var ansiNames = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"grey":         "7",
	"darkgray":     "8",
	"darkgrey":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// ParseColor accepts "#rrggbb", "#rgb", an ANSI index 0-255, or an ANSI color
// name such as "lightblue" or "dark-gray".
func ParseColor(s string) (lipgloss.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return "", fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return lipgloss.Color(c.Hex()), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("ansi color index out of range: %d", n)
		}
		return lipgloss.Color(strconv.Itoa(n)), nil
	}
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	if idx, ok := ansiNames[key]; ok {
		return lipgloss.Color(idx), nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
