// Package catalog discovers workspace folders under the tries root and
// filters them with a fuzzy query.
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tassiovirginio/try-rs/internal/logging"
	"github.com/tassiovirginio/try-rs/internal/workspace"
)

// DateLayout is the layout of the optional name prefix.
const DateLayout = "2006-01-02"

// Entry is one folder directly under the tries root.
type Entry struct {
	// Name is the folder name on disk and the entry's identity.
	Name string
	// DisplayName is Name without a leading "YYYY-MM-DD " prefix.
	DisplayName string

	Created  time.Time
	Modified time.Time

	// Score is the fuzzy match score. Zero when no query is active.
	Score int

	IsGit            bool
	IsWorktree       bool
	IsWorktreeLocked bool
	IsGitmodules     bool
	IsMise           bool
	IsCargo          bool
	IsMaven          bool
	IsFlutter        bool
	IsGo             bool
	IsPython         bool
}

// ExtractPrefixDate splits "2024-01-15 my-project" into the date (local
// midnight) and "my-project". ok is false when name does not start with a
// valid date followed by a space.
func ExtractPrefixDate(name string) (date time.Time, rest string, ok bool) {
	lhs, rhs, found := strings.Cut(name, " ")
	if !found {
		return time.Time{}, "", false
	}
	date, err := time.ParseInLocation(DateLayout, lhs, time.Local)
	if err != nil {
		return time.Time{}, "", false
	}
	return date, rhs, true
}

// DatePrefix formats t as a folder-name prefix.
func DatePrefix(t time.Time) string {
	return t.Format(DateLayout)
}

// WithDatePrefix prepends today's date to name unless it already has it.
func WithDatePrefix(name string, now time.Time) string {
	prefix := DatePrefix(now)
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + " " + name
}

func exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// Load inspects a single folder. It returns false when path is not a
// directory.
func Load(path string) (Entry, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return Entry{}, false
	}

	name := filepath.Base(path)
	e := Entry{
		Name:             name,
		DisplayName:      name,
		Modified:         info.ModTime(),
		IsGit:            workspace.IsRepo(path),
		IsWorktree:       workspace.IsWorktree(path),
		IsWorktreeLocked: workspace.IsWorktreeLocked(path),
		IsGitmodules:     exists(path, ".gitmodules"),
		IsMise:           exists(path, "mise.toml"),
		IsCargo:          exists(path, "Cargo.toml"),
		IsMaven:          exists(path, "pom.xml"),
		IsFlutter:        exists(path, "pubspec.yaml"),
		IsGo:             exists(path, "go.mod"),
		IsPython:         exists(path, "pyproject.toml") || exists(path, "requirements.txt"),
	}

	if date, rest, ok := ExtractPrefixDate(name); ok {
		e.Created = date
		e.DisplayName = rest
	} else {
		e.Created = createdTime(path, info)
	}
	return e, true
}

// Build lists the directories directly under root, newest modification
// first. Plain files and unreadable children are skipped; an unreadable
// root yields an empty catalog.
func Build(root string) []Entry {
	dirents, err := os.ReadDir(root)
	if err != nil {
		logging.Debug("cannot read tries root", "root", root, "error", err)
		return nil
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if e, ok := Load(filepath.Join(root, d.Name())); ok {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})

	logging.Debug("catalog built", "root", root, "entries", len(entries))
	return entries
}

// Matching returns the folders whose name is exactly name, or whose
// date-stripped name is name.
func Matching(entries []Entry, name string) []string {
	var out []string
	for _, e := range entries {
		if e.Name == name {
			out = append(out, e.Name)
			continue
		}
		if _, rest, ok := ExtractPrefixDate(e.Name); ok && rest == name {
			out = append(out, e.Name)
		}
	}
	return out
}

// Remove returns entries without the one called name.
func Remove(entries []Entry, name string) []Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.Name != name {
			out = append(out, e)
		}
	}
	return out
}
