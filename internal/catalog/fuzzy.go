package catalog

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

type nameSource []Entry

func (s nameSource) String(i int) string { return s[i].Name }
func (s nameSource) Len() int            { return len(s) }

// Refilter returns the entries matching query, best score first. Ties keep
// their catalog order. An empty query returns a copy of entries with every
// score reset. The input slice is never modified.
func Refilter(entries []Entry, query string) []Entry {
	if query == "" {
		out := make([]Entry, len(entries))
		copy(out, entries)
		for i := range out {
			out[i].Score = 0
		}
		return out
	}

	matches := fuzzy.FindFrom(query, nameSource(entries))
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})

	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = entries[m.Index]
		out[i].Score = m.Score
	}
	return out
}
