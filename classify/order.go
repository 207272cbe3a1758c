package classify

import (
	"sort"
	"strings"

	"github.com/tsawler/outline/model"
)

// outlineEntry pairs a result entry with the document position of its
// source element, which the order corrector needs and the output does not.
type outlineEntry struct {
	Level model.Level
	Text  string
	Page  int
	Index int
}

// buildEntries assembles outline entries from every heading-level group,
// one entry per reconstructed element, sorted by document position.
// Elements absorbed into the title and elements with empty text are
// skipped.
func buildEntries(groups []*Group, titleIndices map[int]bool) []outlineEntry {
	var entries []outlineEntry
	for _, g := range groups {
		if !g.Level.IsHeading() {
			continue
		}
		for _, e := range g.Elements {
			if titleIndices[e.Index] {
				continue
			}
			text := strings.TrimSpace(e.Text)
			if text == "" {
				continue
			}
			entries = append(entries, outlineEntry{
				Level: g.Level,
				Text:  text,
				Page:  e.Page,
				Index: e.Index,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Page != entries[j].Page {
			return entries[i].Page < entries[j].Page
		}
		return entries[i].Index < entries[j].Index
	})
	return entries
}

// correctOrder fixes two classes of inconsistency in an assembled outline.
//
// Title demotion: when any heading's source element appears earlier in the
// document than every element of the title, the "title" was not actually
// the document title. The title string is cleared and the former title is
// prepended to the outline as an H1 entry.
//
// Level renumbering: the distinct levels in first-appearance order must be
// the contiguous prefix H1, H2, H3, ... If they are not (say H3 appears
// before any H2), every level is remapped to its rank in first-appearance
// order.
//
// Both inputs are left unmodified; the corrected title and entry list are
// returned.
func correctOrder(title string, titlePage, minTitleIndex int, entries []outlineEntry) (string, []outlineEntry) {
	corrected := make([]outlineEntry, len(entries))
	copy(corrected, entries)

	if title != "" && anyEntryBefore(corrected, minTitleIndex) {
		demoted := outlineEntry{
			Level: model.LevelH1,
			Text:  title,
			Page:  titlePage,
			Index: minTitleIndex,
		}
		corrected = append([]outlineEntry{demoted}, corrected...)
		title = ""
	}

	return title, renumberLevels(corrected)
}

// anyEntryBefore reports whether any entry's source element precedes the
// given document index.
func anyEntryBefore(entries []outlineEntry, index int) bool {
	for _, e := range entries {
		if e.Index < index {
			return true
		}
	}
	return false
}

// renumberLevels remaps entry levels to their rank in first-appearance
// order, so the outline always opens with H1 and never skips a level on
// first use. Entries are returned unchanged when the levels already form a
// contiguous prefix.
func renumberLevels(entries []outlineEntry) []outlineEntry {
	var order []model.Level
	seen := make(map[model.Level]bool)
	for _, e := range entries {
		if !seen[e.Level] {
			seen[e.Level] = true
			order = append(order, e.Level)
		}
	}

	contiguous := true
	for i, l := range order {
		if l != model.HeadingLevel(i+1) {
			contiguous = false
			break
		}
	}
	if contiguous {
		return entries
	}

	remap := make(map[model.Level]model.Level, len(order))
	for i, l := range order {
		remap[l] = model.HeadingLevel(i + 1)
	}
	for i := range entries {
		entries[i].Level = remap[entries[i].Level]
	}
	return entries
}

// resultEntries converts internal entries to their output form.
func resultEntries(entries []outlineEntry) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.Entry{Level: e.Level, Text: e.Text, Page: e.Page})
	}
	return out
}
