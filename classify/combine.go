package classify

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/outline/model"
)

// Spatial thresholds for deciding that two elements are pieces of the same
// logical heading.
const (
	overlapXTolerance = 3 // points; closer than this counts as same column
	overlapYTolerance = 2 // points; closer than this counts as same line
)

// combineGroups merges adjacent, visually-contiguous elements inside each
// group into single logical headings. Grouping is not re-run afterwards:
// the combined element stays in its group.
func combineGroups(groups []*Group) {
	for _, g := range groups {
		if len(g.Elements) <= 1 {
			continue
		}
		g.Elements = combineConsecutive(g.Elements)
	}
}

// combineConsecutive walks the group's elements in document order and
// collapses runs of consecutive, same-page, vertically-adjacent elements
// into one element each. Two elements belong to the same run when their
// original indices differ by at most one, they share a page, and their
// vertical distance is within max(2, font_size*0.15).
func combineConsecutive(elements []model.Element) []model.Element {
	sorted := make([]model.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].Index < sorted[j].Index
	})

	var combined []model.Element
	run := []model.Element{sorted[0]}

	flush := func() {
		if len(run) > 1 {
			combined = append(combined, mergeRun(run))
		} else {
			combined = append(combined, run...)
		}
	}

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]

		consecutive := cur.Index-prev.Index <= 1
		samePage := cur.Page == prev.Page
		threshold := math.Max(2, cur.FontSize*0.15)
		near := math.Abs(cur.Y-prev.Y) <= threshold

		if consecutive && samePage && near {
			run = append(run, cur)
			continue
		}
		flush()
		run = []model.Element{cur}
	}
	flush()

	return combined
}

// mergeRun collapses a run of elements into one. The first element (by
// original index) provides position, formatting, and the document-order
// key; the last element provides the trailing spacing; the text is rebuilt
// by ReconstructText.
func mergeRun(run []model.Element) model.Element {
	if len(run) == 1 {
		return run[0]
	}

	sorted := make([]model.Element, len(run))
	copy(sorted, run)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	merged := sorted[0]
	merged.Text = ReconstructText(sorted)
	merged.SpaceBelow = sorted[len(sorted)-1].SpaceBelow
	return merged
}

// ReconstructText rebuilds a single logical text string from fragmented
// elements. Spatially-overlapping duplicate fragments are dropped first,
// then reconstruction strategies apply in order of preference: overlap
// stitching, positional line assembly, and index-ordered deduplicated
// concatenation as the last resort.
func ReconstructText(elements []model.Element) string {
	if len(elements) == 0 {
		return ""
	}

	elements = removeOverlapping(elements)

	if text := stitchByOverlap(elements); text != "" {
		return text
	}
	if text := assembleByPosition(elements); text != "" {
		return text
	}
	return concatenateUnique(elements)
}

// removeOverlapping drops duplicate fragments that occupy the same spot:
// x within 3pt, y within 2pt, and one text containing the other. The longer
// text wins; on equal length the earlier fragment is kept.
func removeOverlapping(elements []model.Element) []model.Element {
	if len(elements) <= 1 {
		return elements
	}

	sorted := make([]model.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	var kept []model.Element
	for _, cur := range sorted {
		curText := strings.TrimSpace(cur.Text)
		keep := true
		filtered := kept[:0]
		for _, prev := range kept {
			prevText := strings.TrimSpace(prev.Text)
			overlaps := math.Abs(cur.X-prev.X) < overlapXTolerance &&
				math.Abs(cur.Y-prev.Y) < overlapYTolerance
			contained := strings.Contains(prevText, curText) ||
				strings.Contains(curText, prevText)
			if overlaps && contained {
				if len([]rune(curText)) <= len([]rune(prevText)) {
					keep = false
					filtered = append(filtered, prev)
				}
				// Otherwise drop prev: cur is strictly longer.
				continue
			}
			filtered = append(filtered, prev)
		}
		kept = filtered
		if keep {
			kept = append(kept, cur)
		}
	}
	return kept
}

// stitchByOverlap reconstructs by merging overlapping text fragments.
func stitchByOverlap(elements []model.Element) string {
	sorted := make([]model.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	var fragments []string
	for _, e := range sorted {
		if t := strings.TrimSpace(e.Text); t != "" {
			fragments = append(fragments, t)
		}
	}
	if len(fragments) == 0 {
		return ""
	}
	return mergeFragments(fragments)
}

// mergeFragments merges text fragments into one coherent string. Unique
// fragments are sorted longest-first, stably, so equal-length fragments
// keep first-encountered order, and folded into
// a running result: a fragment already contained in the result is skipped,
// a suffix/prefix overlap extends the result, and a fragment sharing no
// significant word with the result is appended as a continuation.
func mergeFragments(fragments []string) string {
	var unique []string
	seen := make(map[string]bool)
	for _, f := range fragments {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}
	if len(unique) == 1 {
		return unique[0]
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return len([]rune(unique[i])) > len([]rune(unique[j]))
	})

	result := unique[0]
	for _, frag := range unique[1:] {
		if strings.Contains(strings.ToLower(result), strings.ToLower(frag)) {
			continue
		}

		merged := mergeTwoFragments(result, frag)
		if merged != result && len([]rune(merged)) > len([]rune(result)) {
			result = merged
			continue
		}

		if !sharesSignificantWord(result, frag) {
			result = result + " " + frag
		}
	}

	return strings.TrimSpace(result)
}

// sharesSignificantWord reports whether any word of frag longer than two
// characters already occurs in result (case-insensitive).
func sharesSignificantWord(result, frag string) bool {
	lower := strings.ToLower(result)
	for _, word := range strings.Fields(frag) {
		if len([]rune(word)) > 2 && strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// mergeTwoFragments attempts to merge two potentially overlapping
// fragments. It tries suffix/prefix overlaps up to half the shorter
// fragment's length (case-insensitive), then containment; when no merge is
// possible it returns a unchanged.
func mergeTwoFragments(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	maxOverlap := len(ra)
	if len(rb) < maxOverlap {
		maxOverlap = len(rb)
	}
	maxOverlap /= 2

	for n := maxOverlap; n > 0; n-- {
		if strings.EqualFold(string(ra[len(ra)-n:]), string(rb[:n])) {
			return a + string(rb[n:])
		}
	}
	for n := maxOverlap; n > 0; n-- {
		if strings.EqualFold(string(rb[len(rb)-n:]), string(ra[:n])) {
			return b + string(ra[n:])
		}
	}

	la, lb := strings.ToLower(a), strings.ToLower(b)
	if strings.Contains(lb, la) {
		return b
	}
	if strings.Contains(la, lb) {
		return a
	}

	return a
}

// assembleByPosition reconstructs text from spatial coordinates: fragments
// are bucketed into lines by rounded y position, each line is read left to
// right, and lines are joined top to bottom.
func assembleByPosition(elements []model.Element) string {
	lines := make(map[int][]model.Element)
	var keys []int
	for _, e := range elements {
		key := int(math.Round(e.Y/10)) * 10
		if _, ok := lines[key]; !ok {
			keys = append(keys, key)
		}
		lines[key] = append(lines[key], e)
	}
	sort.Ints(keys)

	var lineTexts []string
	for _, key := range keys {
		line := lines[key]
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].X < line[j].X
		})
		var words []string
		for _, e := range line {
			if t := strings.TrimSpace(e.Text); t != "" {
				words = append(words, t)
			}
		}
		if len(words) > 0 {
			lineTexts = append(lineTexts, strings.Join(words, " "))
		}
	}

	return strings.Join(lineTexts, " ")
}

// concatenateUnique joins the distinct fragment texts in document order.
func concatenateUnique(elements []model.Element) string {
	sorted := make([]model.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	seen := make(map[string]bool)
	var parts []string
	for _, e := range sorted {
		t := strings.TrimSpace(e.Text)
		if t != "" && !seen[t] {
			seen[t] = true
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
