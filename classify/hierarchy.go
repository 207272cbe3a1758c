package classify

import (
	"sort"
	"strings"

	"github.com/tsawler/outline/model"
)

// bracket is a band of groups whose scores fall within the bracket window
// of the band's top score.
type bracket struct {
	topScore float64
	groups   []*Group
}

// elementCount sums the elements across the bracket's groups.
func (b *bracket) elementCount() int {
	n := 0
	for _, g := range b.groups {
		n += len(g.Elements)
	}
	return n
}

// passesInclusionTest reports whether any element in the bracket has
// trimmed text of at most maxLen characters. Headings are short; a band
// made up entirely of long lines is body text that scored too well.
func (b *bracket) passesInclusionTest(maxLen int) bool {
	for _, g := range b.groups {
		for _, e := range g.Elements {
			if len([]rune(strings.TrimSpace(e.Text))) <= maxLen {
				return true
			}
		}
	}
	return false
}

// setLevel tags every group in the bracket with the heading level of the
// given rank.
func (b *bracket) setLevel(rank int) {
	for _, g := range b.groups {
		g.Level = model.HeadingLevel(rank)
	}
}

// conditionalLevel tags the bracket with the given rank when it passes the
// inclusion test, otherwise excludes it.
func (b *bracket) conditionalLevel(rank, inclusionLen int) {
	if b.passesInclusionTest(inclusionLen) {
		b.setLevel(rank)
		return
	}
	b.exclude()
}

// exclude drops every group in the bracket from the outline.
func (b *bracket) exclude() {
	for _, g := range b.groups {
		g.Level = model.LevelExcluded
	}
}

// buildBrackets bands groups into score brackets. Distinct scores are
// sorted descending, then consumed greedily: a bracket opens at the highest
// unconsumed score and absorbs every score within window points below it.
// Groups within a bracket keep their rank order.
func buildBrackets(groups []*Group, window float64) []*bracket {
	if len(groups) == 0 {
		return nil
	}

	seen := make(map[float64]bool)
	var scores []float64
	for _, g := range groups {
		s := g.Score()
		if !seen[s] {
			seen[s] = true
			scores = append(scores, s)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	byScore := make(map[float64][]*Group)
	for _, g := range groups {
		s := g.Score()
		byScore[s] = append(byScore[s], g)
	}

	var brackets []*bracket
	for i := 0; i < len(scores); {
		b := &bracket{topScore: scores[i]}
		for i < len(scores) && b.topScore-scores[i] <= window {
			b.groups = append(b.groups, byScore[scores[i]]...)
			i++
		}
		brackets = append(brackets, b)
	}
	return brackets
}

// assignLevels maps score brackets to heading levels. Brackets whose total
// element count exceeds maxElements are excluded outright (a band that
// large is body text, not headings). The survivors map by count: the top
// bracket is H1, the second H2, the third H3, and anything further is
// excluded. The second and third brackets must pass the inclusion test to
// earn their level. A lone bracket maps to H1 only if more than one bracket
// existed before the size exclusion; a document that produced a single
// bracket from the start has no typographic hierarchy to report.
func assignLevels(groups []*Group, window float64, maxElements, inclusionLen int) {
	brackets := buildBrackets(groups, window)
	originalCount := len(brackets)

	var kept []*bracket
	for _, b := range brackets {
		if b.elementCount() > maxElements {
			b.exclude()
			continue
		}
		kept = append(kept, b)
	}

	if len(kept) == 0 {
		return
	}
	if len(kept) == 1 && originalCount == 1 {
		kept[0].exclude()
		return
	}

	for i, b := range kept {
		switch {
		case i == 0:
			b.setLevel(1)
		case i == 1 && len(kept) == 2:
			b.conditionalLevel(2, inclusionLen)
		case i == 1:
			b.setLevel(2)
		case i == 2:
			b.conditionalLevel(3, inclusionLen)
		default:
			b.exclude()
		}
	}
}
