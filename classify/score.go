package classify

import "sort"

// Style and spacing bonuses applied on top of the font-size base score.
const (
	boldBonus       = 11
	italicBonus     = 11
	underlineBonus  = 11
	centerBonus     = 5
	spaceAboveBonus = 5
	spaceBelowBonus = 3
	spacingTrigger  = 10 // points of surrounding whitespace that earn a bonus
)

// Score computes the group's priority score:
//
//	font_size*100 + style bonuses + spacing bonuses + mean word-count bonus
//
// Holding all other attributes fixed the score is strictly increasing in
// font size, so larger type always outranks smaller type and the bonuses
// only break ties between near-equal sizes.
func (g *Group) Score() float64 {
	score := g.FontSize * 100

	if g.Bold {
		score += boldBonus
	}
	if g.Centered {
		score += centerBonus
	}
	if g.Italic {
		score += italicBonus
	}
	if g.Underlined {
		score += underlineBonus
	}

	// Spacing is a group-level property: the widest gap any member has.
	maxAbove, maxBelow := 0.0, 0.0
	for _, e := range g.Elements {
		if e.SpaceAbove > maxAbove {
			maxAbove = e.SpaceAbove
		}
		if e.SpaceBelow > maxBelow {
			maxBelow = e.SpaceBelow
		}
	}
	if maxAbove > spacingTrigger {
		score += spaceAboveBonus
	}
	if maxBelow > spacingTrigger {
		score += spaceBelowBonus
	}

	score += g.wordCountBonus()

	return score
}

// wordCountBonus rewards groups whose elements read like headings: fewer
// words earn a higher bonus. The bonus is averaged over the group's
// elements so that group size does not inflate the score.
func (g *Group) wordCountBonus() float64 {
	if len(g.Elements) == 0 {
		return 0
	}

	total := 0.0
	for _, e := range g.Elements {
		total += wordCountBonus(e.WordCount())
	}
	return total / float64(len(g.Elements))
}

// wordCountBonus maps a word count to its bonus. Elements with more than
// eight words earn nothing.
func wordCountBonus(words int) float64 {
	switch {
	case words <= 0:
		return 0
	case words == 1:
		return 20
	case words == 2:
		return 15
	case words == 3:
		return 12
	case words == 4:
		return 10
	case words == 5:
		return 8
	case words == 6:
		return 5
	case words == 7:
		return 3
	case words == 8:
		return 1
	default:
		return 0
	}
}

// rankGroups sorts groups by descending priority score. The sort is stable
// so equal-scoring groups keep their creation order. Returns the sorted
// slice.
func rankGroups(groups []*Group) []*Group {
	scores := make(map[*Group]float64, len(groups))
	for _, g := range groups {
		scores[g] = g.Score()
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return scores[groups[i]] > scores[groups[j]]
	})
	return groups
}
