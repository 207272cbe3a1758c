package classify

import (
	"math"
	"sort"

	"github.com/tsawler/outline/model"
)

// Group is a cluster of line elements sharing a formatting signature and
// spatial proximity. It is the unit that receives a final outline level.
type Group struct {
	// FontSize is the signature font size, rounded to 0.1pt.
	FontSize float64

	// Bold and Italic are the signature style flags.
	Bold   bool
	Italic bool

	// Centered is the signature centering flag. Groups formed by spatial
	// merging keep the flag of the group they merged into.
	Centered bool

	// Font is the normalized font family (lower-cased, hyphens and spaces
	// stripped).
	Font string

	// Underlined is true when any member element is underlined.
	Underlined bool

	// Elements are the member elements. At every pipeline point the groups
	// partition the current element set: no element belongs to two groups.
	Elements []model.Element

	// Level is the group's current tag. Groups start at model.LevelNone.
	Level model.Level

	// keySignature is the full signature the group was created under.
	keySignature signature
}

// signature is the formatting key used to cluster elements. The centered
// flag participates only for groups that were not spatially merged into an
// existing cluster.
type signature struct {
	fontSize float64
	bold     bool
	italic   bool
	font     string
	centered bool
}

// base returns the signature without the centered flag.
func (s signature) base() signature {
	s.centered = false
	return s
}

// elementSignature computes the full clustering signature for an element.
func elementSignature(e model.Element) signature {
	return signature{
		fontSize: roundTenth(e.FontSize),
		bold:     e.Bold,
		italic:   e.Italic,
		font:     e.FontFamily(),
		centered: e.Centered,
	}
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}

// groupElements clusters elements into heading groups. For each element it
// searches existing groups with the same base signature on the same page; if
// any member of a candidate group lies within a dynamic vertical threshold
// (max(3, font_size*0.2)) of the element, the element merges into that
// group. Otherwise the element joins the group keyed by its full signature,
// creating it if necessary. Groups come out in first-creation order, which
// keeps the run deterministic.
func groupElements(elements []model.Element) []*Group {
	var groups []*Group
	byKey := make(map[signature]*Group)

	for _, e := range elements {
		sig := elementSignature(e)
		base := sig.base()

		merged := false
		for _, g := range groups {
			if g.keySignature.base() != base {
				continue
			}
			threshold := math.Max(3, e.FontSize*0.2)
			for _, member := range g.Elements {
				if member.Page == e.Page && math.Abs(e.Y-member.Y) <= threshold {
					g.Elements = append(g.Elements, e)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
		if merged {
			continue
		}

		g, ok := byKey[sig]
		if !ok {
			g = &Group{
				FontSize:     sig.fontSize,
				Bold:         sig.bold,
				Italic:       sig.italic,
				Centered:     sig.centered,
				Font:         sig.font,
				keySignature: sig,
			}
			byKey[sig] = g
			groups = append(groups, g)
		}
		g.Elements = append(g.Elements, e)
	}

	for _, g := range groups {
		for _, e := range g.Elements {
			if e.Underlined {
				g.Underlined = true
				break
			}
		}
	}

	return groups
}

// catchAllGroup is the grouping fallback: a single group with default
// formatting holding every element.
func catchAllGroup(elements []model.Element) []*Group {
	g := &Group{
		FontSize: model.DefaultFontSize,
		Font:     "arial",
		Elements: elements,
	}
	return []*Group{g}
}

// Pages returns the set of pages the group's elements appear on, in
// ascending order.
func (g *Group) Pages() []int {
	seen := make(map[int]bool)
	var pages []int
	for _, e := range g.Elements {
		if !seen[e.Page] {
			seen[e.Page] = true
			pages = append(pages, e.Page)
		}
	}
	sort.Ints(pages)
	return pages
}

// EarliestPage returns the lowest page number among the group's elements,
// or 0 for an empty group.
func (g *Group) EarliestPage() int {
	pages := g.Pages()
	if len(pages) == 0 {
		return 0
	}
	return pages[0]
}
