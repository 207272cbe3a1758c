package classify

// removeRepeatedHeadings drops elements whose normalized text occurs more
// than maxOccurrences times across the given groups. Text with highly
// repeated content is almost always boilerplate (running heads the
// header/footer pass missed, watermarks, form labels) rather than a
// heading. Normalized texts of one or two characters are never counted.
// Groups left with no elements are removed; order is otherwise preserved.
func removeRepeatedHeadings(groups []*Group, maxOccurrences int) []*Group {
	counts := make(map[string]int)
	for _, g := range groups {
		for _, e := range g.Elements {
			key := normalizeHeading(e.Text)
			if len([]rune(key)) <= 2 {
				continue
			}
			counts[key]++
		}
	}

	kept := groups[:0]
	for _, g := range groups {
		elems := g.Elements[:0]
		for _, e := range g.Elements {
			key := normalizeHeading(e.Text)
			if len([]rune(key)) > 2 && counts[key] > maxOccurrences {
				continue
			}
			elems = append(elems, e)
		}
		g.Elements = elems
		if len(g.Elements) > 0 {
			kept = append(kept, g)
		}
	}
	return kept
}
