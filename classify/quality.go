package classify

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

// asciiPunct is the punctuation set stripped from word boundaries before
// capitalization and dictionary checks.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// doubledRuns are character runs that plausible headings never contain;
// they indicate rules, leaders, or extraction garbage.
var doubledRuns = []string{"--", "..", "==", "**", "^^", "<<", ">>", "//", `\\`, "~~"}

// IsHeadingText reports whether text could plausibly be a heading. A
// candidate must be at least three characters after trimming, contain no
// doubled special-character run, contain at least one letter, and, unless
// it starts with a digit, have a capitalized first word. Digit-led strings
// pass immediately; anything else must read as words: an all-caps acronym,
// a word the lexicon knows, a string containing a known word of length two
// or more, or text that is at least half letters.
func IsHeadingText(text string, lx lexicon.Lexicon) bool {
	text = strings.TrimSpace(norm.NFC.String(text))
	if len([]rune(text)) < 3 {
		return false
	}

	for _, run := range doubledRuns {
		if strings.Contains(text, run) {
			return false
		}
	}

	if !containsLetter(text) {
		return false
	}

	first, _ := firstRune(text)
	if !unicode.IsDigit(first) {
		words := strings.Fields(text)
		if len(words) > 0 {
			w := strings.Trim(words[0], asciiPunct)
			if r, ok := firstRune(w); ok && unicode.IsLower(r) {
				return false
			}
		}
	}

	if unicode.IsDigit(first) {
		return true
	}

	cleaned := strings.Trim(text, asciiPunct)

	if isAllUpper(cleaned) && len([]rune(cleaned)) >= 2 {
		return true
	}

	if lx != nil {
		if lx.Known(cleaned) {
			return true
		}
		for _, word := range strings.Fields(cleaned) {
			word = strings.Trim(word, asciiPunct)
			if len([]rune(word)) >= 2 && lx.Known(word) {
				return true
			}
		}
	}

	if runes := []rune(cleaned); len(runes) >= 3 {
		letters := 0
		for _, r := range runes {
			if unicode.IsLetter(r) {
				letters++
			}
		}
		if float64(letters) >= float64(len(runes))*0.5 {
			return true
		}
	}

	return false
}

// filterHeadingText drops elements whose text cannot plausibly be a heading.
func filterHeadingText(elements []model.Element, lx lexicon.Lexicon) []model.Element {
	var kept []model.Element
	for _, e := range elements {
		if IsHeadingText(e.Text, lx) {
			kept = append(kept, e)
		}
	}
	return kept
}

// filterDominantSizes removes elements set in presumed body-text sizes.
// With three or fewer distinct font sizes the document is kept whole; past
// that, any size used by more than half the elements is excluded. If the
// exclusion would eliminate every size, the three largest sizes are
// retained instead.
func filterDominantSizes(elements []model.Element) []model.Element {
	counts := make(map[float64]int)
	for _, e := range elements {
		counts[e.FontSize]++
	}
	if len(counts) <= 3 {
		return elements
	}

	total := len(elements)
	excluded := make(map[float64]bool)
	keptSizes := 0
	for size, count := range counts {
		if count*2 > total {
			excluded[size] = true
		} else {
			keptSizes++
		}
	}

	if keptSizes == 0 {
		var sizes []float64
		for size := range counts {
			sizes = append(sizes, size)
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
		excluded = make(map[float64]bool)
		for _, size := range sizes[3:] {
			excluded[size] = true
		}
	}

	var kept []model.Element
	for _, e := range elements {
		if !excluded[e.FontSize] {
			kept = append(kept, e)
		}
	}
	return kept
}

// normalizeHeading produces the comparison key for repeated-heading
// detection: NFKC-normalized, lower-cased, whitespace-collapsed text.
func normalizeHeading(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(strings.TrimSpace(text))
	return strings.Join(strings.Fields(text), " ")
}

// containsLetter reports whether s contains at least one letter.
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isAllUpper reports whether s contains at least one cased letter and no
// lower-case letters (the acronym shape).
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// firstRune returns the first rune of s.
func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
