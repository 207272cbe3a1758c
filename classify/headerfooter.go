package classify

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/outline/model"
)

// HeaderFooterConfig holds configuration for header/footer detection.
type HeaderFooterConfig struct {
	// PageHeight and PageWidth are the assumed page dimensions in points.
	// Defaults: 792 x 612 (US Letter).
	PageHeight float64
	PageWidth  float64

	// HeaderBand is the fraction of page height from the top inside which
	// the position classifier flags headers. Default: 0.12.
	HeaderBand float64

	// FooterBand is the fraction of page height from the top past which
	// the position classifier flags footers. Default: 0.88.
	FooterBand float64

	// StyleHeaderBand and StyleFooterBand are the looser bands the style
	// classifier considers. Defaults: 0.15 and 0.85.
	StyleHeaderBand float64
	StyleFooterBand float64

	// MinRepetition is the number of distinct pages a pattern must appear
	// on to count as a confirmed repeated header/footer. Default: 2.
	MinRepetition int
}

// DefaultHeaderFooterConfig returns sensible default configuration.
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		PageHeight:      792.0,
		PageWidth:       612.0,
		HeaderBand:      0.12,
		FooterBand:      0.88,
		StyleHeaderBand: 0.15,
		StyleFooterBand: 0.85,
		MinRepetition:   2,
	}
}

// HeaderFooterDetector removes repeating page furniture. Two independent
// per-page classifiers fire, one positional and one stylistic, and only
// elements flagged by both are treated as page furniture. A cross-page
// repetition pass then confirms repeated patterns and sweeps up their
// remaining occurrences.
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a detector with default configuration.
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{config: DefaultHeaderFooterConfig()}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom
// configuration.
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{config: config}
}

// RepeatedPattern describes a confirmed repeating header/footer.
type RepeatedPattern struct {
	// Text is the representative text, or "[Page Number]" for page-number
	// patterns.
	Text string

	// IsPageNumber indicates a page-number pattern (matched by position
	// rather than exact text).
	IsPageNumber bool

	// Pages lists the pages the pattern appears on, ascending.
	Pages []int
}

// HeaderFooterResult contains the detection outcome.
type HeaderFooterResult struct {
	// Removed holds the original indices of elements classified as page
	// furniture.
	Removed map[int]bool

	// Patterns are the confirmed repeated header/footer patterns, for
	// diagnostics.
	Patterns []RepeatedPattern

	// Config used for detection.
	Config HeaderFooterConfig
}

// patternKey identifies a header/footer occurrence across pages. For
// page-number-like text only the normalized position matters; for other
// text the exact text plus rounded position.
type patternKey struct {
	text       string
	x, y       float64
	pageNumber bool
}

// Detect classifies every element and returns the removal set plus the
// confirmed repeated patterns.
func (d *HeaderFooterDetector) Detect(elements []model.Element) *HeaderFooterResult {
	result := &HeaderFooterResult{
		Removed: make(map[int]bool),
		Config:  d.config,
	}

	byPage := make(map[int][]model.Element)
	var pages []int
	for _, e := range elements {
		if _, ok := byPage[e.Page]; !ok {
			pages = append(pages, e.Page)
		}
		byPage[e.Page] = append(byPage[e.Page], e)
	}
	sort.Ints(pages)

	// Per-page intersection of the position and style classifiers.
	for _, page := range pages {
		pageElems := byPage[page]
		position := d.classifyByPosition(pageElems)
		style := d.classifyByStyle(pageElems)
		for idx := range position {
			if style[idx] {
				result.Removed[idx] = true
			}
		}
	}

	// Cross-page repetition: confirm patterns seen on enough pages, then
	// sweep up unflagged occurrences inside the loose bands.
	occurrences := make(map[patternKey]map[int]bool)
	var keyOrder []patternKey
	for _, page := range pages {
		for _, e := range byPage[page] {
			if !result.Removed[e.Index] {
				continue
			}
			key := d.patternFor(e)
			if occurrences[key] == nil {
				occurrences[key] = make(map[int]bool)
				keyOrder = append(keyOrder, key)
			}
			occurrences[key][e.Page] = true
		}
	}

	confirmed := make(map[patternKey]bool)
	for _, key := range keyOrder {
		if len(occurrences[key]) >= d.config.MinRepetition {
			confirmed[key] = true
			result.Patterns = append(result.Patterns, d.patternInfo(key, occurrences[key]))
		}
	}

	if len(confirmed) > 0 {
		for _, page := range pages {
			for _, e := range byPage[page] {
				if result.Removed[e.Index] || !d.inLooseBand(e) {
					continue
				}
				if confirmed[d.patternFor(e)] {
					result.Removed[e.Index] = true
				}
			}
		}
	}

	return result
}

// Filter returns the elements not classified as page furniture, preserving
// order.
func (r *HeaderFooterResult) Filter(elements []model.Element) []model.Element {
	if r == nil || len(r.Removed) == 0 {
		return elements
	}
	var kept []model.Element
	for _, e := range elements {
		if !r.Removed[e.Index] {
			kept = append(kept, e)
		}
	}
	return kept
}

// classifyByPosition flags elements in the top or bottom position band.
func (d *HeaderFooterDetector) classifyByPosition(elements []model.Element) map[int]bool {
	flagged := make(map[int]bool)
	headerLimit := d.config.PageHeight * d.config.HeaderBand
	footerLimit := d.config.PageHeight * d.config.FooterBand

	for _, e := range elements {
		if e.Y <= headerLimit || e.Y >= footerLimit {
			flagged[e.Index] = true
		}
	}
	return flagged
}

// classifyByStyle flags elements in the loose bands whose style reads like
// page furniture: small type relative to the page's modal size, page-number
// text, short text, or italics.
func (d *HeaderFooterDetector) classifyByStyle(elements []model.Element) map[int]bool {
	flagged := make(map[int]bool)
	if len(elements) == 0 {
		return flagged
	}

	modal := modalFontSize(elements)

	for _, e := range elements {
		if !d.inLooseBand(e) {
			continue
		}

		score := 0
		if e.FontSize < modal*0.85 {
			score += 2
		}
		if isPageNumberText(e.Text) {
			score += 3
		}
		if len([]rune(e.Text)) < 60 {
			score++
		}
		if e.Italic {
			score++
		}

		if score >= 2 {
			flagged[e.Index] = true
		}
	}
	return flagged
}

// inLooseBand reports whether the element sits in the style classifier's
// top or bottom band.
func (d *HeaderFooterDetector) inLooseBand(e model.Element) bool {
	return e.Y <= d.config.PageHeight*d.config.StyleHeaderBand ||
		e.Y >= d.config.PageHeight*d.config.StyleFooterBand
}

// patternFor builds the repetition key for an element: position only for
// page-number-like text, exact text plus rounded position otherwise.
func (d *HeaderFooterDetector) patternFor(e model.Element) patternKey {
	yNorm := roundHundredth(e.Y / d.config.PageHeight)
	xNorm := roundHundredth(e.X / d.config.PageWidth)

	if isPageNumberText(e.Text) {
		return patternKey{x: xNorm, y: yNorm, pageNumber: true}
	}
	return patternKey{text: strings.TrimSpace(e.Text), x: xNorm, y: yNorm}
}

// patternInfo converts a confirmed key and its page set into the exported
// pattern description.
func (d *HeaderFooterDetector) patternInfo(key patternKey, pageSet map[int]bool) RepeatedPattern {
	var pages []int
	for p := range pageSet {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	text := key.text
	if key.pageNumber {
		text = "[Page Number]"
	}
	return RepeatedPattern{Text: text, IsPageNumber: key.pageNumber, Pages: pages}
}

// modalFontSize returns the page's most frequent font size. Ties break
// toward the larger size so body text wins.
func modalFontSize(elements []model.Element) float64 {
	counts := make(map[float64]int)
	for _, e := range elements {
		counts[e.FontSize]++
	}

	best, bestCount := model.DefaultFontSize, 0
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size > best) {
			best, bestCount = size, count
		}
	}
	return best
}

var pageNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),            // "3"
	regexp.MustCompile(`^page\s+\d+$`),     // "page 3"
	regexp.MustCompile(`^p\.\s*\d+$`),      // "p. 3"
	regexp.MustCompile(`^\d+\s*/\s*\d+$`),  // "3 / 10"
	regexp.MustCompile(`^-\s*\d+\s*-$`),    // "- 3 -"
}

// isPageNumberText reports whether text looks like a bare page number.
func isPageNumberText(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, p := range pageNumberPatterns {
		if p.MatchString(t) {
			return true
		}
	}
	return false
}

func roundHundredth(f float64) float64 {
	return math.Round(f*100) / 100
}
