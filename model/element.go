package model

import (
	"math"
	"strings"
)

// Default values applied by [NewElement] when a record field is missing or
// out of range.
const (
	DefaultFontSize = 12.0
	DefaultFont     = "Arial"
	DefaultPage     = 1
)

// Element is a validated line element. Elements are constructed once by
// [NewElement] and treated as immutable by the pipeline; stages that need a
// modified element build a new one.
type Element struct {
	// Text is the trimmed line text. Always non-empty for elements that
	// enter the pipeline.
	Text string

	// Page is the 1-based page number.
	Page int

	// FontSize is the font size in points. Always positive and finite.
	FontSize float64

	// Font is the font name as reported by the producer.
	Font string

	// Style flags.
	Bold       bool
	Italic     bool
	Underlined bool
	Centered   bool

	// SpaceAbove and SpaceBelow are vertical gaps to neighbouring lines.
	SpaceAbove float64
	SpaceBelow float64

	// X and Y are page coordinates, origin top-left.
	X float64
	Y float64

	// Index is the element's position in the original record sequence.
	// It is the canonical document-order key and is unique per document.
	Index int
}

// NewElement coerces a raw record into a valid element. Out-of-range numeric
// fields fall back to documented defaults (font size 12pt, page 1) and
// non-finite coordinates and spacing collapse to zero. The second return is
// false when the record has no text after trimming, in which case the
// element must not enter the pipeline.
func NewElement(r Record, index int) (Element, bool) {
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return Element{}, false
	}

	e := Element{
		Text:       text,
		Page:       r.Page,
		FontSize:   r.FontSize,
		Font:       r.Font,
		Bold:       r.Bold,
		Italic:     r.Italic,
		Underlined: r.Underlined,
		Centered:   r.Centered,
		SpaceAbove: finiteOrZero(r.SpaceAbove),
		SpaceBelow: finiteOrZero(r.SpaceBelow),
		X:          finiteOrZero(r.X),
		Y:          finiteOrZero(r.Y),
		Index:      index,
	}

	if e.Page < 1 {
		e.Page = DefaultPage
	}
	if e.FontSize <= 0 || math.IsNaN(e.FontSize) || math.IsInf(e.FontSize, 0) {
		e.FontSize = DefaultFontSize
	}
	if e.Font == "" {
		e.Font = DefaultFont
	}

	return e, true
}

// FontFamily returns the font name normalized for comparison: lower-cased
// with hyphens and spaces stripped, so "Times-Bold" and "times bold" compare
// equal.
func (e Element) FontFamily() string {
	f := strings.ToLower(e.Font)
	f = strings.ReplaceAll(f, "-", "")
	f = strings.ReplaceAll(f, " ", "")
	return f
}

// WordCount returns the number of non-blank whitespace-separated tokens in
// the element's text.
func (e Element) WordCount() int {
	return len(strings.Fields(e.Text))
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
