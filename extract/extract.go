// Package extract produces line records from PDF files. It is the upstream
// producer for the classification pipeline: one record per visual text
// line, in reading order, with position, font, and style metadata.
package extract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outline/model"
)

// Fallback page dimensions (US Letter) when a page carries no MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Config holds the tunable parameters for line extraction.
type Config struct {
	// LineTolerance is the vertical distance in points within which two
	// text fragments are considered part of the same line. Default: 2.
	LineTolerance float64

	// CenterTolerance is the horizontal distance from the page center
	// within which a line counts as centered. Default: 50.
	CenterTolerance float64

	// GapFactor is the fraction of the font size a horizontal gap between
	// fragments must exceed to become a word break. Default: 0.3.
	GapFactor float64
}

// DefaultConfig returns the standard extraction parameters.
func DefaultConfig() Config {
	return Config{
		LineTolerance:   2,
		CenterTolerance: 50,
		GapFactor:       0.3,
	}
}

// Extractor reads line records from PDF files.
type Extractor struct {
	config Config
}

// New creates an extractor with default configuration.
func New() *Extractor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an extractor with custom parameters. Zero or
// negative values fall back to their defaults.
func NewWithConfig(config Config) *Extractor {
	def := DefaultConfig()
	if config.LineTolerance <= 0 {
		config.LineTolerance = def.LineTolerance
	}
	if config.CenterTolerance <= 0 {
		config.CenterTolerance = def.CenterTolerance
	}
	if config.GapFactor <= 0 {
		config.GapFactor = def.GapFactor
	}
	return &Extractor{config: config}
}

// File extracts line records from the PDF at path, ordered by page and
// top-to-bottom position. Pages that fail to decode are skipped.
func (e *Extractor) File(path string) ([]model.Record, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var records []model.Record
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		width, height := pageSize(page)
		fragments := pageFragments(page)
		records = append(records, e.assembleLines(fragments, i, width, height)...)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no text found in %s", path)
	}
	return records, nil
}

// fragment is one positioned text run from the PDF content stream, in the
// PDF's bottom-left coordinate space.
type fragment struct {
	text string
	x, y float64
	w    float64
	font string
	size float64
}

// pageFragments collects the page's text runs.
func pageFragments(page pdf.Page) []fragment {
	content := page.Content()
	fragments := make([]fragment, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		fragments = append(fragments, fragment{
			text: t.S,
			x:    t.X,
			y:    t.Y,
			w:    t.W,
			font: t.Font,
			size: t.FontSize,
		})
	}
	return fragments
}

// pageSize reads the page's MediaBox dimensions, falling back to US Letter.
func pageSize(page pdf.Page) (width, height float64) {
	width, height = defaultPageWidth, defaultPageHeight

	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() != 4 {
		return width, height
	}

	x0, y0 := box.Index(0).Float64(), box.Index(1).Float64()
	x1, y1 := box.Index(2).Float64(), box.Index(3).Float64()
	if w := x1 - x0; w > 0 {
		width = w
	}
	if h := y1 - y0; h > 0 {
		height = h
	}
	return width, height
}

// assembleLines groups a page's fragments into visual lines and converts
// each line into a record. Lines come out top to bottom; coordinates are
// converted to a top-left origin.
func (e *Extractor) assembleLines(fragments []fragment, page int, pageWidth, pageHeight float64) []model.Record {
	if len(fragments) == 0 {
		return nil
	}

	// Sort top-to-bottom (descending y in PDF space), then left-to-right.
	sorted := make([]fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].y != sorted[j].y {
			return sorted[i].y > sorted[j].y
		}
		return sorted[i].x < sorted[j].x
	})

	var lines [][]fragment
	current := []fragment{sorted[0]}
	for _, f := range sorted[1:] {
		if math.Abs(f.y-current[0].y) <= e.config.LineTolerance {
			current = append(current, f)
			continue
		}
		lines = append(lines, current)
		current = []fragment{f}
	}
	lines = append(lines, current)

	records := make([]model.Record, 0, len(lines))
	for _, line := range lines {
		if r, ok := e.lineRecord(line, page, pageWidth, pageHeight); ok {
			records = append(records, r)
		}
	}

	// Spacing between neighbouring lines, approximating line height with
	// the font size.
	for i := range records {
		if i > 0 {
			gap := records[i].Y - records[i].FontSize - records[i-1].Y
			records[i].SpaceAbove = math.Max(0, gap)
			records[i-1].SpaceBelow = records[i].SpaceAbove
		}
	}

	return records
}

// lineRecord builds one record from a line's fragments.
func (e *Extractor) lineRecord(line []fragment, page int, pageWidth, pageHeight float64) (model.Record, bool) {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].x < line[j].x
	})

	var b strings.Builder
	size := 0.0
	font := line[0].font
	endX := line[0].x
	for i, f := range line {
		if f.size > size {
			size = f.size
		}
		if i > 0 && f.x-endX > e.config.GapFactor*math.Max(f.size, 1) {
			b.WriteByte(' ')
		}
		b.WriteString(f.text)
		if f.x+f.w > endX {
			endX = f.x + f.w
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return model.Record{}, false
	}

	startX := line[0].x
	lineCenter := (startX + endX) / 2

	return model.Record{
		Text:     text,
		Page:     page,
		FontSize: size,
		Font:     font,
		Bold:     isBoldFont(font),
		Italic:   isItalicFont(font),
		Centered: math.Abs(lineCenter-pageWidth/2) < e.config.CenterTolerance,
		X:        startX,
		Y:        pageHeight - line[0].y,
	}, true
}

// isBoldFont reports whether the font name declares a bold weight.
func isBoldFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") || strings.Contains(f, "black") || strings.Contains(f, "heavy")
}

// isItalicFont reports whether the font name declares an italic or oblique
// style.
func isItalicFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "italic") || strings.Contains(f, "oblique")
}
