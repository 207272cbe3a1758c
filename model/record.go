package model

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// Record is one raw line record from an upstream text extractor. It mirrors
// the producer's wire format: one record per visual line, in reading order.
// Fields may be missing or malformed; coercion happens in [NewElement].
type Record struct {
	// Text is the line's text content.
	Text string `json:"text"`

	// Page is the 1-based page number the line appears on.
	Page int `json:"page"`

	// FontSize is the line's font size in points.
	FontSize float64 `json:"font_size"`

	// Font is the font name as reported by the producer.
	Font string `json:"font"`

	// Style flags.
	Bold       bool `json:"is_bold"`
	Italic     bool `json:"is_italic"`
	Underlined bool `json:"is_underlined"`
	Centered   bool `json:"is_center"`

	// SpaceAbove and SpaceBelow are the vertical gaps to the neighbouring
	// lines, in points. May be negative for overlapping lines.
	SpaceAbove float64 `json:"space_above"`
	SpaceBelow float64 `json:"space_below"`

	// X and Y are page coordinates with the origin at the top-left.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// UnmarshalJSON decodes a record leniently: wrongly-typed fields are coerced
// where a sensible interpretation exists (numeric strings, 0/1 booleans) and
// dropped to the zero value otherwise. The legacy x0/y0 coordinate keys are
// accepted when x/y are absent.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Text = coerceString(raw["text"])
	r.Page = int(coerceFloat(raw["page"], 0))
	r.FontSize = coerceFloat(raw["font_size"], 0)
	r.Font = coerceString(raw["font"])
	r.Bold = coerceBool(raw["is_bold"])
	r.Italic = coerceBool(raw["is_italic"])
	r.Underlined = coerceBool(raw["is_underlined"])
	r.Centered = coerceBool(raw["is_center"])
	r.SpaceAbove = coerceFloat(raw["space_above"], 0)
	r.SpaceBelow = coerceFloat(raw["space_below"], 0)

	r.X = coerceFloat(raw["x"], math.NaN())
	if math.IsNaN(r.X) {
		r.X = coerceFloat(raw["x0"], 0)
	}
	r.Y = coerceFloat(raw["y"], math.NaN())
	if math.IsNaN(r.Y) {
		r.Y = coerceFloat(raw["y0"], 0)
	}

	return nil
}

// ErrInvalidInput is returned by [ParseRecords] when the payload is not a
// non-empty JSON array containing at least one object.
var ErrInvalidInput = errors.New("invalid input data")

// ParseRecords decodes a JSON array of line records. Array entries that are
// not objects are skipped; an empty array, or one with no object entries at
// all, is an error. Skipped entries still consume an index so that the
// surviving records keep their document-order positions.
func ParseRecords(data []byte) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidInput
	}
	if len(raw) == 0 {
		return nil, ErrInvalidInput
	}

	records := make([]Record, len(raw))
	objects := 0
	for i, item := range raw {
		var rec Record
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		records[i] = rec
		objects++
	}
	if objects == 0 {
		return nil, ErrInvalidInput
	}

	return records, nil
}

// coerceString returns v as a string, or "" if it is not one.
func coerceString(v any) string {
	s, _ := v.(string)
	return s
}

// coerceFloat returns v as a float64, accepting JSON numbers, numeric
// strings, and booleans (1/0). Anything else yields def.
func coerceFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	case bool:
		if n {
			return 1
		}
		return 0
	}
	return def
}

// coerceBool returns v as a bool, accepting JSON booleans, non-zero numbers,
// and the strings "true"/"false".
func coerceBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	return false
}
