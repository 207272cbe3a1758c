// Package model defines the data types shared across the outline pipeline:
// raw line records as produced by an upstream extractor, validated line
// elements, outline levels, outline entries, and the classification result.
//
// # Records and Elements
//
// A [Record] is one visual text line with position, font, and style metadata.
// Records arrive from an extraction collaborator (the extract package, or a
// pre-extracted JSON file) and may carry missing or malformed fields; the
// [NewElement] constructor coerces them into a valid [Element] using
// documented defaults rather than failing.
//
// # Levels
//
// A [Level] tags a heading group through its lifecycle: untagged, title,
// H1 through H6, or excluded. Only H1-H6 appear in the final outline.
//
// # Results
//
// A [Result] is the classification output: a title string and an ordered
// outline of (level, text, page) entries. Classification is total; content
// level failures produce an error-shaped Result via [ErrorResult], never a
// panic or a Go error.
package model
