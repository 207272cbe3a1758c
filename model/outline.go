package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Level is the ordinal tag assigned to a heading group. Every group starts
// at LevelNone, at most one group becomes LevelTitle, and all remaining
// groups end at one of H1-H6 or LevelExcluded.
type Level int

const (
	LevelNone Level = iota
	LevelTitle
	LevelH1
	LevelH2
	LevelH3
	LevelH4
	LevelH5
	LevelH6
	LevelExcluded
)

// HeadingLevel returns the level for a 1-based heading rank, clamped to H6.
// Ranks below 1 return LevelNone.
func HeadingLevel(rank int) Level {
	if rank < 1 {
		return LevelNone
	}
	if rank > 6 {
		rank = 6
	}
	return LevelH1 + Level(rank-1)
}

// IsHeading reports whether the level is one of H1-H6.
func (l Level) IsHeading() bool {
	return l >= LevelH1 && l <= LevelH6
}

// Rank returns the 1-based heading rank for H1-H6, and 0 otherwise.
func (l Level) Rank() int {
	if !l.IsHeading() {
		return 0
	}
	return int(l-LevelH1) + 1
}

// String returns the wire representation of the level ("H1".."H6", "TITLE",
// "EXCLUDED", or "" for an untagged level).
func (l Level) String() string {
	switch {
	case l == LevelTitle:
		return "TITLE"
	case l == LevelExcluded:
		return "EXCLUDED"
	case l.IsHeading():
		return fmt.Sprintf("H%d", l.Rank())
	default:
		return ""
	}
}

// MarshalJSON encodes the level as its wire string.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its wire string. Unknown strings decode
// to LevelNone.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "TITLE":
		*l = LevelTitle
	case "EXCLUDED":
		*l = LevelExcluded
	case "H1", "H2", "H3", "H4", "H5", "H6":
		*l = HeadingLevel(int(s[1] - '0'))
	default:
		*l = LevelNone
	}
	return nil
}

// Entry is one outline entry: a heading level, the heading text, and the
// page it appears on.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the output of one classification run.
type Result struct {
	// Title is the document title, or "" when none was identified.
	Title string `json:"title"`

	// Outline is the document outline in reading order. Never nil.
	Outline []Entry `json:"outline"`

	// Error describes an unrecoverable content-level failure. Empty on
	// success. A Result with Error set always has an empty title and
	// outline.
	Error string `json:"error,omitempty"`
}

// NewResult returns an empty successful result with a non-nil outline.
func NewResult() Result {
	return Result{Outline: []Entry{}}
}

// ErrorResult returns the standardized error-shaped result.
func ErrorResult(msg string) Result {
	return Result{Outline: []Entry{}, Error: msg}
}

// MarshalIndent encodes the result as indented UTF-8 JSON without HTML
// escaping, suitable for writing alongside the source document.
func (r Result) MarshalIndent() ([]byte, error) {
	if r.Outline == nil {
		r.Outline = []Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
