// Package lexicon provides the word-recognition capability used by the
// classification pipeline's text-quality heuristics.
//
// The pipeline only ever asks one question of a lexicon: does this token
// read as a known word. The [Lexicon] interface keeps the core testable
// without a live dictionary; tests supply a stub via [Func].
package lexicon

import "strings"

// Lexicon answers whether a token reads as a known word.
type Lexicon interface {
	// Known reports whether word is recognized. Implementations should
	// treat the check as case-insensitive.
	Known(word string) bool
}

// Func adapts a plain function to the Lexicon interface.
//
//	stub := lexicon.Func(func(w string) bool { return w == "report" })
type Func func(word string) bool

// Known calls f.
func (f Func) Known(word string) bool { return f(word) }

// Basic is an embedded English lexicon backed by a fixed word list of common
// English vocabulary. It is deliberately small: the quality filter only needs
// to tell plausible heading words from extraction garbage, not to spell-check.
type Basic struct {
	words map[string]struct{}
}

// NewBasic returns a lexicon over the embedded word list.
func NewBasic() *Basic {
	b := &Basic{words: make(map[string]struct{}, 1024)}
	for _, w := range strings.Fields(basicWords) {
		b.words[w] = struct{}{}
	}
	return b
}

// Known reports whether word is in the embedded list, ignoring case.
func (b *Basic) Known(word string) bool {
	if word == "" {
		return false
	}
	_, ok := b.words[strings.ToLower(word)]
	return ok
}
