package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/outline/model"
)

// Title validity limits.
const (
	minTitleLength = 3   // characters, after trimming
	maxTitleLength = 200 // validity ceiling
)

// titleExclusions reject strings that read as something other than a title:
// pure numerics, version strings, dates, table/figure references, dash
// runs, and code-like identifiers. All are applied to the lower-cased text.
var titleExclusions = []*regexp.Regexp{
	regexp.MustCompile(`^[0-9\s\-./]+$`),                     // numbers and separators only
	regexp.MustCompile(`^[a-z]{3,}\s*[0-9]+$`),               // "form123"
	regexp.MustCompile(`^\d+[.\-\s]*\d*$`),                   // pure numeric
	regexp.MustCompile(`^[^\w\s]{3,}$`),                      // special characters only
	regexp.MustCompile(`\b(rev|version|ver|v)\s*[\d.]+\b`),   // version strings
	regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`), // dates
	regexp.MustCompile(`\b[a-z]{2,}-\d+\b`),                  // "abc-123" codes
	regexp.MustCompile(`^(table|figure|chart|graph|image|photo)\s+\d+`),
	regexp.MustCompile(`-{2,}`), // repeated dashes
}

// codeLikePatterns flag identifiers, hashes, and other technical strings.
var codeLikePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[a-zA-Z]+\d+[a-zA-Z]+\d+`),  // interleaved letters/digits
	regexp.MustCompile(`\b[A-Z]{2,}_[A-Z0-9_]+\b`),  // CONSTANT_CASE
	regexp.MustCompile(`\b[a-z]+[A-Z][a-z]*[A-Z]`),  // camelCase
	regexp.MustCompile(`\b\w*[0-9]{3,}\w*\b`),       // 3+ consecutive digits
	regexp.MustCompile(`\b[A-F0-9]{8,}\b`),          // hex-like
}

// commonFunctionWords are always considered recognizable during title
// validation, regardless of length or letter pattern.
var commonFunctionWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "a": true, "an": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "what": true, "which": true,
	"who": true, "when": true, "where": true, "why": true, "how": true,
	"about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "any": true, "as": true, "because": true,
	"before": true, "below": true, "between": true, "both": true,
	"during": true, "each": true, "few": true, "from": true,
	"further": true, "if": true, "into": true, "more": true, "most": true,
	"no": true, "not": true, "only": true, "other": true, "over": true,
	"same": true, "some": true, "such": true, "than": true,
	"through": true, "under": true, "until": true, "up": true,
	"very": true, "while": true, "within": true, "without": true,
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// IsValidTitleText reports whether text passes title validation: length
// 3-200, at least 40% letters, at most 50% digits, none of the exclusion
// patterns, readable words (at least 60% recognizable when there are two or
// more), and no code-like identifier shapes.
func IsValidTitleText(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	runes := []rune(text)
	if len(runes) < minTitleLength || len(runes) > maxTitleLength {
		return false
	}

	letters, digits := 0, 0
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	if float64(letters) < float64(len(runes))*0.4 {
		return false
	}
	if float64(digits) > float64(len(runes))*0.5 {
		return false
	}

	lower := strings.ToLower(text)
	for _, p := range titleExclusions {
		if p.MatchString(lower) {
			return false
		}
	}

	words := wordPattern.FindAllString(text, -1)
	if len(words) == 0 {
		return false
	}
	if len(words) == 1 && len(words[0]) < 4 {
		return false
	}

	if len(words) > 1 {
		recognizable := 0
		for _, w := range words {
			if commonFunctionWords[strings.ToLower(w)] || len(w) >= 3 || hasPlausibleLetterPattern(w) {
				recognizable++
			}
		}
		if float64(recognizable)/float64(len(words)) < 0.6 {
			return false
		}
	}

	for _, p := range codeLikePatterns {
		if p.MatchString(text) {
			return false
		}
	}

	return true
}

// hasPlausibleLetterPattern reports whether a word's vowel/consonant mix
// looks like English. Words of four letters or more need at least one of
// each; shorter words always pass.
func hasPlausibleLetterPattern(word string) bool {
	runes := []rune(word)
	if len(runes) < 4 {
		return true
	}

	hasVowel, hasConsonant := false, false
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if strings.ContainsRune("aeiouAEIOU", r) {
			hasVowel = true
		} else {
			hasConsonant = true
		}
	}
	return hasVowel && hasConsonant
}

// selectTitle picks the best-scoring group whose reconstructed text passes
// title validation, appears within the first maxPage pages, and whose
// reconstructed text is at most maxLen runes. The winning group is tagged
// model.LevelTitle. Groups must already be in descending score order.
// Returns the title text and the winning group, or "" and nil when no
// group qualifies (at most one title per document).
func selectTitle(groups []*Group, maxPage, maxLen int) (string, *Group) {
	for _, g := range groups {
		if len(g.Elements) == 0 {
			continue
		}

		title := ReconstructText(g.Elements)
		if title == "" {
			continue
		}
		if !IsValidTitleText(title) {
			continue
		}
		if g.EarliestPage() > maxPage {
			continue
		}
		if len([]rune(title)) > maxLen {
			continue
		}

		g.Level = model.LevelTitle
		return title, g
	}
	return "", nil
}
