package classify

import (
	"testing"

	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

func TestIsHeadingText(t *testing.T) {
	lx := lexicon.NewBasic()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"numbered heading", "1. Introduction", true},
		{"too short", "ab", false},
		{"digits only", "12345", false},
		{"acronym", "RFP", true},
		{"lowercase start", "lowercase start", false},
		{"capitalized words", "Implementation Notes", true},
		{"doubled dashes", "Chapter -- Overview", false},
		{"dot leader", "Contents .... 5", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"symbols only", "$$ %%", false},
		{"digit led keeps letters", "3 Methods", true},
		{"punctuation wrapped word", "(Appendix)", true},
		{"mixed letters and digits", "Q3 Results", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeadingText(tt.text, lx); got != tt.want {
				t.Errorf("IsHeadingText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsHeadingTextNilLexicon(t *testing.T) {
	// Without a lexicon the letter-ratio fallback still accepts word-like
	// text.
	if !IsHeadingText("Overview", nil) {
		t.Error("IsHeadingText should accept plain words without a lexicon")
	}
}

func TestFilterDominantSizes(t *testing.T) {
	sized := func(size float64, count int) []model.Element {
		var out []model.Element
		for i := 0; i < count; i++ {
			out = append(out, model.Element{Text: "Text", FontSize: size})
		}
		return out
	}

	t.Run("few sizes kept whole", func(t *testing.T) {
		var elements []model.Element
		elements = append(elements, sized(24, 1)...)
		elements = append(elements, sized(16, 2)...)
		elements = append(elements, sized(12, 20)...)

		got := filterDominantSizes(elements)
		if len(got) != len(elements) {
			t.Errorf("got %d elements, want all %d", len(got), len(elements))
		}
	})

	t.Run("dominant size excluded", func(t *testing.T) {
		var elements []model.Element
		elements = append(elements, sized(24, 1)...)
		elements = append(elements, sized(18, 1)...)
		elements = append(elements, sized(16, 1)...)
		elements = append(elements, sized(12, 10)...)

		got := filterDominantSizes(elements)
		if len(got) != 3 {
			t.Fatalf("got %d elements, want 3", len(got))
		}
		for _, e := range got {
			if e.FontSize == 12 {
				t.Errorf("dominant 12pt element survived the filter")
			}
		}
	})
}

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  The   QUICK  brown ", "the quick brown"},
		{"Already normal", "already normal"},
		{"", ""},
		{"\tTabs\nand newlines\t", "tabs and newlines"},
	}

	for _, tt := range tests {
		if got := normalizeHeading(tt.in); got != tt.want {
			t.Errorf("normalizeHeading(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
