package classify

import (
	"testing"

	"github.com/tsawler/outline/model"
)

func TestCombineConsecutive(t *testing.T) {
	t.Run("adjacent lines merge", func(t *testing.T) {
		elements := []model.Element{
			{Text: "Chapter One: Getting", Page: 1, FontSize: 14, Y: 100, Index: 0},
			{Text: "Started", Page: 1, FontSize: 14, X: 80, Y: 101.5, Index: 1},
		}

		got := combineConsecutive(elements)
		if len(got) != 1 {
			t.Fatalf("got %d elements, want 1", len(got))
		}
		if got[0].Text != "Chapter One: Getting Started" {
			t.Errorf("merged text = %q", got[0].Text)
		}
		if got[0].Index != 0 {
			t.Errorf("merged index = %d, want 0", got[0].Index)
		}
	})

	t.Run("index gap prevents merge", func(t *testing.T) {
		elements := []model.Element{
			{Text: "First Heading", Page: 1, FontSize: 14, Y: 100, Index: 0},
			{Text: "Second Heading", Page: 1, FontSize: 14, Y: 101, Index: 4},
		}

		if got := combineConsecutive(elements); len(got) != 2 {
			t.Errorf("got %d elements, want 2", len(got))
		}
	})

	t.Run("page break prevents merge", func(t *testing.T) {
		elements := []model.Element{
			{Text: "First Heading", Page: 1, FontSize: 14, Y: 100, Index: 0},
			{Text: "Second Heading", Page: 2, FontSize: 14, Y: 100, Index: 1},
		}

		if got := combineConsecutive(elements); len(got) != 2 {
			t.Errorf("got %d elements, want 2", len(got))
		}
	})

	t.Run("vertical distance prevents merge", func(t *testing.T) {
		elements := []model.Element{
			{Text: "First Heading", Page: 1, FontSize: 14, Y: 100, Index: 0},
			{Text: "Second Heading", Page: 1, FontSize: 14, Y: 140, Index: 1},
		}

		if got := combineConsecutive(elements); len(got) != 2 {
			t.Errorf("got %d elements, want 2", len(got))
		}
	})
}

func TestRemoveOverlapping(t *testing.T) {
	elements := []model.Element{
		{Text: "Annual", X: 100, Y: 200, Index: 0},
		{Text: "Annual Report", X: 101, Y: 200.5, Index: 1},
	}

	got := removeOverlapping(elements)
	if len(got) != 1 {
		t.Fatalf("got %d elements, want 1", len(got))
	}
	if got[0].Text != "Annual Report" {
		t.Errorf("kept %q, want the longer fragment", got[0].Text)
	}
}

func TestRemoveOverlappingKeepsDistinct(t *testing.T) {
	elements := []model.Element{
		{Text: "Annual", X: 100, Y: 200, Index: 0},
		{Text: "Report", X: 180, Y: 200, Index: 1},
	}

	if got := removeOverlapping(elements); len(got) != 2 {
		t.Errorf("got %d elements, want 2", len(got))
	}
}

func TestMergeTwoFragments(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"suffix prefix overlap", "Introduction to Go", "to Go Programming", "Introduction to Go Programming"},
		{"containment", "Report", "Annual Report Summary", "Annual Report Summary"},
		{"no overlap returns first", "Alpha Section", "Omega Part", "Alpha Section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeTwoFragments(tt.a, tt.b); got != tt.want {
				t.Errorf("mergeTwoFragments(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMergeFragmentsEqualLengthTieBreak(t *testing.T) {
	// Equal-length fragments with no overlap keep first-encountered order.
	got := mergeFragments([]string{"Alpha Side", "Omega Part"})
	if got != "Alpha Side Omega Part" {
		t.Errorf("merged = %q, want first-encountered fragment leading", got)
	}
}

func TestReconstructTextDropsDuplicates(t *testing.T) {
	elements := []model.Element{
		{Text: "Annual Report", X: 100, Y: 200, Index: 0},
		{Text: "Annual Report", X: 100, Y: 200, Index: 1},
	}

	if got := ReconstructText(elements); got != "Annual Report" {
		t.Errorf("ReconstructText = %q, want single copy", got)
	}
}

func TestAssembleByPosition(t *testing.T) {
	elements := []model.Element{
		{Text: "World", X: 200, Y: 100},
		{Text: "Hello", X: 100, Y: 100},
		{Text: "Below", X: 100, Y: 130},
	}

	if got := assembleByPosition(elements); got != "Hello World Below" {
		t.Errorf("assembleByPosition = %q, want %q", got, "Hello World Below")
	}
}

func TestConcatenateUnique(t *testing.T) {
	elements := []model.Element{
		{Text: "Beta", Index: 1},
		{Text: "Alpha", Index: 0},
		{Text: "Beta", Index: 2},
	}

	if got := concatenateUnique(elements); got != "Alpha Beta" {
		t.Errorf("concatenateUnique = %q, want %q", got, "Alpha Beta")
	}
}
