package classify

import (
	"testing"

	"github.com/tsawler/outline/model"
)

func TestScoreIncreasesWithFontSize(t *testing.T) {
	group := func(size float64) *Group {
		return &Group{
			FontSize: size,
			Bold:     true,
			Centered: true,
			Elements: []model.Element{{Text: "Heading Text", FontSize: size}},
		}
	}

	prev := group(10).Score()
	for _, size := range []float64{10.5, 12, 14, 18, 24, 36} {
		cur := group(size).Score()
		if cur <= prev {
			t.Errorf("score at %gpt = %g, want above %g", size, cur, prev)
		}
		prev = cur
	}
}

func TestScoreStyleBonuses(t *testing.T) {
	base := &Group{FontSize: 12, Elements: []model.Element{{Text: "One Two", FontSize: 12}}}
	bold := &Group{FontSize: 12, Bold: true, Elements: []model.Element{{Text: "One Two", FontSize: 12}}}

	if diff := bold.Score() - base.Score(); diff != boldBonus {
		t.Errorf("bold bonus = %g, want %d", diff, boldBonus)
	}
}

func TestScoreSpacingBonuses(t *testing.T) {
	plain := &Group{FontSize: 12, Elements: []model.Element{
		{Text: "Heading", FontSize: 12},
	}}
	spaced := &Group{FontSize: 12, Elements: []model.Element{
		{Text: "Heading", FontSize: 12, SpaceAbove: 14, SpaceBelow: 12},
	}}

	want := float64(spaceAboveBonus + spaceBelowBonus)
	if diff := spaced.Score() - plain.Score(); diff != want {
		t.Errorf("spacing bonus = %g, want %g", diff, want)
	}
}

func TestWordCountBonus(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{0, 0}, {1, 20}, {2, 15}, {3, 12}, {4, 10},
		{5, 8}, {6, 5}, {7, 3}, {8, 1}, {9, 0}, {20, 0},
	}

	for _, tt := range tests {
		if got := wordCountBonus(tt.words); got != tt.want {
			t.Errorf("wordCountBonus(%d) = %g, want %g", tt.words, got, tt.want)
		}
	}
}

func TestRankGroups(t *testing.T) {
	small := &Group{FontSize: 12, Elements: []model.Element{{Text: "Body", FontSize: 12}}}
	large := &Group{FontSize: 24, Elements: []model.Element{{Text: "Title", FontSize: 24}}}
	medium := &Group{FontSize: 16, Elements: []model.Element{{Text: "Section", FontSize: 16}}}

	ranked := rankGroups([]*Group{small, large, medium})

	if ranked[0] != large || ranked[1] != medium || ranked[2] != small {
		t.Errorf("rank order = [%g, %g, %g], want [24, 16, 12]",
			ranked[0].FontSize, ranked[1].FontSize, ranked[2].FontSize)
	}
}

func TestRankGroupsStable(t *testing.T) {
	first := &Group{FontSize: 12, Elements: []model.Element{{Text: "Alpha", FontSize: 12}}}
	second := &Group{FontSize: 12, Elements: []model.Element{{Text: "Bravo", FontSize: 12}}}

	ranked := rankGroups([]*Group{first, second})
	if ranked[0] != first {
		t.Error("equal-scoring groups should keep creation order")
	}
}
