package model

import (
	"math"
	"strings"
	"testing"
)

func TestParseRecords(t *testing.T) {
	data := []byte(`[
		{"text": "Title", "page": 1, "font_size": 24.0, "font": "Helvetica", "is_bold": true, "x": 100, "y": 50},
		{"text": "Body", "page": "2", "font_size": "12.5", "is_bold": 1},
		"not an object",
		{"text": "Legacy", "page": 3, "font_size": 10, "x0": 72.5, "y0": 700}
	]`)

	records, err := ParseRecords(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4 (skipped entries keep their index)", len(records))
	}

	if records[0].Text != "Title" || !records[0].Bold || records[0].FontSize != 24 {
		t.Errorf("record 0 = %+v", records[0])
	}
	if records[1].Page != 2 || records[1].FontSize != 12.5 || !records[1].Bold {
		t.Errorf("record 1 not coerced: %+v", records[1])
	}
	if records[2].Text != "" {
		t.Errorf("record 2 = %+v, want zero value for a non-object entry", records[2])
	}
	if records[3].X != 72.5 || records[3].Y != 700 {
		t.Errorf("record 3 = %+v, want legacy x0/y0 fallback", records[3])
	}
}

func TestParseRecordsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"empty array", "[]"},
		{"object not array", `{"text": "Title"}`},
		{"no objects", `["a", "b", 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecords([]byte(tt.data)); err != ErrInvalidInput {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestNewElement(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		e, ok := NewElement(Record{Text: "  Heading  ", Page: 0, FontSize: -4}, 7)
		if !ok {
			t.Fatal("expected a valid element")
		}
		if e.Text != "Heading" {
			t.Errorf("text = %q, want trimmed", e.Text)
		}
		if e.Page != DefaultPage || e.FontSize != DefaultFontSize || e.Font != DefaultFont {
			t.Errorf("defaults not applied: %+v", e)
		}
		if e.Index != 7 {
			t.Errorf("index = %d, want 7", e.Index)
		}
	})

	t.Run("empty text rejected", func(t *testing.T) {
		if _, ok := NewElement(Record{Text: "   "}, 0); ok {
			t.Error("whitespace-only text should be rejected")
		}
	})

	t.Run("non-finite values collapse to zero", func(t *testing.T) {
		e, ok := NewElement(Record{Text: "Heading", FontSize: 12, X: math.NaN(), SpaceAbove: math.Inf(1)}, 0)
		if !ok {
			t.Fatal("expected a valid element")
		}
		if e.X != 0 || e.SpaceAbove != 0 {
			t.Errorf("non-finite fields not zeroed: %+v", e)
		}
	})
}

func TestFontFamily(t *testing.T) {
	tests := []struct {
		font string
		want string
	}{
		{"Times-Bold", "timesbold"},
		{"times bold", "timesbold"},
		{"HELVETICA", "helvetica"},
	}

	for _, tt := range tests {
		e := Element{Font: tt.font}
		if got := e.FontFamily(); got != tt.want {
			t.Errorf("FontFamily(%q) = %q, want %q", tt.font, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTitle, "TITLE"},
		{LevelH1, "H1"},
		{LevelH6, "H6"},
		{LevelExcluded, "EXCLUDED"},
		{LevelNone, ""},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestHeadingLevelClamps(t *testing.T) {
	if got := HeadingLevel(9); got != LevelH6 {
		t.Errorf("HeadingLevel(9) = %v, want H6", got)
	}
	if got := HeadingLevel(0); got != LevelNone {
		t.Errorf("HeadingLevel(0) = %v, want LevelNone", got)
	}
}

func TestResultMarshalIndent(t *testing.T) {
	r := NewResult()
	r.Title = "A & B"
	r.Outline = append(r.Outline, Entry{Level: LevelH1, Text: "Intro", Page: 1})

	data, err := r.MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	if !strings.Contains(out, `"level": "H1"`) {
		t.Errorf("output missing level string:\n%s", out)
	}
	if !strings.Contains(out, `"A & B"`) {
		t.Errorf("output missing literal title:\n%s", out)
	}
	if strings.Contains(out, `&`) {
		t.Errorf("output HTML-escaped:\n%s", out)
	}
}

func TestErrorResultShape(t *testing.T) {
	r := ErrorResult("invalid input data")

	data, err := r.MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	if !strings.Contains(out, `"outline": []`) {
		t.Errorf("error result must keep an empty outline array:\n%s", out)
	}
	if !strings.Contains(out, `"error": "invalid input data"`) {
		t.Errorf("error field missing:\n%s", out)
	}
}
