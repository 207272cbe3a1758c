package outline

import (
	"strings"
	"testing"

	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

func sampleRecordsJSON() []byte {
	return []byte(`[
		{"text": "User Guide", "page": 1, "font_size": 24, "font": "Helvetica-Bold", "is_bold": true, "is_center": true, "x": 220, "y": 160},
		{"text": "Installation", "page": 1, "font_size": 16, "font": "Helvetica-Bold", "is_bold": true, "x": 72, "y": 240},
		{"text": "System Checklist", "page": 1, "font_size": 14, "font": "Helvetica-Bold", "is_bold": true, "x": 72, "y": 300},
		{"text": "Configuration", "page": 2, "font_size": 16, "font": "Helvetica-Bold", "is_bold": true, "x": 72, "y": 200}
	]`)
}

func TestFromRecordsJSON(t *testing.T) {
	result, err := FromRecordsJSON(sampleRecordsJSON()).Classify()
	if err != nil {
		t.Fatal(err)
	}
	if result.Error != "" {
		t.Fatalf("unexpected error result: %s", result.Error)
	}
	if result.Title != "User Guide" {
		t.Errorf("title = %q, want %q", result.Title, "User Guide")
	}
	if len(result.Outline) != 3 {
		t.Fatalf("outline = %+v, want 3 entries", result.Outline)
	}
	if result.Outline[0].Text != "Installation" || result.Outline[0].Level != model.LevelH1 {
		t.Errorf("first entry = %+v, want H1 Installation", result.Outline[0])
	}
	if result.Outline[1].Text != "System Checklist" || result.Outline[1].Level != model.LevelH2 {
		t.Errorf("second entry = %+v, want H2 System Checklist", result.Outline[1])
	}
}

func TestFromRecordsJSONInvalid(t *testing.T) {
	result, err := FromRecordsJSON([]byte("not json")).Classify()
	if err != nil {
		t.Fatalf("content-level failures must not surface as errors: %v", err)
	}
	if result.Error != "invalid input data" {
		t.Errorf("error result = %q, want invalid input data", result.Error)
	}
}

func TestFromRecords(t *testing.T) {
	records := []model.Record{
		{Text: "Field Manual", Page: 1, FontSize: 24, Font: "Helvetica-Bold", Bold: true, Centered: true, X: 220, Y: 160},
		{Text: "Safety First", Page: 1, FontSize: 16, Font: "Helvetica-Bold", Bold: true, X: 72, Y: 240},
		{Text: "Basic Handling", Page: 1, FontSize: 14, Font: "Helvetica-Bold", Bold: true, X: 72, Y: 300},
	}

	result, err := FromRecords(records).Classify()
	if err != nil {
		t.Fatal(err)
	}
	if result.Title != "Field Manual" {
		t.Errorf("title = %q, want %q", result.Title, "Field Manual")
	}
}

func TestClassifyWithStubLexicon(t *testing.T) {
	stub := lexicon.Func(func(word string) bool { return false })

	result, err := FromRecordsJSON(sampleRecordsJSON()).WithLexicon(stub).Classify()
	if err != nil {
		t.Fatal(err)
	}
	// The letter-ratio fallback keeps word-like headings even when the
	// lexicon recognizes nothing.
	if result.Title != "User Guide" {
		t.Errorf("title = %q, want %q", result.Title, "User Guide")
	}
}

func TestJSON(t *testing.T) {
	data, err := FromRecordsJSON(sampleRecordsJSON()).JSON()
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	for _, want := range []string{`"title": "User Guide"`, `"level": "H1"`, `"page": 2`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("testdata/does-not-exist.pdf").Classify(); err == nil {
		t.Error("expected an I/O error for a missing file")
	}
}

func TestMust(t *testing.T) {
	result := Must(FromRecordsJSON(sampleRecordsJSON()).Classify())
	if result.Title != "User Guide" {
		t.Errorf("title = %q, want %q", result.Title, "User Guide")
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a missing file")
		}
	}()
	Must(Open("testdata/does-not-exist.pdf").Classify())
}
