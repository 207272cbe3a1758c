package lexicon

import "testing"

func TestBasicKnown(t *testing.T) {
	lx := NewBasic()

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"INTRODUCTION", true},
		{"zzxqv", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := lx.Known(tt.word); got != tt.want {
			t.Errorf("Known(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	lx := Func(func(word string) bool { return word == "special" })

	if !lx.Known("special") {
		t.Error("Func adapter should delegate to the wrapped function")
	}
	if lx.Known("other") {
		t.Error("Func adapter accepted an unknown word")
	}
}
