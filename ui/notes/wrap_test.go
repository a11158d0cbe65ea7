package notes

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"word boundary", "hello world", 5, "hello\nworld"},
		{"long word is broken", "abcdefghij", 4, "abcd\nefgh\nij"},
		{"keeps newlines", "one\ntwo", 10, "one\ntwo"},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.text, tt.width); got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, officia excepteur ex fugiat reprehenderit enim labore culpa sint ad nisi Lorem pariatur mollit ex esse exercitation amet."

	for width := 1; width <= 40; width++ {
		for _, line := range strings.Split(Wrap(text, width), "\n") {
			if ansi.PrintableRuneWidth(line) > width {
				t.Fatalf("line %q is wider than %d", line, width)
			}
		}
	}
}

func TestLineCount(t *testing.T) {
	if got := LineCount("", 10); got != 1 {
		t.Errorf("Expected empty text to take 1 line, got %d", got)
	}

	if got := LineCount("hello world", 5); got != 2 {
		t.Errorf("Expected 2 lines, got %d", got)
	}

	if got := LineCount("hello", 0); got != 5 {
		t.Errorf("Expected width 0 to behave like width 1, got %d lines", got)
	}
}

func TestWrapExpandsTabs(t *testing.T) {
	if got := Wrap("a\tb", 10); got != "a    b" {
		t.Errorf("Expected tab to become four spaces, got %q", got)
	}

	// counting the tab as one cell would fit "alpha\tbeta" on one line and
	// then split "beta" when the tab is expanded
	got := Wrap("alpha\tbeta gamma", 10)
	for _, word := range []string{"alpha", "beta", "gamma"} {
		found := false
		for _, line := range strings.Split(got, "\n") {
			if strings.Contains(line, word) {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected %q to stay on one line, got %q", word, got)
		}
	}
	for _, line := range strings.Split(got, "\n") {
		if ansi.PrintableRuneWidth(line) > 10 {
			t.Errorf("line %q is wider than 10", line)
		}
	}
}
