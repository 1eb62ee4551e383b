package utils

import (
	"strings"
	"testing"
)

func TestRemoveWords(t *testing.T) {
	pattern := CompileWordPattern([]string{"news", "give me", "from"})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single word", "latest news here", "latest here"},
		{"multi-word entry", "give me sports", "sports"},
		{"case insensitive", "NEWS From london", "london"},
		{"word boundary respected", "newspapers are great", "newspapers are great"},
		{"everything stripped", "give me news from", ""},
		{"no matches", "hello world", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveWords(tt.input, pattern); got != tt.want {
				t.Errorf("RemoveWords(%q) = %q, expected %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello   world  ", "hello world"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.input); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	t.Run("short string untouched", func(t *testing.T) {
		if got := TruncateWithEllipsis("short", 200); got != "short" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("exact length untouched", func(t *testing.T) {
		s := strings.Repeat("a", 200)
		if got := TruncateWithEllipsis(s, 200); got != s {
			t.Errorf("string of exactly n runes should not be truncated")
		}
	})

	t.Run("long string truncated with ellipsis", func(t *testing.T) {
		s := strings.Repeat("a", 201)
		got := TruncateWithEllipsis(s, 200)
		if got != strings.Repeat("a", 200)+"..." {
			t.Errorf("got %d chars, expected 200 + ellipsis", len(got))
		}
	})

	t.Run("multibyte runes counted as characters", func(t *testing.T) {
		s := strings.Repeat("ä", 5)
		got := TruncateWithEllipsis(s, 3)
		if got != "äää..." {
			t.Errorf("got %q", got)
		}
	})
}
