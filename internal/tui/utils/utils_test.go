package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"April 2024", 20, "April 2024"},
		{"September 2024", 6, "Septe…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestCenter_WideRunes(t *testing.T) {
	got := Center("2024년 4월", 20)
	if w := runewidth.StringWidth(got); w != 20 {
		t.Errorf("expected width 20, got %d (%q)", w, got)
	}
	if got := Center("Sun", 5); got != " Sun " {
		t.Errorf("expected %q, got %q", " Sun ", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("expected %q, got %q", "ab  ", got)
	}
}
