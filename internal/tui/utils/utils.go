// Package utils provides shared utility functions for the TUI.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to a given width and adds an ellipsis if truncated.
// It handles wide characters correctly using runewidth.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width, "…")
}

// Center pads s on both sides to width display cells. Wider strings are
// truncated.
func Center(s string, width int) string {
	s = TruncateString(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}

// PadLeft right-aligns s within width display cells.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(TruncateString(s, width), width)
}
