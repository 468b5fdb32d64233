package grid

import (
	"github.com/mattn/go-runewidth"
)

// Truncate shortens a string to maxWidth display cells with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads a string with spaces to width display cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft left-pads a string with spaces to width display cells
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// StringWidth returns the display width of a string in cells
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
