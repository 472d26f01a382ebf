package util

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// StripANSI removes CSI escape sequences.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleLen returns the display width of s, ignoring ANSI codes.
func VisibleLen(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// Truncate cuts plain text to width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// TruncateLeft keeps the rightmost width cells of plain text, which is the
// end a calculator reader cares about.
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	w := 1 // room for the marker
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return "…" + string(runes[i:])
}
