// Package textutil provides unicode-aware helpers for fixed-width widget rows.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis is appended when a string is truncated.
const Ellipsis = "…"

// Width returns the number of terminal columns a plain string occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, appending the ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	avail := maxWidth - runewidth.StringWidth(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}

	var b []rune
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b = append(b, r)
		w += rw
	}
	return string(b) + Ellipsis
}

// PadRight extends s with spaces to exactly targetWidth columns, truncating
// first if it is too wide. Widget rows are padded so an entire row is a mouse
// target, not just its text.
func PadRight(s string, targetWidth int) string {
	s = Truncate(s, targetWidth)
	if w := runewidth.StringWidth(s); w < targetWidth {
		s += runewidth.FillRight("", targetWidth-w)
	}
	return s
}
