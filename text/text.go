package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate truncates s to maxWidth, appending "…" if truncated.
// ANSI-aware: escape codes are not counted toward visual width and
// will not be broken by the truncation.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Center pads s on both sides with spaces so that it occupies exactly
// width columns, truncating first if it is too wide. The extra column
// of an odd split goes to the right.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	w := ansi.StringWidth(s)
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// CenterBlock centers every line of a multi-line block within width columns.
func CenterBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = Center(line, width)
	}
	return strings.Join(lines, "\n")
}
