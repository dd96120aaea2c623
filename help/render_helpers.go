package help

import "strings"

// stripANSI removes ANSI escape codes from s, for computing the
// visual width of a styled string when aligning columns.
func stripANSI(s string) string {
	var result strings.Builder

	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}

		if inEscape {
			if r == 'm' {
				inEscape = false
			}

			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}

// padTo right-pads s with spaces until its visual (ANSI-stripped)
// width reaches width, then adds one more space as a column gutter; a
// string already at least width wide gets just the one space.
func padTo(s string, width int) string {
	visible := len([]rune(stripANSI(s)))
	if visible >= width {
		return s + " "
	}

	return s + strings.Repeat(" ", width-visible+1)
}

func maxWidth(ss []string) int {
	max := 0
	for _, s := range ss {
		if w := len([]rune(stripANSI(s))); w > max {
			max = w
		}
	}

	return max
}
