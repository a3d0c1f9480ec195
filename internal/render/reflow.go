package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// MaxLineWidth caps the width of wrapped lines regardless of the terminal width.
const MaxLineWidth = 80

func lineLimit(terminalWidth int) int {
	if terminalWidth <= 0 || terminalWidth > MaxLineWidth {
		return MaxLineWidth
	}
	return terminalWidth
}

// Wrap breaks line so that no row is wider than min(terminalWidth, MaxLineWidth) display
// columns. Every continuation row starts with indent spaces. Rows are cut on rune
// boundaries only, and removing every inserted "\n" followed by the indent gives back line.
// Existing line breaks are kept, so wrapping a wrapped line again with the same
// arguments changes nothing.
func Wrap(line string, indent int, terminalWidth int) string {
	limit := lineLimit(terminalWidth)
	segments := strings.Split(line, "\n")
	for i, segment := range segments {
		segments[i] = wrapSegment(segment, indent, limit)
	}
	return strings.Join(segments, "\n")
}

func wrapSegment(segment string, indent int, limit int) string {
	available := max(limit-indent, 1)
	separator := "\n" + strings.Repeat(" ", indent)

	var builder strings.Builder
	rest := segment
	budget := limit
	for ansi.PrintableRuneWidth(rest) > budget {
		cut := cutOffset(rest, available)
		if cut == len(rest) {
			break
		}
		builder.WriteString(rest[:cut])
		builder.WriteString(separator)
		rest = rest[cut:]
		budget = available
	}
	builder.WriteString(rest)
	return builder.String()
}

// cutOffset returns the byte length of the longest prefix of s that is at most width
// columns wide. The prefix holds at least one printable rune, and escape sequences
// take no columns and are never split. Invalid bytes count as one column each.
func cutOffset(s string, width int) int {
	used := 0
	printed := false
	inEscape := false
	offset := 0
	for offset < len(s) {
		r, size := utf8.DecodeRuneInString(s[offset:])
		switch {
		case r == ansi.Marker:
			inEscape = true
		case inEscape:
			inEscape = !ansi.IsTerminator(r)
		default:
			runeWidth := runewidth.RuneWidth(r)
			if printed && used+runeWidth > width {
				return offset
			}
			used += runeWidth
			printed = true
		}
		offset += size
	}
	return offset
}
