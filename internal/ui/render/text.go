// Package render provides width-aware text helpers for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize strips control characters and invalid UTF-8 from a string.
// File names are arbitrary bytes on most filesystems; a stray escape
// sequence in a name would otherwise corrupt the whole frame.
func Sanitize(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += max(size, 1)
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		if r == ' ' {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate shortens a string to maxWidth display cells, appending an
// ellipsis when it does not fit. Wide runes (CJK, emoji) count as two
// cells.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad right-fills a string with spaces up to width display cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns a string of exactly width display cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row lays out left- and right-aligned content in exactly width cells,
// with at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// EmptyLine returns width spaces.
func EmptyLine(width int) string {
	return strings.Repeat(" ", width)
}
