package grid

import (
	"strings"
	"unicode"
)

// Ellipsis is appended to text shortened to fit a width.
const Ellipsis = "..."

// TruncateText returns the longest prefix of text that fits maxWidth
// together with an ellipsis. Text that already fits is returned unchanged,
// so truncating a truncated string is a no-op.
//
// The search is a binary search over the rune prefix length and relies on
// widths growing monotonically with the prefix. When even the bare
// ellipsis is wider than maxWidth the result is just the ellipsis.
func TruncateText(m Measurer, text string, maxWidth float32) string {
	if text == "" || m.MeasureText(text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.MeasureText(string(runes[:mid])+Ellipsis) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + Ellipsis
}

// WrapText breaks text into at most maxLines lines no wider than maxWidth.
//
// Text is split into segments at every CJK ideograph and around runs of
// whitespace, so ideographs break individually while Latin words stay
// whole. A segment wider than maxWidth on its own occupies a line by
// itself. When text remains after maxLines lines, the last line is
// shortened until it fits with a trailing ellipsis.
func WrapText(m Measurer, text string, maxWidth float32, maxLines int) []string {
	if text == "" || maxLines <= 0 {
		return nil
	}

	segments := splitSegments(text)
	lines := make([]string, 0, maxLines)
	line := ""
	truncated := false

	for i, seg := range segments {
		blank := isBlank(seg)
		if line == "" && blank {
			continue
		}
		candidate := line + seg
		if line == "" || m.MeasureText(candidate) <= maxWidth {
			line = candidate
			continue
		}

		lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
		line = ""
		if len(lines) == maxLines {
			truncated = strings.TrimSpace(strings.Join(segments[i:], "")) != ""
			break
		}
		if !blank {
			line = seg
		}
	}

	if line != "" {
		lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
	}

	if truncated && len(lines) > 0 {
		last := len(lines) - 1
		lines[last] = shortenWithEllipsis(m, lines[last], maxWidth)
	}
	return lines
}

// shortenWithEllipsis drops trailing runes until line plus an ellipsis
// fits maxWidth.
func shortenWithEllipsis(m Measurer, line string, maxWidth float32) string {
	runes := []rune(line)
	for len(runes) > 0 && m.MeasureText(string(runes)+Ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRightFunc(string(runes), unicode.IsSpace) + Ellipsis
}

// MaxWrapLines returns how many wrapped lines fit in a row.
func MaxWrapLines(rowHeight, paddingY, lineHeight float32) int {
	if lineHeight <= 0 {
		return 0
	}
	n := int(floorf((rowHeight - 2*paddingY) / lineHeight))
	if n < 0 {
		return 0
	}
	return n
}

// WrapBlockTop returns the Y of the first line so that n lines are
// vertically centered within a cell.
func WrapBlockTop(cellTop, rowHeight, lineHeight float32, n int) float32 {
	return cellTop + (rowHeight-float32(n)*lineHeight)/2
}

type segmentKind int

const (
	segmentWord segmentKind = iota
	segmentSpace
	segmentCJK
)

// splitSegments splits text at boundaries before and after every CJK
// ideograph and every whitespace run.
func splitSegments(text string) []string {
	var segments []string
	start := 0
	prev := segmentWord

	for i, r := range text {
		kind := segmentWord
		switch {
		case isCJKRune(r):
			kind = segmentCJK
		case unicode.IsSpace(r):
			kind = segmentSpace
		}
		if i > start && (kind != prev || kind == segmentCJK) {
			segments = append(segments, text[start:i])
			start = i
		}
		prev = kind
	}
	if start < len(text) {
		segments = append(segments, text[start:])
	}
	return segments
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isCJKRune returns true if the rune is a CJK character.
func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.In(r, unicode.Bopomofo) ||
		unicode.In(r, unicode.Yi)
}
