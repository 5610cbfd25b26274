package microcomp

import (
	"strings"
	"unicode"
)

// segment is the byte range of one token inside a search line
type segment struct {
	start, end int
}

// segmentKeywords start a new token even right after a comma
var segmentKeywords = []string{"tag:", "tags:", "cat:", "category:", "cf:"}

// startsWithKeyword reports whether s begins with a token keyword, ignoring case
func startsWithKeyword(s string) bool {
	for _, kw := range segmentKeywords {
		if len(s) >= len(kw) && strings.EqualFold(s[:len(kw)], kw) {
			return true
		}
	}
	return false
}

// scanSegments finds the token segments of a line. Segments are separated by
// whitespace outside quotes, except whitespace that follows a comma, which keeps
// "tag:invoice, receipt" together as one value list. A word after such a comma
// that starts with a keyword ("tag:a, cat:b") still begins a new segment.
func scanSegments(line string) []segment {
	var segments []segment
	quoteChar := rune(0)
	start := -1
	gap := -1
	last := rune(0)

	for i, r := range line {
		if quoteChar == 0 && unicode.IsSpace(r) {
			if start >= 0 && last != ',' {
				segments = append(segments, segment{start: start, end: i})
				start = -1
			} else if start >= 0 && gap < 0 {
				gap = i
			}
			continue
		}

		if gap >= 0 {
			if startsWithKeyword(line[i:]) {
				segments = append(segments, segment{start: start, end: gap})
				start = -1
			}
			gap = -1
		}

		if start < 0 {
			start = i
		}

		switch {
		case quoteChar != 0 && r == quoteChar:
			quoteChar = 0
		case quoteChar == 0 && isQuote(r):
			quoteChar = r
		}

		if !unicode.IsSpace(r) {
			last = r
		}
	}

	if start >= 0 {
		segments = append(segments, segment{start: start, end: len(line)})
	}

	return segments
}

// SplitSegments splits a search line into the segments that are parsed as tokens
func SplitSegments(line string) []string {
	segments := scanSegments(line)
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, line[s.start:s.end])
	}
	return parts
}

// CurrentSegment splits line into the segment still being typed and everything
// before it. The segment is empty when the line ends with separating whitespace.
//
//	CurrentSegment("invoice tag:bl") // "invoice ", "tag:bl"
//	CurrentSegment("invoice ")       // "invoice ", ""
func CurrentSegment(line string) (prefix, current string) {
	segments := scanSegments(line)
	if len(segments) == 0 {
		return line, ""
	}

	last := segments[len(segments)-1]
	if last.end < len(line) {
		return line, ""
	}

	return line[:last.start], line[last.start:]
}
