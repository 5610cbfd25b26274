package microcomp

import (
	"strings"
)

// isQuote reports whether r can open or close a quoted span
func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

// splitOutsideQuotes splits input on sep wherever sep is not inside a quoted span.
// A span opened with one quote character is only closed by the same character, so
// an apostrophe inside a double-quoted value is plain content. When a quote is never
// closed everything after it stays in the last element.
func splitOutsideQuotes(input string, sep rune) []string {
	parts := []string{}
	var current strings.Builder
	quoteChar := rune(0)

	for _, r := range input {
		switch {
		case quoteChar == 0 && isQuote(r):
			quoteChar = r
			current.WriteRune(r)
		case quoteChar != 0 && r == quoteChar:
			quoteChar = 0
			current.WriteRune(r)
		case quoteChar == 0 && r == sep:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	// The trailing element is kept even when empty: "tag:" -> ["tag", ""]
	return append(parts, current.String())
}

// SplitByColon splits a token on the colons that are outside quoted spans.
//
//	SplitByColon("tag:not:invoice")  // ["tag", "not", "invoice"]
//	SplitByColon(`tag:"a:b"`)        // ["tag", `"a:b"`]
//	SplitByColon("tag:")             // ["tag", ""]
func SplitByColon(input string) []string {
	return splitOutsideQuotes(input, ':')
}

// SplitByComma splits a value list on the commas that are outside quoted spans.
// Items are returned untrimmed and still quoted.
func SplitByComma(input string) []string {
	return splitOutsideQuotes(input, ',')
}

// Unquote trims s and strips one pair of surrounding quotes. An opening quote that
// is never closed is dropped too, so a value still being typed compares cleanly.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	first := rune(s[0])
	if !isQuote(first) {
		return s
	}

	if len(s) >= 2 && rune(s[len(s)-1]) == first {
		return s[1 : len(s)-1]
	}

	if !strings.ContainsRune(s[1:], first) {
		return s[1:]
	}

	return s
}
