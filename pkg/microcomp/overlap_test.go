package microcomp

import (
	"strings"
	"testing"
)

func TestFindLongestMatchingIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		target   string
		expected int
	}{
		{"repeated pattern prefers longest overlap", "abcabc", "abc", 3},
		{"single character overlap", "some t", "text", 5},
		{"two character overlap", "input value with ta", "tags", 17},
		{"no overlap", "some tag:", "invoice", -1},
		{"disjoint strings", "abc", "xyz", -1},
		{"identical strings", "abc", "abc", 0},
		{"target shorter than overlap candidate", "aaaa", "aa", 2},
		{"input shorter than target", "ta", "tags", 0},
		{"empty input", "", "abc", -1},
		{"empty target", "abc", "", -1},
		{"overlap inside target only", "xab", "abab", 1},
		{"multibyte runes", "café", "éclair", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindLongestMatchingIndex(tt.input, tt.target); got != tt.expected {
				t.Errorf("FindLongestMatchingIndex(%q, %q) = %d, want %d", tt.input, tt.target, got, tt.expected)
			}
		})
	}
}

// bruteForceOverlap checks every k from 1 up and keeps the largest match
func bruteForceOverlap(input, target string) int {
	best := -1
	for k := 1; k <= len(input) && k <= len(target); k++ {
		if strings.HasSuffix(input, target[:k]) {
			best = len(input) - k
		}
	}
	return best
}

func TestFindLongestMatchingIndex_Maximality(t *testing.T) {
	alphabet := []string{"a", "b", "ab", "ba", ""}

	// Every combination of up to three fragments on each side
	var words []string
	for _, x := range alphabet {
		for _, y := range alphabet {
			for _, z := range alphabet {
				words = append(words, x+y+z)
			}
		}
	}

	for _, input := range words {
		for _, target := range words {
			got := FindLongestMatchingIndex(input, target)
			want := bruteForceOverlap(input, target)
			if got != want {
				t.Fatalf("FindLongestMatchingIndex(%q, %q) = %d, want %d", input, target, got, want)
			}
			if got >= 0 && input[got:] != target[:len(input)-got] {
				t.Fatalf("overlap at %d of %q is not a prefix of %q", got, input, target)
			}
		}
	}
}
