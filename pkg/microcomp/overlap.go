package microcomp

// FindLongestMatchingIndex returns the index in input where the longest suffix of
// input that is also a prefix of target starts, or -1 when no non-empty overlap
// exists. Candidates are tried from the longest possible overlap down, so the
// largest overlap always wins:
//
//	FindLongestMatchingIndex("abcabc", "abc")  // 3
//	FindLongestMatchingIndex("some t", "text") // 5
//	FindLongestMatchingIndex("abc", "xyz")     // -1
//
// Offsets are byte offsets. For valid UTF-8 input they always fall on a rune
// boundary because target cannot start with a continuation byte.
func FindLongestMatchingIndex(input, target string) int {
	for k := min(len(input), len(target)); k >= 1; k-- {
		if input[len(input)-k:] == target[:k] {
			return len(input) - k
		}
	}
	return -1
}
