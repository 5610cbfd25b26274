package microcomp

// AutocompleteText merges suggestion into the text typed so far. The part of
// existingText that already overlaps the start of suggestion is replaced by the
// whole suggestion; without any overlap suggestion is appended as is.
//
//	AutocompleteText("some t", "text")       // "some text"
//	AutocompleteText("some tag:", "invoice") // "some tag:invoice"
//
// Suggestions are never quoted, even when they contain spaces.
func AutocompleteText(existingText, suggestion string) string {
	idx := FindLongestMatchingIndex(existingText, suggestion)
	if idx < 0 {
		return existingText + suggestion
	}
	return existingText[:idx] + suggestion
}
