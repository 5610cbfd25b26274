package microcomp

// GetTokenValueItemsFilter returns the value currently being typed at the end of a
// comma separated value list, trimmed and unquoted. It is empty when the list ends
// with a comma because the last value has just been completed.
//
//	GetTokenValueItemsFilter("forget,me,not")  // "not"
//	GetTokenValueItemsFilter("forget,me,not,") // ""
func GetTokenValueItemsFilter(tail string) string {
	items := SplitByComma(tail)
	return Unquote(items[len(items)-1])
}

// GetTokenValueItemsToExclude returns the values of the list that are already
// committed, trimmed and unquoted. The trailing item is only included when it is
// followed by a comma.
//
//	GetTokenValueItemsToExclude("invoice, 'blue sky', deleted") // ["invoice", "blue sky"]
//	GetTokenValueItemsToExclude("forget,me,not,")               // ["forget", "me", "not"]
func GetTokenValueItemsToExclude(tail string) []string {
	items := SplitByComma(tail)

	// The last element is either the in-progress value or the empty remainder
	// after a trailing comma; in both cases everything before it is committed.
	committed := make([]string, 0, len(items)-1)
	for _, item := range items[:len(items)-1] {
		value := Unquote(item)
		if value == "" {
			continue
		}
		committed = append(committed, value)
	}

	return committed
}

// splitValues turns a value list segment into its non-empty unquoted items
func splitValues(list string) []string {
	var values []string
	for _, item := range SplitByComma(list) {
		value := Unquote(item)
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	return values
}
