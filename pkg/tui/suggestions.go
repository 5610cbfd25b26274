package tui

import (
	"fmt"
	"strings"

	"github.com/pluqqy/microcomp/pkg/suggest"
)

// SuggestionList holds the suggestions for the segment being typed and the
// user's position in them
type SuggestionList struct {
	Items     []suggest.Suggestion
	Cursor    int
	Navigated bool
}

// Set replaces the suggestions and resets navigation
func (l *SuggestionList) Set(items []suggest.Suggestion) {
	l.Items = items
	l.Cursor = 0
	l.Navigated = false
}

// Clear removes all suggestions
func (l *SuggestionList) Clear() {
	l.Set(nil)
}

// Visible reports whether there is anything to show
func (l *SuggestionList) Visible() bool {
	return len(l.Items) > 0
}

// MoveUp moves the cursor to the previous suggestion
func (l *SuggestionList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
	l.Navigated = true
}

// MoveDown moves the cursor to the next suggestion
func (l *SuggestionList) MoveDown() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
	}
	l.Navigated = true
}

// Selected returns the suggestion under the cursor
func (l *SuggestionList) Selected() (suggest.Suggestion, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return suggest.Suggestion{}, false
	}
	return l.Items[l.Cursor], true
}

// View renders the list below the search bar
func (l *SuggestionList) View(width int) string {
	if !l.Visible() {
		return ""
	}

	var b strings.Builder
	for i, item := range l.Items {
		label := fmt.Sprintf("%-*s", max(width-16, 10), item.Text)
		kind := DimStyle.Render(string(item.Type))

		if i == l.Cursor && l.Navigated {
			b.WriteString(SelectedStyle.Render("▸ " + label))
		} else {
			b.WriteString(NormalStyle.Render("  " + label))
		}
		b.WriteString(" ")
		b.WriteString(kind)
		if i < len(l.Items)-1 {
			b.WriteString("\n")
		}
	}
	return ContentPaddingStyle.Render(b.String())
}
