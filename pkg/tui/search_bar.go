package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is the text input the search line is typed into
type SearchBar struct {
	input    textinput.Model
	isActive bool
	hasError bool
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar(placeholder string) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 50 // Default width, will be adjusted
	ti.Prompt = ""

	return &SearchBar{
		input: ti,
	}
}

// SetActive sets whether the search bar has focus
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// SetError marks the current text as containing an incomplete token
func (s *SearchBar) SetError(hasError bool) {
	s.hasError = hasError
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// borders, outer padding and the icon
	s.input.Width = max(width-12, 10)
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the search text and moves the cursor to the end
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
	s.input.CursorEnd()
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View() string {
	borderColor := ColorInactive
	switch {
	case s.hasError:
		borderColor = ColorError
	case s.isActive:
		borderColor = ColorActive
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(max(s.width-4, 1)).
		Padding(0, 1)

	var searchIcon string
	if s.isActive {
		searchIcon = lipgloss.NewStyle().
			Background(lipgloss.Color(borderColor)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		// same width as the padded active icon
		searchIcon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true).
			Render(" ⌕ ")
	}

	searchContent := lipgloss.JoinHorizontal(lipgloss.Center, searchIcon, " ", s.input.View())

	return ContentPaddingStyle.Render(searchStyle.Render(searchContent))
}

// Focus focuses the search input
func (s *SearchBar) Focus() tea.Cmd {
	s.isActive = true
	return s.input.Focus()
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
	s.hasError = false
}
