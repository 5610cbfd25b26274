package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader places title on the left and info right-aligned on one line
func renderHeader(width int, title, info string) string {
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	left := TitleStyle.Render(title)
	right := DimStyle.Render(info)

	// -2 for padding
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return headerPadding.Render(left)
	}

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		right,
	))
}
