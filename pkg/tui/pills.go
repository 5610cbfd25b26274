package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
)

// pillStyle represents a committed filter with its display style
type pillStyle struct {
	label string
	style lipgloss.Style
}

// pillColor picks the background color of a filter pill. Tag pills take the
// color of their first tag.
func pillColor(token microcomp.Token, tagColor func(string) string) string {
	switch t := token.(type) {
	case *microcomp.TagToken:
		if len(t.Values) > 0 {
			return tagColor(t.Values[0])
		}
	case *microcomp.CategoryToken:
		return ColorCategory
	case *microcomp.CustomFieldToken:
		return ColorField
	}
	return ColorFreeText
}

// renderPills renders committed filters as colored chips on one line,
// ending with "..." when they do not fit in maxWidth
func renderPills(filters []models.Filter, tagColor func(string) string, maxWidth int) string {
	if len(filters) == 0 {
		return ""
	}

	var pills []pillStyle
	for _, f := range filters {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(pillColor(f.Token, tagColor))).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			MarginRight(1)

		pills = append(pills, pillStyle{
			label: microcomp.Format(f.Token),
			style: style,
		})
	}

	var result strings.Builder
	currentWidth := 0

	for i, p := range pills {
		rendered := p.style.Render(p.label)
		renderedWidth := lipgloss.Width(rendered)

		if currentWidth+renderedWidth > maxWidth && i > 0 {
			result.WriteString("...")
			break
		}

		result.WriteString(rendered)
		currentWidth += renderedWidth
	}

	return result.String()
}

// renderPillsPlain renders filters without colors
func renderPillsPlain(filters []models.Filter) string {
	labels := make([]string, 0, len(filters))
	for _, f := range filters {
		labels = append(labels, "["+microcomp.Format(f.Token)+"]")
	}
	return strings.Join(labels, " ")
}
