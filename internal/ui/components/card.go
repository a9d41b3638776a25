package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/ui/theme"
)

// Card wraps content in a rounded-border card at the given outer width.
func Card(th *theme.Theme, content string, width int) string {
	return th.Card().Width(width).Render(content)
}

// FeaturedCard is a Card with a highlighted border.
func FeaturedCard(th *theme.Theme, content string, width int) string {
	return th.FeaturedCard().Width(width).Render(content)
}

// Centered places content in the middle of the area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Tags renders chips in a row, wrapping to further rows when they exceed
// width.
func Tags(th *theme.Theme, tags []string, width int) string {
	if len(tags) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, t := range tags {
		chip := th.Tag().Render(t)
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return strings.Join(rows, "\n")
}

// Metric renders a big value over a small label.
func Metric(th *theme.Theme, value, label string, width int) string {
	v := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true).Foreground(th.Primary).Render(value)
	l := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(th.TextDim).Render(label)
	return v + "\n" + l
}
