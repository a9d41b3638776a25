package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/ui/components"
	"github.com/byond/leadquiz/internal/ui/theme"
)

// metric is one tile of the metrics row.
type metric struct {
	value string
	key   string
}

var metrics = []metric{
	{value: "500+", key: "metrics.processes"},
	{value: "200k+", key: "metrics.hours"},
	{value: "12x", key: "metrics.roi"},
	{value: "100%", key: "metrics.security"},
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// menuEntry is a menu item with its label resolved for the active locale.
type menuEntry struct {
	label   string
	enabled bool
}

// renderHero returns the eyebrow, the two-tone title and the CTA line.
func renderHero(th *theme.Theme, eyebrow, titleStart, titleHighlight, cta string, cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	lines := []string{
		center.Render(th.PreTitle().Render(strings.ToUpper(eyebrow))),
		center.Render(th.Title().Render(titleStart)),
		center.Render(th.Highlight().Render(titleHighlight)),
	}
	if cta != "" {
		lines = append(lines, "", center.Render(th.Subtitle().Render(cta)))
	}
	return strings.Join(lines, "\n")
}

// renderMetrics lays the metric tiles out in one row, or two rows when the
// content width is compact.
func renderMetrics(th *theme.Theme, labels []string, cw int, compact bool) string {
	perRow := len(metrics)
	if compact {
		perRow = 2
	}
	tileWidth := cw / perRow

	var rows []string
	var row []string
	for i, m := range metrics {
		row = append(row, components.Metric(th, m.value, labels[i], tileWidth))
		if len(row) == perRow || i == len(metrics)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false).
		BorderForeground(th.Border).
		Width(cw).
		Render(strings.Join(rows, "\n"))
}

// renderMenu renders each menu item as a fixed-width button, centered.
func renderMenu(th *theme.Theme, items []menuEntry, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, e := range items {
		buttons[i] = components.MenuButton(th, e.label, i == selected, e.enabled, buttonWidth)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for short terminals
// where bordered buttons would overflow.
func renderMenuCompact(th *theme.Theme, items []menuEntry, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, e := range items {
		switch {
		case i == selected:
			lines[i] = th.ButtonActive().Render("▸ " + e.label)
		case !e.enabled:
			lines[i] = th.Unselected().Faint(true).Render("  " + e.label)
		default:
			lines[i] = th.Unselected().Render("  " + e.label)
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
