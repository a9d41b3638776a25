package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/ui/theme"
)

const (
	MinWidth  = 72
	MinHeight = 22

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30

	// Brand is shown at the left of the header, split at the dot.
	Brand = "Byond.Intelligence"

	crumbSep = " › "
	hintSep  = "   "
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentWidth returns the uniform inner width used by centered sections,
// capped so text stays readable on wide terminals.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 76)
}

// RenderMinSizeMessage renders the "terminal too small" notice. format
// receives the minimum and the current size, in that order.
func RenderMinSizeMessage(th *theme.Theme, format string, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(th.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(format, MinWidth, MinHeight, width, height))
}

func brand(th *theme.Theme) string {
	name, suffix, ok := strings.Cut(Brand, ".")
	if !ok {
		return lipgloss.NewStyle().Foreground(th.Text).Bold(true).Render("  " + Brand)
	}
	return lipgloss.NewStyle().Foreground(th.Text).Bold(true).Render("  "+name) +
		lipgloss.NewStyle().Foreground(th.Primary).Bold(true).Render(".") +
		lipgloss.NewStyle().Foreground(th.TextDim).Render(suffix)
}

// Breadcrumb joins the screen titles of a navigation trail, dropping the
// oldest crumbs until the result fits in width cells. The last crumb is
// always kept.
func Breadcrumb(trail []string, width int) string {
	s := strings.Join(trail, crumbSep)
	for i := 1; i < len(trail) && lipgloss.Width(s) > width; i++ {
		s = "…" + crumbSep + strings.Join(trail[i:], crumbSep)
	}
	return s
}

// RenderHeader renders the application header bar: brand, the navigation
// trail centered, and a right-aligned badge (locale and theme).
func RenderHeader(th *theme.Theme, trail []string, badge string, width int) string {
	left := brand(th)
	right := lipgloss.NewStyle().Foreground(th.Accent).Render(badge)

	innerWidth := max(width-4, 0)
	room := innerWidth - lipgloss.Width(left) - lipgloss.Width(right) - 2

	crumbs := make([]string, len(trail))
	for i, t := range trail {
		style := lipgloss.NewStyle().Foreground(th.TextDim)
		if i == len(trail)-1 {
			style = lipgloss.NewStyle().Foreground(th.Text)
		}
		crumbs[i] = style.Render(t)
	}
	center := ""
	if room > 0 {
		center = Breadcrumb(crumbs, room)
	}

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return th.Bar().Width(width).Render(content)
}

// RenderFooter renders the key hints on one line. Hints that do not fit
// are dropped from the end.
func RenderFooter(th *theme.Theme, hints []KeyHint, width int) string {
	room := width - 6
	parts := make([]string, 0, len(hints))
	used := 0
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(th.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(th.TextDim).Render(h.Description)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += len(hintSep)
		}
		if used+w > room {
			break
		}
		used += w
		parts = append(parts, part)
	}

	return th.Bar().Width(width).Render("  " + strings.Join(parts, hintSep))
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
