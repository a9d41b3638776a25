package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/ui/theme"
)

// Stepper shows quiz progress as one segment per step.
type Stepper struct {
	Label   string
	Current int // 1-based
	Total   int
	Width   int
}

// NewStepper creates a new stepper.
func NewStepper(label string, current, total, width int) Stepper {
	return Stepper{
		Label:   label,
		Current: current,
		Total:   total,
		Width:   width,
	}
}

// View renders the label line and the segment bar. Steps before Current
// are done, Current is highlighted, the rest are empty.
func (s Stepper) View(th *theme.Theme) string {
	if s.Total <= 0 {
		return ""
	}

	gap := 1
	seg := (s.Width - gap*(s.Total-1)) / s.Total
	if seg < 1 {
		seg = 1
	}

	done := lipgloss.NewStyle().Foreground(th.Secondary)
	active := lipgloss.NewStyle().Foreground(th.Primary)
	empty := lipgloss.NewStyle().Foreground(th.Border)

	parts := make([]string, s.Total)
	for i := 1; i <= s.Total; i++ {
		bar := strings.Repeat("━", seg)
		switch {
		case i < s.Current:
			parts[i-1] = done.Render(bar)
		case i == s.Current:
			parts[i-1] = active.Render(bar)
		default:
			parts[i-1] = empty.Render(bar)
		}
	}

	out := strings.Join(parts, strings.Repeat(" ", gap))
	if s.Label != "" {
		out = lipgloss.NewStyle().Foreground(th.TextDim).Render(s.Label) + "\n" + out
	}
	return out
}
