package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Names accepted by ByName.
const (
	NameDark  = "dark"
	NameLight = "light"
)

// Theme is a color palette plus the styles derived from it. The app owns
// one instance and hands it to every screen, so toggling never touches
// package state.
type Theme struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette: deep navy with electric blue and violet.
func Dark() *Theme {
	return &Theme{
		Name:      NameDark,
		Primary:   lipgloss.Color("#3B82F6"), // Blue
		Secondary: lipgloss.Color("#8B5CF6"), // Violet
		Accent:    lipgloss.Color("#22D3EE"), // Cyan
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		Bg:        lipgloss.Color("#020617"), // Near black
		BgCard:    lipgloss.Color("#0F172A"), // Deep navy
		Border:    lipgloss.Color("#1E293B"), // Dark slate
	}
}

// Light mirrors Dark on a white background.
func Light() *Theme {
	return &Theme{
		Name:      NameLight,
		Primary:   lipgloss.Color("#2563EB"),
		Secondary: lipgloss.Color("#7C3AED"),
		Accent:    lipgloss.Color("#0891B2"),
		Success:   lipgloss.Color("#16A34A"),
		Error:     lipgloss.Color("#E11D48"),
		Text:      lipgloss.Color("#0F172A"),
		TextDim:   lipgloss.Color("#64748B"),
		Bg:        lipgloss.Color("#FFFFFF"),
		BgCard:    lipgloss.Color("#F1F5F9"),
		Border:    lipgloss.Color("#CBD5E1"),
	}
}

// ByName returns the named palette, falling back to Dark.
func ByName(name string) *Theme {
	if name == NameLight {
		return Light()
	}
	return Dark()
}

// Toggled returns the opposite palette.
func (t *Theme) Toggled() *Theme {
	if t.Name == NameLight {
		return Dark()
	}
	return Light()
}

// Typography

func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Text)
}

func (t *Theme) Highlight() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t *Theme) PreTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func (t *Theme) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextDim)
}

func (t *Theme) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t *Theme) Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
}

// States

func (t *Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
}

func (t *Theme) Unselected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

// Containers

func (t *Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}

func (t *Theme) FeaturedCard() lipgloss.Style {
	return t.Card().BorderForeground(t.Primary)
}

func (t *Theme) Bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
}

func (t *Theme) ButtonActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)
}

func (t *Theme) ButtonInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)
}

func (t *Theme) Tag() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)
}
