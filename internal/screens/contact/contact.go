package contact

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/byond/leadquiz/internal/screen"
	"github.com/byond/leadquiz/internal/ui/components"
	"github.com/byond/leadquiz/internal/ui/layout"
)

// Source tells the contact screen how the user got there.
type Source string

const (
	SourceMenu         Source = "menu"
	SourceQuizComplete Source = "quiz_complete"
)

// ContactScreen shows the booking call-to-action.
type ContactScreen struct {
	env    *screen.Env
	source Source
	copied bool
}

var _ screen.Screen = (*ContactScreen)(nil)
var _ screen.KeyHintProvider = (*ContactScreen)(nil)

// New creates a new ContactScreen.
func New(env *screen.Env, source Source) *ContactScreen {
	return &ContactScreen{env: env, source: source}
}

// Source returns how the screen was reached.
func (c *ContactScreen) Source() Source {
	return c.source
}

func (c *ContactScreen) Init() tea.Cmd {
	c.env.Log().Info("contact opened", zap.String("source", string(c.source)))
	return nil
}

func (c *ContactScreen) Title() string {
	return c.env.T("nav.contact")
}

func (c *ContactScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: c.env.T("keys.copy")},
		{Key: "Esc", Description: c.env.T("keys.back")},
	}
}

// book copies the booking link via the terminal clipboard.
func (c *ContactScreen) book() components.Button {
	return components.CTA(c.env.T("contact.book_call"), func() tea.Cmd {
		c.copied = true
		c.env.Log().Info("booking link copied", zap.String("source", string(c.source)))
		return tea.SetClipboard(c.env.Config.BookingURL)
	})
}

func (c *ContactScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	cmd, _ := c.book().Handle(msg)
	return c, cmd
}

func (c *ContactScreen) View(width, height int) string {
	th := c.env.Theme
	cw := layout.ContentWidth(width)

	sections := []string{
		th.Title().Render(c.env.T("contact.hero_title")),
		th.Subtitle().Width(cw).Render(c.env.T("contact.hero_subtitle")),
	}
	if c.source == SourceQuizComplete {
		sections = append(sections, th.PreTitle().Width(cw).Render(c.env.T("contact.from_quiz")))
	}

	sections = append(sections, components.FeaturedCard(th, c.book().View(th), cw))
	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))

	// The link stays on one line so terminals can detect it.
	parts := []string{content, "", c.link(width - 4)}
	if c.copied {
		parts = append(parts, "", th.Hint().Render(c.env.T("contact.copied")))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// link renders the booking URL unwrapped, cut with an ellipsis when it is
// wider than maxWidth. Enter still copies the full URL.
func (c *ContactScreen) link(maxWidth int) string {
	url := c.env.Config.BookingURL
	if maxWidth > 0 && lipgloss.Width(url) > maxWidth {
		url = ansi.Truncate(url, maxWidth, "…")
	}
	return c.env.Theme.Highlight().Underline(true).Render(url)
}
