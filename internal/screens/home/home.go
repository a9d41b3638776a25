package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/router"
	"github.com/byond/leadquiz/internal/screen"
	"github.com/byond/leadquiz/internal/ui/components"
	"github.com/byond/leadquiz/internal/ui/layout"
)

// Routes builds the screens reachable from the home menu. A nil route
// disables its menu item.
type Routes struct {
	Quiz      func() screen.Screen
	Solutions func() screen.Screen
	Contact   func() screen.Screen
}

var menuKeys = []string{"menu.quiz", "menu.solutions", "menu.contact", "menu.quit"}

// HomeScreen shows the hero, the metrics row and the main menu.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env, routes Routes) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Key: menuKeys[0]},
		{Key: menuKeys[1]},
		{Key: menuKeys[2]},
		{Key: menuKeys[3], Action: func() tea.Cmd { return tea.Quit }},
	}
	if routes.Quiz != nil {
		items[0].Action = push(routes.Quiz)
	}
	if routes.Solutions != nil {
		items[1].Action = push(routes.Solutions)
	}
	if routes.Contact != nil {
		items[2].Action = push(routes.Contact)
	}

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// entries resolves the menu keys at render time so a locale switch shows up
// immediately.
func (h *HomeScreen) entries() []menuEntry {
	out := make([]menuEntry, len(h.menu.Items))
	for i, item := range h.menu.Items {
		out[i] = menuEntry{label: h.env.T(item.Key), enabled: item.Enabled()}
	}
	return out
}

func (h *HomeScreen) View(width, height int) string {
	th := h.env.Theme
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := layout.ContentWidth(width)

	cta := ""
	if !compact {
		cta = h.env.T("hero.cta_solutions") + "  ·  " + h.env.T("hero.cta_contact")
	}

	metricLabels := make([]string, len(metrics))
	for i, m := range metrics {
		metricLabels[i] = h.env.T(m.key)
	}

	var sections []string
	sections = append(sections, renderHero(th,
		h.env.T("hero.subtitle"),
		h.env.T("hero.title_start"),
		h.env.T("hero.title_highlight"),
		cta, cw))
	sections = append(sections, renderMetrics(th, metricLabels, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(th, h.entries(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(th, h.entries(), h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return h.env.T("nav.home")
}

// KeyHints returns the footer hints for the home menu.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.env.T("keys.navigate")},
		{Key: "Enter", Description: h.env.T("keys.select")},
		{Key: "Ctrl+T", Description: h.env.T("keys.theme")},
		{Key: "Ctrl+C", Description: h.env.T("keys.quit")},
	}
}
