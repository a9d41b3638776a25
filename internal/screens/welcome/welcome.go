package welcome

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/router"
	"github.com/byond/leadquiz/internal/screen"
)

const (
	tickInterval = 100 * time.Millisecond
	titleAt      = 100 * time.Millisecond
	loaderAt     = 800 * time.Millisecond
	fadeAt       = 2500 * time.Millisecond
	continueAt   = 3200 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows the splash before handing over to the home screen.
// It continues on its own after continueAt, or on any key.
type WelcomeScreen struct {
	env          *screen.Env
	next         func() screen.Screen
	loader       spinner.Model
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced
// by next.
func New(env *screen.Env, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		env:  env,
		next: next,
		loader: spinner.New(
			spinner.WithSpinner(spinner.Points),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(env.Theme.Primary)),
		),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(tick(), w.loader.Tick)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= continueAt {
			w.env.Log().Debug("welcome auto-continue")
			return w, w.transition()
		}
		return w, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		w.loader, cmd = w.loader.Update(msg)
		return w, cmd

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	th := w.env.Theme
	var sections []string

	sections = append(sections, RenderBanner(th, width))

	if w.elapsed >= titleAt {
		title := th.Title().Render(w.env.T("welcome.title_start")) + " " +
			th.Highlight().Render(w.env.T("welcome.title_highlight"))
		sections = append(sections, "", title)
	}

	switch {
	case w.elapsed >= fadeAt:
		sections = append(sections, "", th.Hint().Render(w.env.T("welcome.hint")))
	case w.elapsed >= loaderAt:
		loading := w.loader.View() + " " + th.Subtitle().Render(w.env.T("welcome.loading"))
		sections = append(sections, "", loading)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
