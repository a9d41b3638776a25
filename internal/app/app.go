package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/byond/leadquiz/internal/i18n"
	"github.com/byond/leadquiz/internal/router"
	"github.com/byond/leadquiz/internal/screen"
	"github.com/byond/leadquiz/internal/screens/contact"
	"github.com/byond/leadquiz/internal/screens/home"
	"github.com/byond/leadquiz/internal/screens/quiz"
	"github.com/byond/leadquiz/internal/screens/solutions"
	"github.com/byond/leadquiz/internal/screens/welcome"
	"github.com/byond/leadquiz/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// Options selects where the app starts.
type Options struct {
	// Quiz opens the potential check on top of home, skipping the splash.
	Quiz bool
}

// packsReloadedMsg carries the registry rebuilt after the packs in the
// locales directory changed on disk.
type packsReloadedMsg struct {
	registry *i18n.Registry
	err      error
}

// newAppModel creates a new AppModel starting at the welcome splash, or at
// home when the splash is disabled.
func newAppModel(env *screen.Env, opts Options) AppModel {
	newContact := func(source contact.Source) func() screen.Screen {
		return func() screen.Screen { return contact.New(env, source) }
	}
	newHome := func() screen.Screen {
		return home.New(env, home.Routes{
			Quiz: func() screen.Screen {
				return quiz.New(env, newContact(contact.SourceQuizComplete))
			},
			Solutions: func() screen.Screen { return solutions.New(env) },
			Contact:   newContact(contact.SourceMenu),
		})
	}

	logOpt := router.WithLogger(env.Log().Named("router"))
	if opts.Quiz {
		r := router.New(newHome(), logOpt)
		r.Push(quiz.New(env, newContact(contact.SourceQuizComplete)))
		return AppModel{env: env, router: r}
	}

	var initial screen.Screen
	if env.Config.Welcome {
		initial = welcome.New(env, newHome)
	} else {
		initial = newHome()
	}
	return AppModel{
		env:    env,
		router: router.New(initial, logOpt),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case packsReloadedMsg:
		if msg.err != nil {
			m.env.Log().Warn("content packs not reloaded", zap.Error(msg.err))
			return m, nil
		}
		m.env.Reload(msg.registry)
		m.env.Log().Info("content packs reloaded", zap.Strings("locales", msg.registry.Locales()))
		return m, m.router.Broadcast(screen.LocaleChangedMsg{})

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "ctrl+t":
			m.env.Theme = m.env.Theme.Toggled()
			m.env.Log().Debug("theme toggled", zap.String("theme", m.env.Theme.Name))
			return m, nil
		case "ctrl+l":
			m.env.Bundle = m.env.Registry.Next(m.env.Bundle)
			m.env.Log().Debug("locale switched", zap.String("locale", m.env.Bundle.Locale()))
			return m, m.router.Broadcast(screen.LocaleChangedMsg{})
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// badge is the header's right-hand label, e.g. "DE · Dark".
func (m AppModel) badge() string {
	return strings.ToUpper(m.env.Bundle.Locale()) + " · " + m.env.T("theme."+m.env.Theme.Name)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints := p.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+L", Description: m.env.T("keys.language")})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: m.env.T("keys.back")},
			{Key: "Ctrl+C", Description: m.env.T("keys.quit")},
		}
	}
	return []layout.KeyHint{
		{Key: m.env.T("keys.any"), Description: m.env.T("keys.skip")},
		{Key: "Ctrl+C", Description: m.env.T("keys.quit")},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	v.BackgroundColor = m.env.Theme.Bg
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	th := m.env.Theme
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(th, m.env.T("app.too_small"), m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(th, m.router.Trail(), m.badge(), m.width)
	footer := layout.RenderFooter(th, m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Close disposes every screen still on the stack.
func (m AppModel) Close() {
	m.router.Close()
}

// reloadPacks rebuilds the registry from the embedded packs and dir and
// logs what the coverage check finds. A broken pack keeps the old registry.
func reloadPacks(env *screen.Env, dir string) packsReloadedMsg {
	reg, err := i18n.Default(dir)
	if err != nil {
		return packsReloadedMsg{err: err}
	}
	for _, p := range reg.Check(env.Analysis) {
		env.Log().Warn("content pack problem", zap.Stringer("problem", p))
	}
	return packsReloadedMsg{registry: reg}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// done. With a locales directory configured, edits to its packs show up in
// the running app.
func Run(ctx context.Context, env *screen.Env, opts Options) error {
	env.Log().Info("tui started",
		zap.String("locale", env.Bundle.Locale()),
		zap.String("theme", env.Theme.Name))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newAppModel(env, opts), tea.WithContext(ctx))
	g, gctx := errgroup.WithContext(ctx)

	if dir := env.Config.LocalesDir; dir != "" {
		g.Go(func() error {
			err := i18n.Watch(gctx, dir, i18n.DefaultDebounce, env.Log().Named("packs"), func() {
				p.Send(reloadPacks(env, dir))
			})
			if err != nil {
				env.Log().Warn("pack watcher stopped", zap.Error(err))
			}
			return nil
		})
	}

	var final tea.Model
	g.Go(func() error {
		defer cancel()
		var err error
		final, err = p.Run()
		return err
	})

	err := g.Wait()
	if fm, ok := final.(AppModel); ok {
		fm.Close()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		env.Log().Error("program failed", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	env.Log().Info("tui stopped")
	return nil
}
