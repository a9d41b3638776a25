package quiz

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/byond/leadquiz/internal/i18n"
	qz "github.com/byond/leadquiz/internal/quiz"
	"github.com/byond/leadquiz/internal/router"
	"github.com/byond/leadquiz/internal/screen"
	"github.com/byond/leadquiz/internal/ui/components"
	"github.com/byond/leadquiz/internal/ui/layout"
)

// QuizScreen runs one potential-check session: questions, the processing
// pause and the analysis result.
type QuizScreen struct {
	env     *screen.Env
	contact func() screen.Screen
	ctrl    *qz.Controller
	options components.OptionList
	loader  spinner.Model

	// catalog of the bundle it was built from; rebuilt on locale switch.
	catalog   qz.Catalog
	catBundle *i18n.Bundle
	listStep  int
	err       error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Disposer = (*QuizScreen)(nil)

// New creates a QuizScreen. contact builds the screen shown when the user
// books a call from the result.
func New(env *screen.Env, contact func() screen.Screen) *QuizScreen {
	s := &QuizScreen{
		env:     env,
		contact: contact,
		loader: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(env.Theme.Primary)),
		),
	}
	s.start()
	return s
}

// start begins a fresh session with the active locale's questions.
func (s *QuizScreen) start() {
	s.refreshCatalog()
	if s.err != nil {
		return
	}
	s.ctrl = qz.NewController(s.catalog, s.env.NewGenerator(), qz.Options{
		ProcessingDelay: s.env.Config.ProcessingDelay(),
		Logger:          s.env.Log().Named("quiz").With(zap.String("locale", s.env.Bundle.Locale())),
	})
	s.listStep = 0
	s.syncOptions()
}

// refreshCatalog rebuilds the catalog when the active bundle changed.
func (s *QuizScreen) refreshCatalog() {
	if s.catBundle == s.env.Bundle && s.err == nil {
		return
	}
	cat, err := s.env.Bundle.Catalog()
	if err != nil {
		s.env.Log().Error("quiz catalog unavailable", zap.Error(err))
		s.err = err
		return
	}
	s.catalog = cat
	s.catBundle = s.env.Bundle
	s.err = nil
}

// syncOptions points the option list at the current step. The cursor is
// kept across a locale switch and reset on a new step.
func (s *QuizScreen) syncOptions() {
	if s.ctrl == nil {
		return
	}
	step, ok := s.catalog.Step(s.ctrl.StepNumber())
	if !ok {
		return
	}
	selected, submitted := s.options.Selected, s.options.Submitted
	if s.listStep != step.ID {
		selected, submitted = 0, false
	}
	s.options = components.NewOptionList(step.ID, step.Options)
	if selected < len(step.Options) {
		s.options.Selected = selected
	}
	s.options.Submitted = submitted
	s.listStep = step.ID
}

// Controller returns the active session.
func (s *QuizScreen) Controller() *qz.Controller {
	return s.ctrl
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.env.T("nav.quiz")
}

// Dispose ends the session so a pending result is never applied.
func (s *QuizScreen) Dispose() {
	if s.ctrl != nil {
		s.ctrl.Dispose()
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.ctrl == nil {
		return []layout.KeyHint{{Key: "Esc", Description: s.env.T("keys.back")}}
	}
	switch s.ctrl.Phase() {
	case qz.PhaseComplete:
		return []layout.KeyHint{
			{Key: "Enter", Description: s.env.T("keys.book")},
			{Key: "R", Description: s.env.T("keys.restart")},
			{Key: "Esc", Description: s.env.T("keys.back")},
		}
	case qz.PhaseProcessing:
		return []layout.KeyHint{{Key: "Esc", Description: s.env.T("keys.back")}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: s.env.T("keys.navigate")},
			{Key: "1-9", Description: s.env.T("keys.answer")},
			{Key: "Enter", Description: s.env.T("keys.select")},
			{Key: "Esc", Description: s.env.T("keys.back")},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.ctrl == nil {
		return s, nil
	}

	switch msg := msg.(type) {
	case components.OptionChosenMsg:
		return s.handleAnswer(msg)

	case screen.LocaleChangedMsg:
		s.refreshCatalog()
		s.syncOptions()
		return s, nil

	case resultReadyMsg:
		if s.ctrl.Complete(msg.SessionID) {
			s.env.Log().Debug("quiz result shown", zap.String("session_id", msg.SessionID))
		}
		return s, nil

	case spinner.TickMsg:
		if s.ctrl.Phase() != qz.PhaseProcessing {
			return s, nil
		}
		var cmd tea.Cmd
		s.loader, cmd = s.loader.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.ctrl.Phase() {
	case qz.PhaseInProgress:
		s.refreshCatalog()
		s.syncOptions()
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd

	case qz.PhaseComplete:
		if cmd, ok := s.cta().Handle(msg); ok {
			return s, cmd
		}
		if msg.String() == "r" {
			s.ctrl.Dispose()
			s.start()
		}
	}
	return s, nil
}

// cta hands the finished quiz over to the contact screen.
func (s *QuizScreen) cta() components.Button {
	var press func() tea.Cmd
	if s.contact != nil {
		press = func() tea.Cmd {
			next := s.contact()
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	}
	return components.CTA(s.env.T("quiz.result_cta"), press)
}

func (s *QuizScreen) handleAnswer(msg components.OptionChosenMsg) (screen.Screen, tea.Cmd) {
	if msg.Step != s.ctrl.StepNumber() {
		s.env.Log().Debug("stale option dropped",
			zap.Int("for_step", msg.Step),
			zap.Int("step", s.ctrl.StepNumber()))
		return s, nil
	}
	switch s.ctrl.RecordAnswer(msg.Text) {
	case qz.TransitionAdvanced:
		s.syncOptions()
	case qz.TransitionProcessing:
		return s, tea.Batch(s.loader.Tick, resultAfter(s.ctrl.Delay(), s.ctrl.ID()))
	}
	return s, nil
}
