package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/byond/leadquiz/internal/quiz"
	"github.com/byond/leadquiz/internal/ui/components"
	"github.com/byond/leadquiz/internal/ui/layout"
)

func (s *QuizScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	th := s.env.Theme

	var body string
	switch {
	case s.ctrl == nil:
		body = lipgloss.NewStyle().Foreground(th.Error).Width(cw).Render(s.err.Error())
	case s.ctrl.Phase() == qz.PhaseProcessing:
		body = s.viewProcessing()
	case s.ctrl.Phase() == qz.PhaseComplete:
		body = s.viewResult(cw)
	default:
		body = s.viewQuestion(cw)
	}

	header := th.PreTitle().Render(strings.ToUpper(s.env.T("quiz.pre_title"))) + "\n" +
		th.Title().Render(s.env.T("quiz.title"))

	content := header + "\n\n" + body
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(content))
}

func (s *QuizScreen) viewQuestion(cw int) string {
	th := s.env.Theme
	n, total := s.ctrl.StepNumber(), s.ctrl.Total()

	stepper := components.NewStepper(s.env.Tf("quiz.step", n, total), n, total, cw)

	question := ""
	if step, ok := s.catalog.Step(n); ok {
		question = step.Question
	}

	return strings.Join([]string{
		stepper.View(th),
		"",
		th.Title().Width(cw).Render(question),
		"",
		s.options.View(th, cw),
	}, "\n")
}

func (s *QuizScreen) viewProcessing() string {
	th := s.env.Theme
	return s.loader.View() + " " + th.Subtitle().Render(s.env.T("quiz.processing"))
}

func (s *QuizScreen) viewResult(cw int) string {
	th := s.env.Theme
	res, ok := s.ctrl.Result()
	if !ok {
		return ""
	}
	a := s.env.Bundle.Compose(res)

	inner := cw - 6
	sections := []string{
		th.Highlight().Render(s.env.T("quiz.result_title")),
	}
	if tags := components.Tags(th, a.Tags, inner); tags != "" {
		sections = append(sections, tags)
	}
	sections = append(sections,
		th.Body().Width(inner).Render(a.MainText()),
		th.Subtitle().Width(inner).Render(a.SubText()),
	)

	panel := components.FeaturedCard(th, strings.Join(sections, "\n\n"), cw)
	return panel + "\n\n" + s.cta().View(th)
}
