package solutions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/catalog"
	"github.com/byond/leadquiz/internal/screen"
	"github.com/byond/leadquiz/internal/ui/components"
	"github.com/byond/leadquiz/internal/ui/layout"
)

// SolutionsScreen lists the use cases by category, followed by the
// engagement packages.
type SolutionsScreen struct {
	env          *screen.Env
	categories   []catalog.Category
	selected     int // index into categories
	scrollOffset int
}

var _ screen.Screen = (*SolutionsScreen)(nil)
var _ screen.KeyHintProvider = (*SolutionsScreen)(nil)

// New creates a new SolutionsScreen showing all categories.
func New(env *screen.Env) *SolutionsScreen {
	return &SolutionsScreen{
		env:        env,
		categories: catalog.Categories(),
	}
}

func (s *SolutionsScreen) Init() tea.Cmd {
	return nil
}

func (s *SolutionsScreen) Title() string {
	return s.env.T("nav.solutions")
}

func (s *SolutionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: s.env.T("keys.filter")},
		{Key: "↑↓", Description: s.env.T("keys.navigate")},
		{Key: "Esc", Description: s.env.T("keys.back")},
	}
}

// Category returns the active filter.
func (s *SolutionsScreen) Category() catalog.Category {
	return s.categories[s.selected]
}

func (s *SolutionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "right", "l":
		s.selected = (s.selected + 1) % len(s.categories)
		s.scrollOffset = 0
	case "shift+tab", "left", "h":
		s.selected = (s.selected - 1 + len(s.categories)) % len(s.categories)
		s.scrollOffset = 0
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < s.blockCount()-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

// blockCount is the number of scrollable blocks: one per visible use case,
// the packages heading and one per package.
func (s *SolutionsScreen) blockCount() int {
	return len(catalog.Filter(s.Category())) + 1 + len(catalog.Packages())
}

func (s *SolutionsScreen) View(width, height int) string {
	th := s.env.Theme
	cw := layout.ContentWidth(width)

	var b strings.Builder

	b.WriteString(th.PreTitle().Render(strings.ToUpper(s.env.T("solutions.pre_title"))))
	b.WriteString("\n")
	b.WriteString(th.Title().Render(s.env.T("solutions.title")))
	b.WriteString("\n")
	b.WriteString(th.Subtitle().Width(cw).Render(s.env.T("solutions.subtitle")))
	b.WriteString("\n\n")

	var tabs []string
	for i, c := range s.categories {
		label := s.env.T(c.LabelKey())
		if i == s.selected {
			tabs = append(tabs, th.Selected().Render("["+label+"]"))
		} else {
			tabs = append(tabs, th.Hint().UnsetItalic().Render(label))
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(strings.Join(tabs, "  ")))
	b.WriteString("\n\n")

	header := b.String()
	budget := height - lipgloss.Height(header) - 2
	if budget < 6 {
		budget = 6
	}

	blocks := s.blocks(cw)
	var shown []string
	used := 0
	end := s.scrollOffset
	for end < len(blocks) {
		h := lipgloss.Height(blocks[end])
		if len(shown) > 0 && used+h > budget {
			break
		}
		shown = append(shown, blocks[end])
		used += h
		end++
	}

	body := strings.Join(shown, "\n")
	if end < len(blocks) {
		body += "\n" + th.Hint().Render(fmt.Sprintf("… %d more", len(blocks)-end))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(header+body))
}

func (s *SolutionsScreen) blocks(cw int) []string {
	th := s.env.Theme
	var out []string

	for _, u := range catalog.Filter(s.Category()) {
		lines := []string{
			th.Highlight().Render(s.env.T(u.TitleKey())) + "  " +
				th.Hint().UnsetItalic().Render(s.env.T(u.Category.LabelKey())),
			th.Body().Width(cw - 6).Render(s.env.T(u.DescriptionKey())),
		}
		if u.HasROI {
			lines = append(lines, th.PreTitle().Render(s.env.T("solutions.roi")+": "+s.env.T(u.ROIKey())))
		}
		out = append(out, components.Card(th, strings.Join(lines, "\n"), cw))
	}

	out = append(out, "\n"+th.Title().Render(s.env.T("solutions.packages_title")))

	for _, p := range catalog.Packages() {
		price := s.env.T("solutions.custom_price")
		if !p.Custom {
			price = s.env.T(p.Key("price"))
		}
		lines := []string{
			th.Title().Render(s.env.T(p.Key("title"))) + "  " + th.Highlight().Render(price),
			th.Subtitle().Render(s.env.T("solutions.duration") + ": " + s.env.T(p.Key("duration"))),
			th.Subtitle().Render(s.env.T("solutions.outcome") + ": " + s.env.T(p.Key("outcome"))),
		}
		for _, f := range s.env.Bundle.List(p.Key("features")) {
			lines = append(lines, th.Body().Render("✓ "+f))
		}
		content := strings.Join(lines, "\n")
		if p.Featured {
			out = append(out, components.FeaturedCard(th, content, cw))
		} else {
			out = append(out, components.Card(th, content, cw))
		}
	}
	return out
}
