package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/ui/theme"
)

// OptionChosenMsg is emitted when the user picks an option. Step is the
// question the list was built for, so a choice that arrives after the quiz
// moved on can be told apart.
type OptionChosenMsg struct {
	Step  int
	Index int
	Text  string
}

// OptionList is a single-choice answer list. Arrows move the cursor; enter
// or a number key picks. After a pick the list is submitted and ignores
// further picks until it is rebuilt for the next step.
type OptionList struct {
	Step      int
	Options   []string
	Selected  int
	Submitted bool
}

// NewOptionList creates an option list for step with the cursor on the
// first entry.
func NewOptionList(step int, options []string) OptionList {
	return OptionList{Step: step, Options: options}
}

// Init returns nil.
func (m OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter", "space":
		return m.choose(m.Selected)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) && n <= 9 {
		if m.Submitted {
			return m, nil
		}
		m.Selected = n - 1
		return m.choose(m.Selected)
	}
	return m, nil
}

func (m OptionList) choose(i int) (OptionList, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}
	m.Submitted = true
	chosen := OptionChosenMsg{Step: m.Step, Index: i, Text: m.Options[i]}
	return m, func() tea.Msg { return chosen }
}

// View renders the options as numbered cards.
func (m OptionList) View(th *theme.Theme, width int) string {
	rows := make([]string, len(m.Options))
	for i, opt := range m.Options {
		line := fmt.Sprintf("%d  %s", i+1, opt)
		style := lipgloss.NewStyle().
			Width(width).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		if i == m.Selected {
			rows[i] = style.
				BorderForeground(th.Primary).
				Foreground(th.Primary).
				Bold(true).
				Render("▸ " + line)
		} else {
			rows[i] = style.
				BorderForeground(th.Border).
				Foreground(th.Text).
				Render("  " + line)
		}
	}
	return strings.Join(rows, "\n")
}
