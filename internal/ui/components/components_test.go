package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byond/leadquiz/internal/ui/theme"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_Navigation(t *testing.T) {
	var fired string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			fired = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Key: "a", Action: action("a")},
		{Key: "b"},
		{Key: "c", Action: action("c")},
	})
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 2, m.Selected, "disabled items are skipped")

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 0, m.Selected, "wraps to the top")

	m, _ = m.Update(key(tea.KeyUp))
	assert.Equal(t, 2, m.Selected, "wraps to the bottom")

	m, _ = m.Update(key(tea.KeyEnter))
	assert.Equal(t, "c", fired)

	m, _ = m.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, "a", fired)

	_, cmd := m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Nil(t, cmd)
}

func TestMenu_FirstEnabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Key: "a"}, {Key: "b"}, {Key: "c", Action: func() tea.Cmd { return nil }}})
	assert.Equal(t, 2, m.Selected)

	none := NewMenu([]MenuItem{{Key: "a"}, {Key: "b"}})
	none, cmd := none.Update(key(tea.KeyDown))
	assert.Equal(t, 0, none.Selected)
	assert.Nil(t, cmd)

	empty, cmd := NewMenu(nil).Update(key(tea.KeyDown))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, empty.Selected)
}

func TestMenuButton(t *testing.T) {
	th := theme.Dark()
	assert.Contains(t, MenuButton(th, "QUIZ", true, true, 30), "▸ QUIZ")
	assert.NotContains(t, MenuButton(th, "QUIT", false, true, 30), "▸")
	assert.Contains(t, MenuButton(th, "SOLUTIONS", false, false, 30), "SOLUTIONS")
}

func chosen(t *testing.T, cmd tea.Cmd) OptionChosenMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(OptionChosenMsg)
	require.True(t, ok)
	return msg
}

func TestOptionList_ArrowsAndEnter(t *testing.T) {
	l := NewOptionList(3, []string{"a", "b", "c"})

	l, cmd := l.Update(key(tea.KeyUp))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, l.Selected)

	l, _ = l.Update(key(tea.KeyDown))
	l, _ = l.Update(key(tea.KeyDown))
	l, _ = l.Update(key(tea.KeyDown))
	assert.Equal(t, 2, l.Selected)

	_, cmd = l.Update(key(tea.KeyEnter))
	assert.Equal(t, OptionChosenMsg{Step: 3, Index: 2, Text: "c"}, chosen(t, cmd))
}

func TestOptionList_NumberKeys(t *testing.T) {
	l := NewOptionList(1, []string{"a", "b", "c"})

	_, cmd := l.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	assert.Nil(t, cmd, "out of range numbers are ignored")

	l, cmd = l.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Equal(t, OptionChosenMsg{Step: 1, Index: 1, Text: "b"}, chosen(t, cmd))
	assert.Equal(t, 1, l.Selected)
}

func TestOptionList_SubmittedIgnoresFurtherPicks(t *testing.T) {
	l := NewOptionList(2, []string{"a", "b", "c"})

	l, cmd := l.Update(key(tea.KeyEnter))
	assert.Equal(t, OptionChosenMsg{Step: 2, Index: 0, Text: "a"}, chosen(t, cmd))
	assert.True(t, l.Submitted)

	l, cmd = l.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	l, cmd = l.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, l.Selected, "a submitted list keeps its choice")

	l, _ = l.Update(key(tea.KeyDown))
	assert.Equal(t, 1, l.Selected, "the cursor still moves")
}

func TestOptionList_Empty(t *testing.T) {
	l := NewOptionList(1, nil)
	_, cmd := l.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestOptionList_View(t *testing.T) {
	l := NewOptionList(1, []string{"SaaS / Tech", "Service / Agency"})
	v := l.View(theme.Light(), 40)
	assert.Contains(t, v, "1  SaaS / Tech")
	assert.Contains(t, v, "2  Service / Agency")
}

func TestStepper_View(t *testing.T) {
	s := NewStepper("Question 2 of 6", 2, 6, 36)
	v := s.View(theme.Dark())
	lines := strings.Split(v, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Question 2 of 6")
	assert.Equal(t, 6, strings.Count(lines[1], "━━━━━"), "one segment per step")
	assert.LessOrEqual(t, lipgloss.Width(lines[1]), 36)

	assert.Empty(t, NewStepper("", 1, 0, 10).View(theme.Dark()))
}

func TestTags_Wraps(t *testing.T) {
	th := theme.Dark()
	one := Tags(th, []string{"SaaS / Tech", "Chaos / Excel"}, 80)
	assert.Equal(t, 3, lipgloss.Height(one), "both chips fit on one row")

	wrapped := Tags(th, []string{"SaaS / Tech", "Chaos / Excel"}, 16)
	assert.Equal(t, 6, lipgloss.Height(wrapped))

	assert.Empty(t, Tags(th, nil, 80))
}

func TestButton(t *testing.T) {
	pressed := 0
	b := CTA("Book", func() tea.Cmd {
		pressed++
		return nil
	})
	_, ok := b.Handle(key(tea.KeyEnter))
	assert.True(t, ok)
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(theme.Dark()), "Book")

	_, ok = b.Handle(key('x'))
	assert.False(t, ok)
	assert.Equal(t, 1, pressed)

	b.Key = "c"
	_, ok = b.Handle(key('c'))
	assert.True(t, ok)
	assert.Equal(t, 2, pressed)
}

func TestButton_Disabled(t *testing.T) {
	b := CTA("Book", nil)
	assert.False(t, b.Enabled())
	_, ok := b.Handle(key(tea.KeyEnter))
	assert.False(t, ok)
	assert.Contains(t, b.View(theme.Dark()), "Book")
}
