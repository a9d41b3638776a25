package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/ui/theme"
)

// MenuItem is one entry of a navigation menu. Key is the message key of
// its label; an item without Action is disabled.
type MenuItem struct {
	Key    string
	Action func() tea.Cmd
}

func (i MenuItem) Enabled() bool {
	return i.Action != nil
}

// Menu is a vertical navigation menu. The cursor wraps around and skips
// disabled items; number keys jump to an item and activate it.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if len(items) > 0 && !items[0].Enabled() {
		m.move(1)
	}
	return m
}

func (m *Menu) move(delta int) {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := ((m.Selected+delta*step)%n + n) % n
		if m.Items[i].Enabled() {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || !m.Items[i].Enabled() {
		return nil
	}
	return m.Items[i].Action()
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "shift+tab":
		m.move(-1)
		return m, nil
	case "down", "j", "tab":
		m.move(1)
		return m, nil
	case "enter", "space":
		return m, m.activate(m.Selected)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) && m.Items[n-1].Enabled() {
		m.Selected = n - 1
		return m, m.activate(m.Selected)
	}
	return m, nil
}

// MenuButton renders one menu entry. The selected entry is filled; a
// disabled entry is dimmed.
func MenuButton(th *theme.Theme, label string, selected, enabled bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case selected:
		return style.
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(th.Primary).
			BorderForeground(th.Primary).
			Render("▸ " + label)
	case !enabled:
		return style.
			Foreground(th.TextDim).
			BorderForeground(th.Border).
			Faint(true).
			Render(label)
	default:
		return style.
			Foreground(th.Text).
			BorderForeground(th.Border).
			Render(label)
	}
}
