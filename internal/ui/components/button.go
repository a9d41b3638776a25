package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/byond/leadquiz/internal/ui/theme"
)

// Button is a call-to-action bound to a single key. A button without a
// Press action renders dimmed and swallows nothing.
type Button struct {
	Label string
	Key   string
	Press func() tea.Cmd
}

// CTA creates a button pressed with enter.
func CTA(label string, press func() tea.Cmd) Button {
	return Button{Label: label, Key: "enter", Press: press}
}

// Enabled reports whether the button has an action.
func (b Button) Enabled() bool {
	return b.Press != nil
}

// Handle runs the press action when msg is the button's key. The bool
// reports whether the message was consumed.
func (b Button) Handle(msg tea.Msg) (tea.Cmd, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.Enabled() || kmsg.String() != b.Key {
		return nil, false
	}
	return b.Press(), true
}

func (b Button) View(th *theme.Theme) string {
	label := "▸ " + b.Label + " →"
	if b.Enabled() {
		return th.ButtonActive().Render(label)
	}
	return th.ButtonInactive().Render(label)
}
