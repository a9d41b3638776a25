package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// resultReadyMsg is sent once the processing delay of a session has passed.
// It carries the session id so a stale timer cannot complete a newer session.
type resultReadyMsg struct {
	SessionID string
}

// resultAfter schedules resultReadyMsg for sessionID.
func resultAfter(delay time.Duration, sessionID string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return resultReadyMsg{SessionID: sessionID}
	})
}
