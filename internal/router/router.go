package router

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/byond/leadquiz/internal/screen"
)

// PushScreenMsg asks the router to open Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to go back one screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks the router to swap the current screen for Screen
// without growing the stack. The quiz hands over to contact this way, so
// going back from contact lands on home.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is the navigation stack of the app. Screens leaving the stack are
// disposed if they implement screen.Disposer.
type Router struct {
	stack []screen.Screen
	log   *zap.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger logs every navigation step at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Router with initial at the bottom of the stack.
func New(initial screen.Screen, opts ...Option) *Router {
	r := &Router{
		stack: []screen.Screen{initial},
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Push opens s on top of the stack and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	r.log.Debug("screen pushed", zap.String("screen", s.Title()), zap.Int("depth", len(r.stack)))
	return s.Init()
}

// Pop closes the top screen. The bottom screen is never popped.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	dispose(top)
	r.log.Debug("screen popped", zap.String("screen", top.Title()), zap.Int("depth", len(r.stack)))
	return nil
}

// Replace swaps the top screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	old := r.stack[len(r.stack)-1]
	r.stack[len(r.stack)-1] = s
	if old != s {
		dispose(old)
	}
	r.log.Debug("screen replaced",
		zap.String("from", old.Title()),
		zap.String("to", s.Title()),
		zap.Int("depth", len(r.stack)))
	return s.Init()
}

// Close disposes every screen on the stack, top first.
func (r *Router) Close() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		dispose(r.stack[i])
	}
}

func dispose(s screen.Screen) {
	if d, ok := s.(screen.Disposer); ok {
		d.Dispose()
	}
}

func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail returns the titles of the stacked screens, bottom first.
func (r *Router) Trail() []string {
	trail := make([]string, len(r.stack))
	for i, s := range r.stack {
		trail[i] = s.Title()
	}
	return trail
}

// Broadcast delivers msg to every screen on the stack, not only the active
// one. Used for app-wide changes such as a locale switch.
func (r *Router) Broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.stack))
	for i, s := range r.stack {
		updated, cmd := s.Update(msg)
		r.stack[i] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
