package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/byond/leadquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRan  bool
	disposed int
	got      []tea.Msg
}

func (s *stubScreen) Dispose() { s.disposed++ }

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestPopDisposes(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Update(PopScreenMsg{})

	if s2.disposed != 1 {
		t.Errorf("expected popped screen disposed once, got %d", s2.disposed)
	}
	if s1.disposed != 0 {
		t.Error("remaining screen must not be disposed")
	}

	r.Pop()
	if s1.disposed != 0 {
		t.Error("pop at bottom must not dispose the root screen")
	}
}

func TestReplaceDisposesOld(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if s1.disposed != 1 {
		t.Errorf("expected replaced screen disposed once, got %d", s1.disposed)
	}

	r.Replace(s2)
	if s2.disposed != 0 {
		t.Error("replacing a screen with itself must not dispose it")
	}
}

func TestCloseDisposesAll(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Close()

	if s1.disposed != 1 || s2.disposed != 1 {
		t.Errorf("expected every screen disposed once, got %d and %d", s1.disposed, s2.disposed)
	}
}

// plainScreen does not implement screen.Disposer.
type plainScreen struct{}

func (p plainScreen) Init() tea.Cmd                          { return nil }
func (p plainScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return p, nil }
func (p plainScreen) View(int, int) string                   { return "" }
func (p plainScreen) Title() string                          { return "plain" }

func TestPopWithoutDisposer(t *testing.T) {
	r := New(&stubScreen{title: "root"})
	r.Push(plainScreen{})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

type pingMsg struct{}

func TestUpdateReachesActiveOnly(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Update(pingMsg{})

	if len(s1.got) != 0 {
		t.Errorf("screen below the top received %d messages", len(s1.got))
	}
	if len(s2.got) != 1 {
		t.Errorf("active screen received %d messages, want 1", len(s2.got))
	}
}

func TestBroadcast(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Broadcast(pingMsg{})

	if len(s1.got) != 1 || len(s2.got) != 1 {
		t.Errorf("expected every screen to get the message once, got %d and %d", len(s1.got), len(s2.got))
	}
}

func TestTrail(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Quiz"})
	r.Replace(&stubScreen{title: "Contact"})

	got := r.Trail()
	if len(got) != 2 || got[0] != "Home" || got[1] != "Contact" {
		t.Errorf("unexpected trail %v", got)
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := New(&stubScreen{title: "Home"}, WithLogger(zap.New(core)))

	r.Push(&stubScreen{title: "Quiz"})
	r.Replace(&stubScreen{title: "Contact"})
	r.Pop()

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 navigation entries, got %d", len(entries))
	}
	if entries[1].Message != "screen replaced" || entries[1].ContextMap()["to"] != "Contact" {
		t.Errorf("unexpected replace entry: %+v", entries[1])
	}
	if entries[2].ContextMap()["depth"] != int64(1) {
		t.Errorf("expected depth 1 after pop, got %v", entries[2].ContextMap()["depth"])
	}
}

func TestWithLoggerNil(t *testing.T) {
	r := New(&stubScreen{title: "Home"}, WithLogger(nil))
	r.Push(&stubScreen{title: "Quiz"})
	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
}
