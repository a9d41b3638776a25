package screen

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/byond/leadquiz/internal/analysis"
	"github.com/byond/leadquiz/internal/config"
	"github.com/byond/leadquiz/internal/i18n"
	"github.com/byond/leadquiz/internal/ui/layout"
	"github.com/byond/leadquiz/internal/ui/theme"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Disposer is implemented by screens that hold resources or pending work.
// The router calls Dispose when the screen leaves the stack.
type Disposer interface {
	Dispose()
}

// LocaleChangedMsg is sent to the active screen after the app switched
// Env.Bundle. Screens caching localized content rebuild it.
type LocaleChangedMsg struct{}

// Env is the state shared by every screen of one app instance. Theme and
// Bundle are swapped in place by the app when the user toggles them.
type Env struct {
	Theme    *theme.Theme
	Bundle   *i18n.Bundle
	Registry *i18n.Registry
	Config   *config.Config
	Logger   *zap.Logger
	Analysis analysis.Config
	Lookup   *analysis.Lookup
}

// T resolves a message key in the active locale.
func (e *Env) T(key string) string {
	return e.Bundle.T(key)
}

// Tf formats a message in the active locale.
func (e *Env) Tf(key string, args ...any) string {
	return e.Bundle.Tf(key, args...)
}

// Log returns the logger, never nil.
func (e *Env) Log() *zap.Logger {
	if e == nil || e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Reload swaps in a freshly loaded registry and its lookup, staying on the
// active locale while the new registry still carries it. Running quiz
// sessions keep the lookup they started with.
func (e *Env) Reload(reg *i18n.Registry) {
	locale := e.Bundle.Locale()
	e.Registry = reg
	e.Lookup = reg.Lookup()
	if b, err := reg.Get(locale); err == nil {
		e.Bundle = b
		return
	}
	e.Bundle = reg.Match(locale, e.Config.Locale)
}

// NewGenerator builds an analysis generator over the shared lookup.
func (e *Env) NewGenerator() *analysis.Generator {
	return analysis.NewGenerator(e.Analysis, analysis.WithLookup(e.Lookup))
}

// NewEnv assembles the shared state. The locale is chosen from cfg.Locale,
// then LC_ALL, LC_MESSAGES and LANG.
func NewEnv(cfg *config.Config, reg *i18n.Registry, logger *zap.Logger) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	prefs := []string{cfg.Locale, os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")}
	return &Env{
		Theme:    theme.ByName(cfg.Theme),
		Bundle:   reg.Match(prefs...),
		Registry: reg,
		Config:   cfg,
		Logger:   logger,
		Analysis: analysis.DefaultConfig().WithPoolSize(cfg.Analysis.PoolSize),
		Lookup:   reg.Lookup(),
	}
}
