package contact

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byond/leadquiz/internal/config"
	"github.com/byond/leadquiz/internal/i18n"
	"github.com/byond/leadquiz/internal/screen"
)

func testEnv(t *testing.T) *screen.Env {
	t.Helper()
	reg, err := i18n.Embedded()
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	cfg.Locale = "en"
	return screen.NewEnv(cfg, reg, nil)
}

func TestView(t *testing.T) {
	env := testEnv(t)

	menu := New(env, SourceMenu)
	assert.Nil(t, menu.Init())
	v := menu.View(100, 40)
	assert.Contains(t, v, "Let's talk.")
	assert.Contains(t, v, "Book a slot")
	assert.Contains(t, v, "outlook.office.com")
	assert.NotContains(t, v, "Thanks for your answers")

	fromQuiz := New(env, SourceQuizComplete)
	assert.Equal(t, SourceQuizComplete, fromQuiz.Source())
	assert.Contains(t, fromQuiz.View(100, 40), "Thanks for your answers")
}

func TestBookingLinkStaysOnOneLine(t *testing.T) {
	c := New(testEnv(t), SourceMenu)

	assert.Contains(t, c.View(100, 40), config.DefaultBookingURL)
	assert.Contains(t, c.View(200, 40), config.DefaultBookingURL)

	narrow := c.View(72, 30)
	assert.NotContains(t, narrow, config.DefaultBookingURL)
	assert.Contains(t, narrow, "https://outlook.office.com/book/")
	assert.Contains(t, narrow, "…")
}

func TestEnterCopiesLink(t *testing.T) {
	c := New(testEnv(t), SourceMenu)
	assert.NotContains(t, c.View(100, 40), "Link copied")

	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Contains(t, c.View(100, 40), "Link copied to clipboard.")

	_, cmd = c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}

func TestTitleFollowsLocale(t *testing.T) {
	env := testEnv(t)
	c := New(env, SourceMenu)
	assert.Equal(t, "Contact", c.Title())

	de, err := env.Registry.Get("de")
	require.NoError(t, err)
	env.Bundle = de
	assert.Equal(t, "Kontakt", c.Title())
	assert.Equal(t, "Link kopieren", c.KeyHints()[0].Description)
}
