package solutions

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byond/leadquiz/internal/catalog"
	"github.com/byond/leadquiz/internal/config"
	"github.com/byond/leadquiz/internal/i18n"
	"github.com/byond/leadquiz/internal/screen"
)

func newTestSolutions(t *testing.T) *SolutionsScreen {
	t.Helper()
	reg, err := i18n.Embedded()
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	cfg.Locale = "en"
	return New(screen.NewEnv(cfg, reg, nil))
}

func press(s *SolutionsScreen, k tea.KeyPressMsg) tea.Cmd {
	_, cmd := s.Update(k)
	return cmd
}

func TestFilterCycles(t *testing.T) {
	s := newTestSolutions(t)
	assert.Equal(t, catalog.CategoryAll, s.Category())

	press(s, tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, catalog.Categories()[1], s.Category())

	press(s, tea.KeyPressMsg{Code: tea.KeyLeft})
	press(s, tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, catalog.Categories()[len(catalog.Categories())-1], s.Category(), "wraps around")

	press(s, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, catalog.CategoryAll, s.Category())
}

func TestFilterView(t *testing.T) {
	s := newTestSolutions(t)
	for s.Category() != catalog.CategoryFinance {
		press(s, tea.KeyPressMsg{Code: tea.KeyTab})
	}

	v := s.View(100, 80)
	assert.Contains(t, v, "[Finance]")
	assert.Contains(t, v, "Automated dunning")
	assert.Contains(t, v, "ROI effect: -30% days sales outstanding")
	assert.NotContains(t, v, "Lead qualification on autopilot")
	assert.Contains(t, v, "Engagement models")
	assert.Contains(t, v, "from €9,900")
	assert.Contains(t, v, "Custom", "package without price shows the custom label")
	assert.Contains(t, v, "✓ KPI measurement")
}

func TestScroll(t *testing.T) {
	s := newTestSolutions(t)

	press(s, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.scrollOffset)

	for i := 0; i < 50; i++ {
		press(s, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, s.blockCount()-1, s.scrollOffset, "stops at the last block")

	press(s, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 0, s.scrollOffset, "filter change resets scrolling")
}

func TestShortTerminalShowsMore(t *testing.T) {
	s := newTestSolutions(t)
	assert.Contains(t, s.View(100, 24), "more")
}

func TestTitleAndHints(t *testing.T) {
	s := newTestSolutions(t)
	assert.Nil(t, press(s, tea.KeyPressMsg{Code: tea.KeyEscape}), "back navigation belongs to the app")
	assert.Equal(t, "Solutions", s.Title())
	assert.Len(t, s.KeyHints(), 3)
}
