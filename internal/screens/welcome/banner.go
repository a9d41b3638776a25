package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/byond/leadquiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗ ██████╗ ███╗   ██╗██████╗
 ██╔══██╗╚██╗ ██╔╝██╔═══██╗████╗  ██║██╔══██╗
 ██████╔╝ ╚████╔╝ ██║   ██║██╔██╗ ██║██║  ██║
 ██╔══██╗  ╚██╔╝  ██║   ██║██║╚██╗██║██║  ██║
 ██████╔╝   ██║   ╚██████╔╝██║ ╚████║██████╔╝
 ╚═════╝    ╚═╝    ╚═════╝ ╚═╝  ╚═══╝╚═════╝`

const bannerCompact = "B Y O N D"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 48

// RenderBanner returns the wordmark in the theme's primary color, with a
// compact fallback for narrow terminals.
func RenderBanner(th *theme.Theme, width int) string {
	style := lipgloss.NewStyle().
		Foreground(th.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
