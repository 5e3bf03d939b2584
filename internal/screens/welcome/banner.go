package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗██╗  ██╗████████╗███████╗███████╗███╗   ██╗
 ██╔════╝██║╚██╗██╔╝╚══██╔══╝██╔════╝██╔════╝████╗  ██║
 ███████╗██║ ╚███╔╝    ██║   █████╗  █████╗  ██╔██╗ ██║
 ╚════██║██║ ██╔██╗    ██║   ██╔══╝  ██╔══╝  ██║╚██╗██║
 ███████║██║██╔╝ ██╗   ██║   ███████╗███████╗██║ ╚████║
 ╚══════╝╚═╝╚═╝  ╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═══╝`

const bannerCompact = "S I X T E E N"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 57

// RenderBanner returns the SIXTEEN banner styled in the primary color.
// Uses a compact fallback for terminals narrower than bannerMinWidth.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
