package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerform/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ██████╗ ███████╗███████╗██████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗
 ██║     ███████║██████╔╝█████╗  █████╗  ██████╔╝
 ██║     ██╔══██║██╔══██╗██╔══╝  ██╔══╝  ██╔══██╗
 ╚██████╗██║  ██║██║  ██║███████╗███████╗██║  ██║
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝`

const bannerCompact = "C A R E E R"

// RenderBanner returns the banner in the primary color, falling back to
// spaced letters below 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
