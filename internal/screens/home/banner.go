package home

import (
	"charm.land/lipgloss/v2"

	"github.com/esvanberg/voctrain/internal/ui/theme"
)

const bannerArt = `
 ██╗   ██╗ ██████╗  ██████╗████████╗██████╗  █████╗ ██╗███╗   ██╗
 ██║   ██║██╔═══██╗██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██║████╗  ██║
 ██║   ██║██║   ██║██║        ██║   ██████╔╝███████║██║██╔██╗ ██║
 ╚██╗ ██╔╝██║   ██║██║        ██║   ██╔══██╗██╔══██║██║██║╚██╗██║
  ╚████╔╝ ╚██████╔╝╚██████╗   ██║   ██║  ██║██║  ██║██║██║ ╚████║
   ╚═══╝   ╚═════╝  ╚═════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝`

const bannerCompact = "V O C T R A I N"

// RenderBanner returns the VOCTRAIN banner styled in the primary
// color, with a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
