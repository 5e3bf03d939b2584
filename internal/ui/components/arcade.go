package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/theme"
)

// ContentWidth is the shared inner width of the home cabinet sections,
// clamped to [20, 60].
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame centers content inside a double border drawn in accent.
func CabinetFrame(content string, width, height int, accent color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Tone selects an ArcadeButton color scheme.
type Tone int

const (
	ToneIdle Tone = iota
	ToneSelected
	ToneLine // the messaging-app call to action
)

// ArcadeButton renders a bordered, centered button of the given width.
func ArcadeButton(label string, tone Tone, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch tone {
	case ToneSelected:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ToneLine:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.LineGreen).
			BorderForeground(theme.LineGreen).
			Render(label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
