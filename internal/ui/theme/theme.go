// Package theme holds the palette and shared styles of the quiz UI.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/personality"
)

// Palette: pink and teal on navy, with arcade accents.
var (
	Primary   = lipgloss.Color("#EC4899") // Pink
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15") // selected buttons, type code
	ArcadeCyan   = lipgloss.Color("#22D3EE") // info boxes
	LineGreen    = lipgloss.Color("#06C755") // LINE call to action
)

// The first letter of every axis is drawn in AxisFirst and the second in
// AxisSecond, so charts and the progress track read the same on each axis.
var (
	AxisFirst  = Secondary
	AxisSecond = Primary
)

// LetterColor returns the pole color for l.
func LetterColor(l personality.Letter) color.Color {
	a, ok := personality.AxisOf(l)
	switch {
	case !ok:
		return TextDim
	case l == a.First():
		return AxisFirst
	default:
		return AxisSecond
	}
}

// TypeCode renders a type code with each letter in its pole color.
func TypeCode(t personality.Type) string {
	var out string
	for _, a := range personality.Axes {
		l := t.Letter(a)
		out += lipgloss.NewStyle().Foreground(LetterColor(l)).Bold(true).Render(string(l))
	}
	return out
}

// Option and message states.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Chosen = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Secondary).
		Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(TextDim)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Buttons.
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
