package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/personality"
	"github.com/abhisek/sixteen/internal/ui/theme"
)

// RenderCompass draws the four axes with the letters of highlight lit up.
// An invalid highlight draws every letter in the same dim style.
func RenderCompass(highlight personality.Type) string {
	lit := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	frame := lipgloss.NewStyle().Foreground(theme.Primary)

	letter := func(l personality.Letter) string {
		if highlight.Valid() {
			if a, ok := personality.AxisOf(l); ok && highlight.Letter(a) == l {
				return lit.Render(string(l))
			}
		}
		return dim.Render(string(l))
	}

	var rows []string
	rows = append(rows, frame.Render("╭───────────╮"))
	for _, a := range personality.Axes {
		rows = append(rows,
			frame.Render("│  ")+letter(a.First())+frame.Render("  ┃  ")+letter(a.Second())+frame.Render("  │"))
	}
	rows = append(rows, frame.Render("╰───────────╯"))
	return strings.Join(rows, "\n")
}
