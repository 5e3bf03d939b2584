package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/components"
	"github.com/abhisek/sixteen/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = `███████╗██╗██╗  ██╗████████╗███████╗███████╗███╗   ██╗
██╔════╝██║╚██╗██╔╝╚══██╔══╝██╔════╝██╔════╝████╗  ██║
███████╗██║ ╚███╔╝    ██║   █████╗  █████╗  ██╔██╗ ██║
╚════██║██║ ██╔██╗    ██║   ██╔══╝  ██╔══╝  ██║╚██╗██║
███████║██║██╔╝ ██╗   ██║   ███████╗███████╗██║ ╚████║
╚══════╝╚═╝╚═╝  ╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═══╝`

const arcadeTitleCompact = "S · I · X · T · E · E · N"

// titleMinWidth is the narrowest content width that fits arcadeTitleFull.
const titleMinWidth = 56

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact || cw < titleMinWidth {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the event-log stats in a bordered box matching
// content width.
func renderStatsBar(stats Stats, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	typeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var done, top string
	if compact {
		done = doneStyle.Render(fmt.Sprintf("★%d", stats.Completed))
	} else {
		done = doneStyle.Render(fmt.Sprintf("★ %d COMPLETED", stats.Completed))
	}
	switch {
	case !stats.TopType.Valid():
		top = dimStyle.Render("◆ NO RESULTS YET")
	case compact:
		top = typeStyle.Render("◆" + string(stats.TopType))
	default:
		top = typeStyle.Render(fmt.Sprintf("◆ MOST COMMON %s", stats.TopType))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(done + "  " + top)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		tone := components.ToneIdle
		if i == selected {
			tone = components.ToneSelected
		}
		buttons = append(buttons, components.ArcadeButton(label, tone, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderCompassBox renders the compass centered in a box matching content width.
func renderCompassBox(compass string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(compass)
}
