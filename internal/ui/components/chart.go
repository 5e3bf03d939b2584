package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/theme"
)

// AxisRow is one line of the axis chart: two opposing poles and their
// counts out of Max.
type AxisRow struct {
	FirstLabel  string
	SecondLabel string
	First       int
	Second      int
	Max         int
	Winner      string // label rendered bold
}

// AxisChart renders a diverging bar chart, one row per axis. Each side is
// scaled to the row's own Max so axes with different question counts
// remain comparable.
func AxisChart(rows []AxisRow, width int) string {
	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.FirstLabel), lipgloss.Width(r.SecondLabel))
	}
	// label + " n " + bar | bar + " n " + label
	half := (width - 2*labelW - 10) / 2
	if half < 3 {
		half = 3
	}

	var lines []string
	for _, r := range rows {
		lines = append(lines, axisLine(r, labelW, half))
	}
	return strings.Join(lines, "\n")
}

func axisLine(r AxisRow, labelW, half int) string {
	left := scale(r.First, r.Max, half)
	right := scale(r.Second, r.Max, half)

	firstStyle := lipgloss.NewStyle().Foreground(theme.AxisFirst)
	secondStyle := lipgloss.NewStyle().Foreground(theme.AxisSecond)
	if r.Winner == r.FirstLabel {
		firstStyle = firstStyle.Bold(true)
	} else if r.Winner == r.SecondLabel {
		secondStyle = secondStyle.Bold(true)
	}

	leftBar := strings.Repeat(" ", half-left) +
		lipgloss.NewStyle().Background(theme.AxisFirst).Render(strings.Repeat(" ", left))
	rightBar := lipgloss.NewStyle().Background(theme.AxisSecond).Render(strings.Repeat(" ", right)) +
		strings.Repeat(" ", half-right)

	return fmt.Sprintf("%s %d %s│%s %d %s",
		firstStyle.Render(padLeft(r.FirstLabel, labelW)),
		r.First,
		leftBar,
		rightBar,
		r.Second,
		secondStyle.Render(r.SecondLabel),
	)
}

func scale(n, maxN, width int) int {
	if maxN <= 0 || n <= 0 {
		return 0
	}
	w := n * width / maxN
	if w > width {
		w = width
	}
	return w
}

func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}
