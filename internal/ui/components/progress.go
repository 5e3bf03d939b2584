package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/theme"
)

// Mark is the state of one question slot in a ProgressTrack.
type Mark int

const (
	MarkOpen   Mark = iota // unanswered
	MarkFirst              // answered with the axis's first letter
	MarkSecond             // answered with the axis's second letter
	MarkNone               // answered with no preference
)

// ProgressTrack shows one cell per question, coloured by answer, with the
// questions of the current step bracketed.
type ProgressTrack struct {
	Marks     []Mark
	StepStart int // first index of the current step
	StepEnd   int // one past the last index of the current step
	Width     int
}

// Answered returns the number of non-open marks.
func (p ProgressTrack) Answered() int {
	n := 0
	for _, m := range p.Marks {
		if m != MarkOpen {
			n++
		}
	}
	return n
}

func (p ProgressTrack) View() string {
	total := len(p.Marks)
	label := fmt.Sprintf("%d/%d answered", p.Answered(), total)
	if total == 0 {
		return theme.Dimmed.Render(label)
	}

	// Two columns per cell plus the brackets; fall back to one column.
	cellW := 2
	if total*cellW+2+lipgloss.Width(label)+2 > p.Width {
		cellW = 1
	}

	var b strings.Builder
	for i, m := range p.Marks {
		switch {
		case i == p.StepStart:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("["))
		case i > 0 && i != p.StepEnd && cellW == 2:
			b.WriteString(" ")
		}
		b.WriteString(markStyle(m).Render(strings.Repeat(markGlyph(m), cellW)))
		if i == p.StepEnd-1 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("]"))
		}
	}

	return b.String() + "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}

func markGlyph(m Mark) string {
	switch m {
	case MarkFirst, MarkSecond:
		return "█"
	case MarkNone:
		return "▒"
	}
	return "░"
}

func markStyle(m Mark) lipgloss.Style {
	switch m {
	case MarkFirst:
		return lipgloss.NewStyle().Foreground(theme.AxisFirst)
	case MarkSecond:
		return lipgloss.NewStyle().Foreground(theme.AxisSecond)
	case MarkNone:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	return lipgloss.NewStyle().Foreground(theme.Border)
}
