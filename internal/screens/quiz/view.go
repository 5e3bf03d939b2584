package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/personality"
	qz "github.com/abhisek/sixteen/internal/quiz"
	"github.com/abhisek/sixteen/internal/ui/components"
	"github.com/abhisek/sixteen/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if _, ok := s.machine.View().(qz.Quiz); !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Dimmed.Render("No quiz in progress."))
	}

	cw := min(width-4, 76)
	if cw < 20 {
		cw = 20
	}

	var sections []string

	sections = append(sections, s.progressTrack(cw).View())

	for i, c := range s.choices {
		block := c.View(cw - 4)
		border := theme.Border
		if i == s.focus {
			border = theme.Primary
		}
		sections = append(sections, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(cw).
			Padding(0, 1).
			Render(strings.TrimRight(block, "\n")))
	}

	sections = append(sections, s.renderNext(cw))

	if s.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(s.errMsg))
	}

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("r: restart from the beginning"))

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (s *QuizScreen) renderNext(cw int) string {
	label := "NEXT"
	if v, ok := s.machine.View().(qz.Quiz); ok && v.Step == s.machine.StepCount()-1 {
		label = "SEE RESULT"
	}
	hint := "answer every question first"
	if len(s.choices) == 1 {
		hint = "pick an answer first"
	}
	btn := components.NewButton(label, "Enter", s.canAdvance()).WithHint(hint)
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).Render(btn.View())
}

// progressTrack marks every question by its answer and brackets the
// current step.
func (s *QuizScreen) progressTrack(cw int) components.ProgressTrack {
	questions := s.machine.Questions()
	marks := make([]components.Mark, len(questions))
	for i, q := range questions {
		v, ok := s.machine.AnswerFor(q.ID)
		switch {
		case !ok:
			marks[i] = components.MarkOpen
		case v == personality.NoPreference:
			marks[i] = components.MarkNone
		case v == string(q.Axis.First()):
			marks[i] = components.MarkFirst
		default:
			marks[i] = components.MarkSecond
		}
	}

	start := s.step * s.machine.Config().StepSize
	return components.ProgressTrack{
		Marks:     marks,
		StepStart: start,
		StepEnd:   start + len(s.choices),
		Width:     cw,
	}
}
