// Package quiz is the question screen. It renders the current step of the
// quiz machine and forwards answers and navigation to it.
package quiz

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
	qz "github.com/abhisek/sixteen/internal/quiz"
	"github.com/abhisek/sixteen/internal/screen"
	"github.com/abhisek/sixteen/internal/ui/components"
	"github.com/abhisek/sixteen/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz session.
type QuizScreen struct {
	machine *qz.Machine
	nav     screen.Navigator
	keys    keyMap

	step    int // step the choices were built for
	focus   int // index into choices
	choices []components.Choice

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving machine. The machine must already be
// in the Quiz view.
func New(machine *qz.Machine, nav screen.Navigator) *QuizScreen {
	s := &QuizScreen{
		machine: machine,
		nav:     nav,
		keys:    defaultKeyMap(),
		step:    -1,
	}
	s.syncStep()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	v, ok := s.machine.View().(qz.Quiz)
	if !ok {
		return ""
	}
	if s.machine.Config().StepSize == 1 {
		return fmt.Sprintf("Q %d/%d", v.Step+1, s.machine.StepCount())
	}
	return fmt.Sprintf("Step %d/%d", v.Step+1, s.machine.StepCount())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "1/2/0", Description: "Pick"},
	}
	if len(s.choices) > 1 {
		h := s.keys.Down.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	if s.canAdvance() {
		h := s.keys.Advance.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	h := s.keys.Restart.Help()
	hints = append(hints,
		layout.KeyHint{Key: h.Key, Description: h.Desc},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
	return hints
}

// canAdvance reports whether Enter would be accepted right now.
func (s *QuizScreen) canAdvance() bool {
	return !s.machine.Config().RequireComplete || s.machine.StepComplete()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceTickMsg:
		return s.handleAdvanceTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Restart):
		return s, s.restart()
	case key.Matches(msg, s.keys.Advance):
		return s, s.advance()
	case key.Matches(msg, s.keys.Up):
		s.moveFocus(-1)
		return s, nil
	case key.Matches(msg, s.keys.Down):
		s.moveFocus(1)
		return s, nil
	}

	if len(s.choices) == 0 {
		return s, nil
	}
	var picked string
	s.choices[s.focus], picked = s.choices[s.focus].Update(msg)
	if picked == "" {
		return s, nil
	}
	return s, s.answer(picked)
}

func (s *QuizScreen) moveFocus(delta int) {
	if len(s.choices) == 0 {
		return
	}
	s.choices[s.focus].Focused = false
	s.focus = (s.focus + delta + len(s.choices)) % len(s.choices)
	s.choices[s.focus].Focused = true
}

func (s *QuizScreen) answer(value string) tea.Cmd {
	c := s.choices[s.focus]
	q := s.machine.CurrentStep()[s.focus]
	if err := s.machine.Answer(q.ID, value); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	c.Chosen = value
	s.choices[s.focus] = c

	if !s.machine.StepComplete() {
		// Move on to the next unanswered question of the step.
		for i := 1; i < len(s.choices); i++ {
			j := (s.focus + i) % len(s.choices)
			if s.choices[j].Chosen == "" {
				s.moveFocus(j - s.focus)
				break
			}
		}
		return nil
	}

	cfg := s.machine.Config()
	if !cfg.AutoAdvance {
		return nil
	}
	tick := advanceTickMsg{SessionID: s.machine.SessionID(), Step: s.step}
	return tea.Tick(cfg.AdvanceDelay, func(time.Time) tea.Msg { return tick })
}

func (s *QuizScreen) handleAdvanceTick(msg advanceTickMsg) (screen.Screen, tea.Cmd) {
	v, ok := s.machine.View().(qz.Quiz)
	if !ok || v.Step != msg.Step || s.machine.SessionID() != msg.SessionID {
		return s, nil
	}
	return s, s.advance()
}

func (s *QuizScreen) advance() tea.Cmd {
	err := s.machine.Advance()
	switch {
	case errors.Is(err, qz.ErrStepIncomplete):
		if len(s.choices) == 1 {
			s.errMsg = "Pick an answer to continue (0 for no preference)."
		} else {
			s.errMsg = "Answer every question on this page to continue."
		}
		return nil
	case err != nil:
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""

	if _, ok := s.machine.View().(qz.Quiz); ok {
		s.syncStep()
		return nil
	}
	return s.nav.ForView(s.machine.View())
}

func (s *QuizScreen) restart() tea.Cmd {
	_ = s.machine.Restart()
	return s.nav.ForView(s.machine.View())
}

// syncStep rebuilds the choices when the machine has moved to a new step.
func (s *QuizScreen) syncStep() {
	v, ok := s.machine.View().(qz.Quiz)
	if !ok || v.Step == s.step {
		return
	}
	s.step = v.Step
	s.focus = 0

	step := s.machine.CurrentStep()
	s.choices = make([]components.Choice, len(step))
	for i, q := range step {
		chosen, _ := s.machine.AnswerFor(q.ID)
		s.choices[i] = newChoice(q, chosen)
	}
	if len(s.choices) > 0 {
		s.choices[0].Focused = true
	}
}

func newChoice(q content.Question, chosen string) components.Choice {
	return components.NewChoice(
		q.Text,
		[2]string{q.Options[0].Text, q.Options[1].Text},
		[2]string{string(q.Options[0].Value), string(q.Options[1].Value)},
		personality.NoPreference,
		chosen,
	)
}
