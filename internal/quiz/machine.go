// Package quiz drives a personality quiz session from the home view
// through paged questions to a classified result.
//
// The Machine is not safe for concurrent use; the TUI owns it on the
// bubbletea update goroutine.
package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sixteen/internal/analytics"
	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
)

// LinkResolver resolves the call-to-action link for a type.
// *content.Content satisfies it.
type LinkResolver interface {
	CTALink(t personality.Type) string
}

// Machine is the quiz state machine.
type Machine struct {
	questions []content.Question
	byID      map[int]content.Question
	steps     [][]content.Question
	cfg       Config
	sink      analytics.Sink
	now       func() time.Time

	view      View
	answers   map[int]string
	sessionID string
}

// NewMachine validates its input and returns a machine in the Home view.
// A nil sink discards events.
func NewMachine(questions []content.Question, cfg Config, sink analytics.Sink) (*Machine, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = analytics.Nop
	}

	byID := make(map[int]content.Question, len(questions))
	for _, q := range questions {
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrInvalidConfig, q.ID)
		}
		byID[q.ID] = q
	}

	qs := make([]content.Question, len(questions))
	copy(qs, questions)

	return &Machine{
		questions: qs,
		byID:      byID,
		steps:     content.Partition(qs, cfg.StepSize),
		cfg:       cfg,
		sink:      sink,
		now:       time.Now,
		view:      Home{},
		answers:   map[int]string{},
	}, nil
}

// Start begins a fresh session. From Quiz or Result it discards the
// running session first.
func (m *Machine) Start() error {
	m.reset()
	m.sessionID = uuid.NewString()
	m.view = Quiz{Step: 0}
	m.emit(analytics.EventSessionStart, "")
	return nil
}

// Answer records value for question id, replacing any earlier answer.
func (m *Machine) Answer(id int, value string) error {
	if _, ok := m.view.(Quiz); !ok {
		return fmt.Errorf("answer in %s view: %w", ViewName(m.view), ErrInvalidTransition)
	}
	q, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("question %d: %w", id, ErrUnknownQuestion)
	}
	if !q.Accepts(value) {
		return fmt.Errorf("question %d value %q: %w", id, value, ErrInvalidValue)
	}
	m.answers[id] = value
	return nil
}

// Advance moves to the next step, or to Result after the last one.
func (m *Machine) Advance() error {
	v, ok := m.view.(Quiz)
	if !ok {
		return fmt.Errorf("advance in %s view: %w", ViewName(m.view), ErrInvalidTransition)
	}
	if m.cfg.RequireComplete && !m.StepComplete() {
		return fmt.Errorf("step %d: %w", v.Step+1, ErrStepIncomplete)
	}

	if v.Step+1 < len(m.steps) {
		m.view = Quiz{Step: v.Step + 1}
		return nil
	}

	tally, typ := personality.Classify(m.answers, m.questions)
	m.view = Result{Type: typ, Tally: tally}
	m.emit(analytics.EventSessionComplete, typ)
	return nil
}

// Restart abandons the session and returns to Home. It is always valid.
func (m *Machine) Restart() error {
	m.reset()
	return nil
}

// ClickCTA records a call-to-action click and returns the link to open.
func (m *Machine) ClickCTA(links LinkResolver) (string, error) {
	r, ok := m.view.(Result)
	if !ok {
		return "", fmt.Errorf("cta click in %s view: %w", ViewName(m.view), ErrInvalidTransition)
	}
	m.emit(analytics.EventCTAClick, r.Type)
	return links.CTALink(r.Type), nil
}

func (m *Machine) reset() {
	m.view = Home{}
	m.answers = map[int]string{}
	m.sessionID = ""
}

func (m *Machine) emit(name analytics.Name, t personality.Type) {
	m.sink.Emit(analytics.Event{
		Name:       name,
		SessionID:  m.sessionID,
		ResultType: string(t),
		Timestamp:  m.now(),
	})
}

// View returns the current view.
func (m *Machine) View() View { return m.view }

// Config returns the pacing configuration.
func (m *Machine) Config() Config { return m.cfg }

// Questions returns every question in order.
func (m *Machine) Questions() []content.Question { return m.questions }

// StepCount returns the number of steps.
func (m *Machine) StepCount() int { return len(m.steps) }

// CurrentStep returns the questions of the current step, or nil outside
// the Quiz view.
func (m *Machine) CurrentStep() []content.Question {
	v, ok := m.view.(Quiz)
	if !ok {
		return nil
	}
	return m.steps[v.Step]
}

// Answers returns a copy of the recorded answers.
func (m *Machine) Answers() map[int]string {
	out := make(map[int]string, len(m.answers))
	for id, v := range m.answers {
		out[id] = v
	}
	return out
}

// AnswerFor returns the recorded answer for id.
func (m *Machine) AnswerFor(id int) (string, bool) {
	v, ok := m.answers[id]
	return v, ok
}

// StepComplete reports whether every question in the current step has an
// answer. It is false outside the Quiz view.
func (m *Machine) StepComplete() bool {
	step := m.CurrentStep()
	if step == nil {
		return false
	}
	for _, q := range step {
		if m.answers[q.ID] == "" {
			return false
		}
	}
	return true
}

// SessionID returns the id of the running session, or "" in Home.
func (m *Machine) SessionID() string { return m.sessionID }

// Progress returns how many questions have answers out of the total.
func (m *Machine) Progress() (answered, total int) {
	return len(m.answers), len(m.questions)
}
