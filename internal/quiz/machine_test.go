package quiz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/sixteen/internal/analytics"
	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
)

func defaultContent(t *testing.T) *content.Content {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	return c
}

func newTestMachine(t *testing.T, cfg Config) (*Machine, *analytics.Recorded) {
	t.Helper()
	rec := &analytics.Recorded{}
	m, err := NewMachine(defaultContent(t).Questions, cfg, rec)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}
	return m, rec
}

// answerStep answers every question of the current step with pick.
func answerStep(t *testing.T, m *Machine, pick func(content.Question) string) {
	t.Helper()
	for _, q := range m.CurrentStep() {
		if err := m.Answer(q.ID, pick(q)); err != nil {
			t.Fatalf("answer %d: %v", q.ID, err)
		}
	}
}

func runToResult(t *testing.T, m *Machine, pick func(content.Question) string) Result {
	t.Helper()
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for {
		if _, ok := m.View().(Quiz); !ok {
			break
		}
		answerStep(t, m, pick)
		if err := m.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	r, ok := m.View().(Result)
	if !ok {
		t.Fatalf("view = %s, want result", ViewName(m.View()))
	}
	return r
}

func TestNewMachine_Rejects(t *testing.T) {
	qs := defaultContent(t).Questions

	tests := []struct {
		name      string
		questions []content.Question
		cfg       Config
	}{
		{"no questions", nil, PerQuestion()},
		{"zero step", qs, Config{StepSize: 0}},
		{"negative delay", qs, Config{StepSize: 1, AdvanceDelay: -1}},
		{"duplicate id", append([]content.Question{qs[0]}, qs...), PerQuestion()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMachine(tt.questions, tt.cfg, nil)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestMachine_StartsAtHome(t *testing.T) {
	m, rec := newTestMachine(t, PerQuestion())
	if _, ok := m.View().(Home); !ok {
		t.Fatalf("initial view = %s, want home", ViewName(m.View()))
	}
	if m.SessionID() != "" {
		t.Errorf("session id before start = %q, want empty", m.SessionID())
	}
	if len(rec.Events()) != 0 {
		t.Errorf("events before start = %v, want none", rec.Names())
	}
}

func TestMachine_StartEmitsAndEntersFirstStep(t *testing.T) {
	m, rec := newTestMachine(t, PerQuestion())
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if diff := cmp.Diff(View(Quiz{Step: 0}), m.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
	if m.SessionID() == "" {
		t.Error("expected a session id after start")
	}

	events := rec.Events()
	if len(events) != 1 || events[0].Name != analytics.EventSessionStart {
		t.Fatalf("events = %v, want [diagnosis_start]", rec.Names())
	}
	if events[0].SessionID != m.SessionID() {
		t.Errorf("event session = %q, want %q", events[0].SessionID, m.SessionID())
	}
	if events[0].ResultType != "" {
		t.Errorf("start event carries result type %q", events[0].ResultType)
	}
}

func TestMachine_RoundTripAllTypes(t *testing.T) {
	for _, want := range personality.AllTypes() {
		for _, cfg := range []Config{PerQuestion(), PerStep()} {
			m, rec := newTestMachine(t, cfg)
			r := runToResult(t, m, func(q content.Question) string {
				return string(want.Letter(q.Axis))
			})
			if r.Type != want {
				t.Errorf("step %d: type = %s, want %s", cfg.StepSize, r.Type, want)
			}

			names := rec.Names()
			wantNames := []analytics.Name{analytics.EventSessionStart, analytics.EventSessionComplete}
			if diff := cmp.Diff(wantNames, names); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			if got := rec.Events()[1].ResultType; got != string(want) {
				t.Errorf("complete event type = %q, want %s", got, want)
			}
		}
	}
}

func TestMachine_AllNoPreferenceIsESTJ(t *testing.T) {
	m, _ := newTestMachine(t, PerStep())
	r := runToResult(t, m, func(content.Question) string { return personality.NoPreference })
	if r.Type != "ESTJ" {
		t.Errorf("type = %s, want ESTJ", r.Type)
	}
	for _, l := range personality.Letters {
		if n := r.Tally.Count(l); n != 0 {
			t.Errorf("count[%s] = %d, want 0", l, n)
		}
	}
}

func TestMachine_PerQuestionRequiresAnswer(t *testing.T) {
	m, rec := newTestMachine(t, PerQuestion())
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < m.StepCount(); i++ {
		if err := m.Advance(); !errors.Is(err, ErrStepIncomplete) {
			t.Fatalf("advance %d without answer: err = %v, want ErrStepIncomplete", i, err)
		}
	}
	if diff := cmp.Diff(View(Quiz{Step: 0}), m.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
	for _, n := range rec.Names() {
		if n == analytics.EventSessionComplete {
			t.Fatal("diagnosis_complete emitted for an unanswered session")
		}
	}

	q := m.CurrentStep()[0]
	if err := m.Answer(q.ID, personality.NoPreference); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := m.Advance(); err != nil {
		t.Fatalf("advance after no-preference answer: %v", err)
	}
	if diff := cmp.Diff(View(Quiz{Step: 1}), m.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestMachine_PerStepGate(t *testing.T) {
	m, rec := newTestMachine(t, PerStep())
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	step := m.CurrentStep()
	if len(step) != DefaultStepSize {
		t.Fatalf("step size = %d, want %d", len(step), DefaultStepSize)
	}
	for _, q := range step[:len(step)-1] {
		if err := m.Answer(q.ID, string(q.Options[0].Value)); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if m.StepComplete() {
		t.Error("StepComplete with one question unanswered")
	}

	before := m.Answers()
	if err := m.Advance(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("advance err = %v, want ErrStepIncomplete", err)
	}
	if diff := cmp.Diff(View(Quiz{Step: 0}), m.View()); diff != "" {
		t.Errorf("view moved on gated advance (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, m.Answers()); diff != "" {
		t.Errorf("answers changed on gated advance (-want +got):\n%s", diff)
	}

	last := step[len(step)-1]
	if err := m.Answer(last.ID, personality.NoPreference); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !m.StepComplete() {
		t.Error("no-preference should count as answered")
	}
	if err := m.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if diff := cmp.Diff(View(Quiz{Step: 1}), m.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
	if len(rec.Events()) != 1 {
		t.Errorf("events = %v, want only diagnosis_start", rec.Names())
	}
}

func TestMachine_StepCountWithRemainder(t *testing.T) {
	cfg := PerStep()
	cfg.StepSize = 5
	m, _ := newTestMachine(t, cfg)
	if got := m.StepCount(); got != 3 {
		t.Fatalf("StepCount = %d, want 3", got)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	pick := func(q content.Question) string { return string(q.Options[1].Value) }
	answerStep(t, m, pick)
	_ = m.Advance()
	answerStep(t, m, pick)
	_ = m.Advance()
	if n := len(m.CurrentStep()); n != 2 {
		t.Errorf("last step size = %d, want 2", n)
	}
}

func TestMachine_AnswerOverwrites(t *testing.T) {
	m, _ := newTestMachine(t, PerStep())
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	q := m.CurrentStep()[0]
	for _, v := range []string{string(q.Options[0].Value), personality.NoPreference, string(q.Options[1].Value)} {
		if err := m.Answer(q.ID, v); err != nil {
			t.Fatalf("answer %q: %v", v, err)
		}
	}
	got, ok := m.AnswerFor(q.ID)
	if !ok || got != string(q.Options[1].Value) {
		t.Errorf("AnswerFor = %q, %v; want %q", got, ok, q.Options[1].Value)
	}
	if answered, total := m.Progress(); answered != 1 || total != 12 {
		t.Errorf("progress = %d/%d, want 1/12", answered, total)
	}
}

func TestMachine_RejectedAnswers(t *testing.T) {
	m, _ := newTestMachine(t, PerStep())

	q := m.Questions()[0]
	if err := m.Answer(q.ID, string(q.Options[0].Value)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("answer in home: err = %v, want ErrInvalidTransition", err)
	}

	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	tests := []struct {
		name  string
		id    int
		value string
		want  error
	}{
		{"unknown id", 999, "E", ErrUnknownQuestion},
		{"other axis letter", q.ID, "S", ErrInvalidValue},
		{"empty", q.ID, "", ErrInvalidValue},
		{"lowercase", q.ID, "e", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.Answer(tt.id, tt.value); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if len(m.Answers()) != 0 {
				t.Errorf("answers mutated by rejected call: %v", m.Answers())
			}
		})
	}
}

func TestMachine_InvalidTransitions(t *testing.T) {
	m, rec := newTestMachine(t, PerQuestion())

	if err := m.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("advance in home: err = %v", err)
	}
	if _, err := m.ClickCTA(defaultContent(t)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cta in home: err = %v", err)
	}

	r := runToResult(t, m, func(q content.Question) string { return string(q.Options[1].Value) })
	n := len(rec.Events())

	if err := m.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("advance in result: err = %v", err)
	}
	q := m.Questions()[0]
	if err := m.Answer(q.ID, string(q.Options[0].Value)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("answer in result: err = %v", err)
	}
	if diff := cmp.Diff(View(r), m.View(), cmp.AllowUnexported(personality.Tally{})); diff != "" {
		t.Errorf("result view changed (-want +got):\n%s", diff)
	}
	if len(rec.Events()) != n {
		t.Errorf("rejected calls emitted events: %v", rec.Names())
	}
}

func TestMachine_ClassifiesOnce(t *testing.T) {
	m, rec := newTestMachine(t, PerQuestion())
	r := runToResult(t, m, func(q content.Question) string { return string(q.Options[1].Value) })
	if r.Type != "INFP" {
		t.Fatalf("type = %s, want INFP", r.Type)
	}
	_ = m.Advance()
	_ = m.Advance()

	complete := 0
	for _, n := range rec.Names() {
		if n == analytics.EventSessionComplete {
			complete++
		}
	}
	if complete != 1 {
		t.Errorf("diagnosis_complete emitted %d times, want 1", complete)
	}
}

func TestMachine_ClickCTA(t *testing.T) {
	c := defaultContent(t)
	m, rec := newTestMachine(t, PerQuestion())
	r := runToResult(t, m, func(q content.Question) string { return string(q.Options[0].Value) })

	link, err := m.ClickCTA(c)
	if err != nil {
		t.Fatalf("cta: %v", err)
	}
	if link != c.CTALink(r.Type) {
		t.Errorf("link = %q, want %q", link, c.CTALink(r.Type))
	}

	events := rec.Events()
	last := events[len(events)-1]
	if last.Name != analytics.EventCTAClick || last.ResultType != string(r.Type) {
		t.Errorf("last event = %+v, want line_click for %s", last, r.Type)
	}
	if _, ok := m.View().(Result); !ok {
		t.Error("cta click should not leave the result view")
	}
}

func TestMachine_RestartIdempotent(t *testing.T) {
	m, rec := newTestMachine(t, PerStep())
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	answerStep(t, m, func(q content.Question) string { return string(q.Options[0].Value) })
	n := len(rec.Events())

	for i := 0; i < 3; i++ {
		if err := m.Restart(); err != nil {
			t.Fatalf("restart %d: %v", i, err)
		}
		if _, ok := m.View().(Home); !ok {
			t.Errorf("restart %d: view = %s, want home", i, ViewName(m.View()))
		}
		if len(m.Answers()) != 0 || m.SessionID() != "" {
			t.Errorf("restart %d left state: answers=%v session=%q", i, m.Answers(), m.SessionID())
		}
	}
	if len(rec.Events()) != n {
		t.Errorf("restart emitted events: %v", rec.Names())
	}
}

func TestMachine_StartFromResultIsFresh(t *testing.T) {
	m, rec := newTestMachine(t, PerQuestion())
	runToResult(t, m, func(q content.Question) string { return string(q.Options[0].Value) })
	first := m.SessionID()

	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if diff := cmp.Diff(View(Quiz{Step: 0}), m.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
	if len(m.Answers()) != 0 {
		t.Errorf("answers carried over: %v", m.Answers())
	}
	if m.SessionID() == first {
		t.Error("expected a new session id")
	}
	if got := rec.Names()[len(rec.Names())-1]; got != analytics.EventSessionStart {
		t.Errorf("last event = %s, want diagnosis_start", got)
	}
}

func TestMachine_AnswersIsACopy(t *testing.T) {
	m, _ := newTestMachine(t, PerQuestion())
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	q := m.CurrentStep()[0]
	if err := m.Answer(q.ID, string(q.Options[0].Value)); err != nil {
		t.Fatalf("answer: %v", err)
	}
	m.Answers()[q.ID] = "X"
	if got, _ := m.AnswerFor(q.ID); got != string(q.Options[0].Value) {
		t.Errorf("internal answer changed through copy: %q", got)
	}
}

func TestMachine_CurrentStepOutsideQuiz(t *testing.T) {
	m, _ := newTestMachine(t, PerQuestion())
	if m.CurrentStep() != nil || m.StepComplete() {
		t.Error("home view should have no current step")
	}
}
