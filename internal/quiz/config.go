package quiz

import (
	"fmt"
	"strings"
	"time"
)

// Mode names a pacing preset.
type Mode string

const (
	// ModePerQuestion shows one question at a time and moves on as soon as
	// it is answered.
	ModePerQuestion Mode = "per-question"

	// ModePerStep shows a page of questions and requires all of them to be
	// answered before continuing.
	ModePerStep Mode = "per-step"
)

// DefaultAdvanceDelay is how long the per-question mode lingers on a
// chosen option before moving on.
const DefaultAdvanceDelay = 200 * time.Millisecond

// DefaultStepSize is the page size of the per-step mode.
const DefaultStepSize = 4

// Config controls pacing.
type Config struct {
	// StepSize is the number of questions shown per step.
	StepSize int

	// RequireComplete gates Advance on every question of the step having
	// an answer.
	RequireComplete bool

	// AutoAdvance asks the presentation layer to call Advance on its own
	// after AdvanceDelay once the step is answered. The machine itself
	// never schedules anything.
	AutoAdvance  bool
	AdvanceDelay time.Duration
}

// PerQuestion returns the one-question-at-a-time preset. A question can
// only be left once it has an answer; NoPreference counts as one.
func PerQuestion() Config {
	return Config{
		StepSize:        1,
		RequireComplete: true,
		AutoAdvance:     true,
		AdvanceDelay:    DefaultAdvanceDelay,
	}
}

// PerStep returns the paged preset.
func PerStep() Config {
	return Config{
		StepSize:        DefaultStepSize,
		RequireComplete: true,
	}
}

// ParseMode parses a mode name, accepting a few spellings.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "per-question", "question", "single":
		return ModePerQuestion, nil
	case "per-step", "step", "paged":
		return ModePerStep, nil
	default:
		return "", fmt.Errorf("unknown quiz mode %q (want per-question or per-step)", s)
	}
}

// ConfigFor returns the preset for mode. A positive stepSize overrides the
// per-step page size; it is ignored in per-question mode.
func ConfigFor(mode Mode, stepSize int) (Config, error) {
	switch mode {
	case ModePerQuestion:
		return PerQuestion(), nil
	case ModePerStep:
		cfg := PerStep()
		if stepSize > 0 {
			cfg.StepSize = stepSize
		}
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("unknown quiz mode %q", mode)
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.StepSize < 1 {
		return fmt.Errorf("%w: step size %d", ErrInvalidConfig, c.StepSize)
	}
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("%w: negative advance delay", ErrInvalidConfig)
	}
	return nil
}
