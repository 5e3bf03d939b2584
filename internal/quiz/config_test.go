package quiz

import (
	"errors"
	"testing"
	"time"
)

func TestPresets(t *testing.T) {
	pq := PerQuestion()
	if pq.StepSize != 1 || !pq.RequireComplete || !pq.AutoAdvance || pq.AdvanceDelay != 200*time.Millisecond {
		t.Errorf("PerQuestion = %+v", pq)
	}
	ps := PerStep()
	if ps.StepSize != 4 || !ps.RequireComplete || ps.AutoAdvance || ps.AdvanceDelay != 0 {
		t.Errorf("PerStep = %+v", ps)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModePerQuestion, false},
		{"per-question", ModePerQuestion, false},
		{" Step ", ModePerStep, false},
		{"paged", ModePerStep, false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigFor(t *testing.T) {
	cfg, err := ConfigFor(ModePerStep, 6)
	if err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
	if cfg.StepSize != 6 || !cfg.RequireComplete {
		t.Errorf("per-step override = %+v", cfg)
	}

	cfg, err = ConfigFor(ModePerQuestion, 6)
	if err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
	if cfg.StepSize != 1 {
		t.Errorf("per-question step size = %d, want 1", cfg.StepSize)
	}

	if _, err := ConfigFor("nope", 0); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{StepSize: 0}).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero step: err = %v", err)
	}
	if err := PerStep().Validate(); err != nil {
		t.Errorf("PerStep invalid: %v", err)
	}
}
