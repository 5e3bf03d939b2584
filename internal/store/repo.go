package store

import (
	"context"
	"time"
)

// Event names aggregated by Counts and TypeDistribution. They mirror the
// names emitted by the analytics package.
const (
	EventStart    = "diagnosis_start"
	EventComplete = "diagnosis_complete"
	EventCTAClick = "line_click"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	Name      string    // exact event name, "" = any
	SessionID string    // exact session, "" = any
}

// QuizEventData captures one quiz observability event.
type QuizEventData struct {
	Name       string
	SessionID  string
	ResultType string
	Timestamp  time.Time // zero = now
}

// QuizEvent is a stored QuizEventData.
type QuizEvent struct {
	ID       int
	Sequence int64
	QuizEventData
}

// EventCounts aggregates the event log.
type EventCounts struct {
	Starts      int
	Completions int
	CTAClicks   int
}

// CompletionRate returns completions per start, or 0 with no starts.
func (c EventCounts) CompletionRate() float64 {
	if c.Starts == 0 {
		return 0
	}
	return float64(c.Completions) / float64(c.Starts)
}

// ClickThroughRate returns CTA clicks per completion, or 0 with no
// completions.
func (c EventCounts) ClickThroughRate() float64 {
	if c.Completions == 0 {
		return 0
	}
	return float64(c.CTAClicks) / float64(c.Completions)
}

// EventRepo provides append and query access to quiz events.
type EventRepo interface {
	// AppendQuizEvent records one event.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// TypeDistribution counts completed sessions per result type.
	TypeDistribution(ctx context.Context) (map[string]int, error)

	// Counts returns totals per event kind.
	Counts(ctx context.Context) (EventCounts, error)

	// Recent returns events newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]QuizEvent, error)

	// Reset deletes every stored event.
	Reset(ctx context.Context) error
}
