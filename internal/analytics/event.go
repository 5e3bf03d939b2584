// Package analytics carries quiz observability events to external sinks.
//
// Emission is fire-and-forget: a Sink never blocks the caller and never
// reports delivery failures back to it.
package analytics

import "time"

// Name identifies an event kind. The values match the event names the
// hosted analytics property already reports on.
type Name string

const (
	EventSessionStart    Name = "diagnosis_start"
	EventSessionComplete Name = "diagnosis_complete"
	EventCTAClick        Name = "line_click"
)

// Event is a single observability record.
type Event struct {
	Name       Name
	SessionID  string
	ResultType string // empty for EventSessionStart
	Timestamp  time.Time
}

// Params returns the event parameters in the shape analytics backends
// expect.
func (e Event) Params() map[string]any {
	p := map[string]any{}
	if e.ResultType != "" {
		p["result_type"] = e.ResultType
	}
	if e.SessionID != "" {
		p["session_id"] = e.SessionID
	}
	return p
}
