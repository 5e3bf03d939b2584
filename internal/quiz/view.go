package quiz

import "github.com/abhisek/sixteen/internal/personality"

// View is the state the presentation layer renders. It is one of Home,
// Quiz or Result.
type View interface {
	isView()
}

// Home is the entry view before a session starts.
type Home struct{}

// Quiz shows the questions of one step.
type Quiz struct {
	Step int
}

// Result shows the classified type. It only exists once classification
// has run, so Type is always valid.
type Result struct {
	Type  personality.Type
	Tally personality.Tally
}

func (Home) isView()   {}
func (Quiz) isView()   {}
func (Result) isView() {}

// ViewName returns a short stable name for v, used in logs.
func ViewName(v View) string {
	switch v.(type) {
	case Home:
		return "home"
	case Quiz:
		return "quiz"
	case Result:
		return "result"
	default:
		return "unknown"
	}
}
