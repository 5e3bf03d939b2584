package quiz

import "errors"

var (
	// ErrInvalidTransition means the operation is not allowed in the
	// current view.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrUnknownQuestion means an answer referenced a question id not in
	// the question set.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrInvalidValue means an answer value is neither one of the
	// question's option letters nor the no-preference sentinel.
	ErrInvalidValue = errors.New("invalid answer value")

	// ErrStepIncomplete means Advance was gated on unanswered questions.
	ErrStepIncomplete = errors.New("step incomplete")

	// ErrInvalidConfig is returned by NewMachine for unusable input.
	ErrInvalidConfig = errors.New("invalid quiz config")
)
