package quiz

// advanceTickMsg fires AdvanceDelay after the last answer of a step in
// auto-advance mode. It names the session and step it was scheduled for so
// a tick outliving a restart or a manual advance is ignored.
type advanceTickMsg struct {
	SessionID string
	Step      int
}
