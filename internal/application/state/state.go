package state

// RunState represents the current state of a running room
type RunState int

const (
	StateRunning RunState = iota
	StatePaused
	StateReplaying
	StateFinished
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Advances reports whether the room is updated in this state
func (s RunState) Advances() bool {
	return s == StateRunning || s == StateReplaying
}

// TogglePause pauses a running or replaying room and resumes a paused one.
// resume is the state to return to.
func (s RunState) TogglePause(resume RunState) RunState {
	switch s {
	case StatePaused:
		return resume
	case StateRunning, StateReplaying:
		return StatePaused
	default:
		return s
	}
}
