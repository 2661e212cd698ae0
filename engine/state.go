package engine

// State identifies the control loop state
type State uint8

const (
	// StateIdle awaits a start signal; the counter is untouched
	StateIdle State = iota

	// StateRunning decrements the counter once per consumed Tick
	StateRunning

	// StateTerminated ends the loop; the program exits
	StateTerminated
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
