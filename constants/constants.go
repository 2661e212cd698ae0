package constants

import "time"

// Countdown Timing
const (
	// DefaultDuration is the countdown length in seconds when no flag is given
	DefaultDuration = 10

	// TickInterval is the cadence of the countdown decrement pulse.
	// One Tick event consumed in the Running state is one decrement.
	TickInterval = time.Second
)

// Event Plumbing
const (
	// EventBuffer is the capacity of the merged event channel
	EventBuffer = 256
)
