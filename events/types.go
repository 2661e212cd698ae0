package events

// Type tags the source of a merged event
type Type int

const (
	// TypeKey is a single logical keypress
	// Producer: input source | Payload: Key
	TypeKey Type = iota

	// TypeTick is a countdown cadence pulse
	// Producer: tick source | Payload: none
	TypeTick

	// TypeResize signals a terminal geometry change
	// Producer: input source | Consumed as redraw-only
	TypeResize
)

// Key is a logical key code, already mapped from the raw terminal event
type Key int

const (
	// KeyOther covers every unrecognized key; consumed without a transition
	KeyOther Key = iota

	// KeyEnter starts the countdown from the Idle state
	KeyEnter

	// KeyEscape cancels a running countdown back to Idle
	KeyEscape

	// KeyQuit exits the program from any state
	KeyQuit
)

// Event is a single tagged value delivered through the merger
type Event struct {
	Type Type
	Key  Key
}
