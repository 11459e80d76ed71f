package game

// Event is one discrete occurrence consumed by the state fold. Clock ticks
// and key presses are merged into a single ordered sequence; the transition
// function handles every variant, which keeps it testable without any
// event-stream machinery.
type Event int

const (
	// EventTick advances the simulation by one fixed tick.
	EventTick Event = iota
	// EventFlap applies the upward impulse to the bird.
	EventFlap
	// EventPauseToggle pauses or resumes the run.
	EventPauseToggle
	// EventRestart discards the current run and begins a fresh one.
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventTick:
		return "Tick"
	case EventFlap:
		return "Flap"
	case EventPauseToggle:
		return "PauseToggle"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
