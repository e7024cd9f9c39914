package stopwatch

import "time"

// EventType defines the type of stopwatch event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
)

// Event represents a stopwatch update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is a read-only copy of the stopwatch state.
type Snapshot struct {
	Status     Status        `json:"status"`
	Elapsed    time.Duration `json:"elapsed"`
	Time       Formatted     `json:"time"`
	Foreground bool          `json:"foreground"`
}
