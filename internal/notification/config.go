package notification

// Importance mirrors the host's notification channel importance levels.
type Importance string

const (
	ImportanceLow     Importance = "low"
	ImportanceDefault Importance = "default"
	ImportanceHigh    Importance = "high"
)

// Channel identifies the notification channel the stopwatch posts to.
type Channel struct {
	ID         string
	Name       string
	Importance Importance
}

// Config contains the fixed identity of the stopwatch notification.
type Config struct {
	Channel Channel
	SlotID  int
	Title   string
}

// DefaultConfig returns the stock channel, slot and title.
func DefaultConfig() Config {
	return Config{
		Channel: Channel{
			ID:         "stopwatch_notification_id",
			Name:       "stopwatch_notification",
			Importance: ImportanceLow,
		},
		SlotID: 10,
		Title:  "Stopwatch",
	}
}
