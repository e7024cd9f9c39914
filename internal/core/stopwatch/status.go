package stopwatch

// Status represents the current run state of the stopwatch.
type Status string

const (
	StatusIdle     Status = "Idle"
	StatusStarted  Status = "Started"
	StatusStopped  Status = "Stopped"
	StatusCanceled Status = "Canceled"
)

// ParseStatus maps a status name to a Status.
func ParseStatus(name string) (Status, bool) {
	switch Status(name) {
	case StatusIdle, StatusStarted, StatusStopped, StatusCanceled:
		return Status(name), true
	default:
		return "", false
	}
}

func (status Status) String() string {
	return string(status)
}
