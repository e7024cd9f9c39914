package stopwatch

import (
	"fmt"
	"time"
)

// Formatted holds the zero-padded display components of an elapsed duration.
type Formatted struct {
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
}

// Format splits elapsed into total hours, minutes and seconds.
// Hours are padded to two digits and never wrap.
func Format(elapsed time.Duration) Formatted {
	if elapsed < 0 {
		elapsed = 0
	}
	total := int64(elapsed / time.Second)
	return Formatted{
		Hours:   pad(total / 3600),
		Minutes: pad(total / 60 % 60),
		Seconds: pad(total % 60),
	}
}

// String joins the components as HH:MM:SS.
func (formatted Formatted) String() string {
	return formatted.Hours + ":" + formatted.Minutes + ":" + formatted.Seconds
}

func pad(value int64) string {
	return fmt.Sprintf("%02d", value)
}
