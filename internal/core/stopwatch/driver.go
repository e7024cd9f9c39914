package stopwatch

import (
	"time"

	"stopwatch/internal/core/clock"
)

// Driver arms and disarms the repeating one-second schedule.
// Every Arm creates a fresh ticker; a disarmed ticker is never reused.
type Driver struct {
	clock  clock.Clock
	ticker clock.Ticker
}

// NewDriver creates a disarmed driver. A nil clock selects clock.System.
func NewDriver(source clock.Clock) *Driver {
	if source == nil {
		source = clock.System
	}
	return &Driver{clock: source}
}

// Arm starts ticking once per Step, first tick one full Step from now.
func (driver *Driver) Arm() {
	if driver.ticker != nil {
		return
	}
	driver.ticker = driver.clock.NewTicker(Step)
}

// Disarm stops the current ticker. It is a no-op when not armed.
func (driver *Driver) Disarm() {
	if driver.ticker == nil {
		return
	}
	driver.ticker.Stop()
	driver.ticker = nil
}

// Armed reports whether a ticker is running.
func (driver *Driver) Armed() bool {
	return driver.ticker != nil
}

// C returns the armed ticker's channel, or nil when disarmed so that a select
// on it blocks forever.
func (driver *Driver) C() <-chan time.Time {
	if driver.ticker == nil {
		return nil
	}
	return driver.ticker.C()
}

// Now returns the driver clock's time.
func (driver *Driver) Now() time.Time {
	return driver.clock.Now()
}
