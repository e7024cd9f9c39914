// Package stopwatch holds the stopwatch state machine, its display formatting
// and the one-second driver that feeds it ticks.
package stopwatch

import "time"

// Step is the amount of time added by every tick.
const Step = time.Second

// Stopwatch owns the elapsed duration and run status.
// It is not safe for concurrent use; callers serialize access.
type Stopwatch struct {
	status  Status
	elapsed time.Duration
	time    Formatted
}

// New returns an idle stopwatch at zero.
func New() *Stopwatch {
	return &Stopwatch{
		status: StatusIdle,
		time:   Format(0),
	}
}

// Start moves Idle or Stopped to Started.
func (watch *Stopwatch) Start() bool {
	if watch.status != StatusIdle && watch.status != StatusStopped {
		return false
	}
	watch.status = StatusStarted
	return true
}

// Stop pauses a running stopwatch and keeps the elapsed time.
func (watch *Stopwatch) Stop() bool {
	if watch.status != StatusStarted {
		return false
	}
	watch.status = StatusStopped
	return true
}

// Cancel resets elapsed time to zero and returns to Idle.
func (watch *Stopwatch) Cancel() bool {
	if watch.status != StatusStarted && watch.status != StatusStopped {
		return false
	}
	watch.elapsed = 0
	watch.status = StatusIdle
	watch.time = Format(0)
	return true
}

// Tick adds one Step while Started.
func (watch *Stopwatch) Tick() bool {
	if watch.status != StatusStarted {
		return false
	}
	watch.elapsed += Step
	watch.time = Format(watch.elapsed)
	return true
}

// Status returns the current status.
func (watch *Stopwatch) Status() Status {
	return watch.status
}

// Elapsed returns the accumulated running time.
func (watch *Stopwatch) Elapsed() time.Duration {
	return watch.elapsed
}

// Snapshot returns a copy of the current state.
func (watch *Stopwatch) Snapshot() Snapshot {
	return Snapshot{
		Status:  watch.status,
		Elapsed: watch.elapsed,
		Time:    watch.time,
	}
}
