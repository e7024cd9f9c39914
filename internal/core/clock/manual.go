package clock

import (
	"sync"
	"time"
)

// Manual is a virtual Clock. Time only moves when Advance is called.
//
// Ticks are handed over on unbuffered channels: Advance returns only after the
// consumer has received every tick that fell due, so a consumer that processes
// ticks and commands on one goroutine observes them in a deterministic order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// NewTicker registers a ticker whose first tick is due one period from now.
func (manual *Manual) NewTicker(period time.Duration) Ticker {
	if period <= 0 {
		panic("clock: non-positive ticker period")
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()

	ticker := &manualTicker{
		owner:   manual,
		period:  period,
		next:    manual.now.Add(period),
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
	manual.tickers = append(manual.tickers, ticker)
	return ticker
}

// Advance moves the virtual time forward by delta, firing due ticks in order.
func (manual *Manual) Advance(delta time.Duration) {
	manual.mu.Lock()
	target := manual.now.Add(delta)
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		ticker := manual.nextDueLocked(target)
		if ticker == nil {
			manual.now = target
			manual.mu.Unlock()
			return
		}
		fireAt := ticker.next
		manual.now = fireAt
		ticker.next = fireAt.Add(ticker.period)
		manual.mu.Unlock()

		select {
		case ticker.ch <- fireAt:
		case <-ticker.stopped:
		}
	}
}

// Active reports how many tickers are registered and not stopped.
func (manual *Manual) Active() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.tickers)
}

func (manual *Manual) nextDueLocked(target time.Time) *manualTicker {
	var due *manualTicker
	for _, ticker := range manual.tickers {
		if ticker.next.After(target) {
			continue
		}
		if due == nil || ticker.next.Before(due.next) {
			due = ticker
		}
	}
	return due
}

func (manual *Manual) remove(target *manualTicker) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	for index, ticker := range manual.tickers {
		if ticker == target {
			manual.tickers = append(manual.tickers[:index], manual.tickers[index+1:]...)
			return
		}
	}
}

type manualTicker struct {
	owner    *Manual
	period   time.Duration
	next     time.Time
	ch       chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func (ticker *manualTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *manualTicker) Stop() {
	ticker.stopOnce.Do(func() {
		close(ticker.stopped)
		ticker.owner.remove(ticker)
	})
}
