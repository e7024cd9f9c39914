// Package service runs the stopwatch as a single-goroutine actor.
//
// Commands from every trigger channel and ticks from the driver are handled on
// the Run goroutine only; the state machine, driver and notification presenter
// are never touched anywhere else.
package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/command"
	"stopwatch/internal/core/stopwatch"
	"stopwatch/internal/notification"
)

// ErrStopped is returned once the service loop has exited.
var ErrStopped = errors.New("stopwatch service stopped")

// ErrAlreadyRunning is returned by a second call to Run.
var ErrAlreadyRunning = errors.New("stopwatch service already running")

// Options contains runtime options for the Service.
type Options struct {
	Clock        clock.Clock
	Notification notification.Config
}

type envelope struct {
	request  command.Request
	readOnly bool
	reply    chan stopwatch.Snapshot
}

// Service owns the stopwatch and mirrors it on a Host.
type Service struct {
	host          Host
	notifications notification.Config
	watch         *stopwatch.Stopwatch
	driver        *stopwatch.Driver
	presenter     *notification.Presenter
	foreground    bool

	requests chan envelope
	done     chan struct{}

	mu      sync.Mutex
	events  []chan stopwatch.Event
	started bool
	closed  bool
}

// New creates a Service. A nil host discards notifications.
func New(host Host, options Options) *Service {
	if host == nil {
		host = noopHost{}
	}
	if options.Notification.Title == "" {
		options.Notification = notification.DefaultConfig()
	}

	return &Service{
		host:          host,
		notifications: options.Notification,
		watch:         stopwatch.New(),
		driver:        stopwatch.NewDriver(options.Clock),
		presenter:     notification.NewPresenter(options.Notification),
		requests:      make(chan envelope),
		done:          make(chan struct{}),
	}
}

// Subscribe registers a new observer channel. Slow observers miss events.
func (svc *Service) Subscribe(buffer int) <-chan stopwatch.Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan stopwatch.Event, buffer)
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.closed {
		close(ch)
		return ch
	}
	svc.events = append(svc.events, ch)
	return ch
}

// Run processes commands and ticks until ctx is done.
func (svc *Service) Run(ctx context.Context) error {
	svc.mu.Lock()
	if svc.started {
		svc.mu.Unlock()
		return ErrAlreadyRunning
	}
	svc.started = true
	svc.mu.Unlock()

	defer svc.shutdown()

	for {
		select {
		case <-ctx.Done():
			return nil
		case env := <-svc.requests:
			if !env.readOnly {
				svc.dispatch(command.Decode(env.request))
			}
			env.reply <- svc.snapshot()
		case <-svc.driver.C():
			svc.tick()
		}
	}
}

// Handle applies the command carried by request and returns the resulting state.
func (svc *Service) Handle(ctx context.Context, request command.Request) (stopwatch.Snapshot, error) {
	return svc.send(ctx, envelope{request: request, reply: make(chan stopwatch.Snapshot, 1)})
}

// Do applies cmd through the canonical request channel.
func (svc *Service) Do(ctx context.Context, cmd command.Command) (stopwatch.Snapshot, error) {
	return svc.Handle(ctx, command.ForCommand(cmd))
}

// Snapshot reads the current state in order with pending commands and ticks.
func (svc *Service) Snapshot(ctx context.Context) (stopwatch.Snapshot, error) {
	return svc.send(ctx, envelope{readOnly: true, reply: make(chan stopwatch.Snapshot, 1)})
}

// Done is closed when Run has returned.
func (svc *Service) Done() <-chan struct{} {
	return svc.done
}

func (svc *Service) send(ctx context.Context, env envelope) (stopwatch.Snapshot, error) {
	select {
	case svc.requests <- env:
	case <-svc.done:
		return stopwatch.Snapshot{}, ErrStopped
	case <-ctx.Done():
		return stopwatch.Snapshot{}, ctx.Err()
	}

	select {
	case snapshot := <-env.reply:
		return snapshot, nil
	case <-ctx.Done():
		return stopwatch.Snapshot{}, ctx.Err()
	}
}

func (svc *Service) dispatch(cmd command.Command) {
	switch cmd {
	case command.Start:
		if !svc.watch.Start() {
			return
		}
		svc.presenter.ShowStop()
		svc.promote()
		svc.driver.Arm()
		svc.emit(stopwatch.EventStateChange, svc.snapshot())
	case command.Stop:
		if !svc.watch.Stop() {
			return
		}
		svc.driver.Disarm()
		svc.presenter.ShowResume()
		svc.push()
		svc.emit(stopwatch.EventStateChange, svc.snapshot())
	case command.Cancel:
		if !svc.watch.Cancel() {
			return
		}
		svc.driver.Disarm()
		svc.presenter = notification.NewPresenter(svc.notifications)

		canceled := svc.snapshot()
		canceled.Status = stopwatch.StatusCanceled
		svc.emit(stopwatch.EventStateChange, canceled)

		svc.demote()
		svc.emit(stopwatch.EventStateChange, svc.snapshot())
	}
}

func (svc *Service) tick() {
	if !svc.watch.Tick() {
		return
	}
	snapshot := svc.snapshot()
	svc.presenter.SetTime(snapshot.Time)
	svc.push()
	svc.emit(stopwatch.EventTick, snapshot)
}

func (svc *Service) promote() {
	if err := svc.host.PromoteForeground(svc.presenter.Descriptor()); err != nil {
		log.Printf("[service] promote foreground: %v", err)
	}
	svc.foreground = true
}

func (svc *Service) push() {
	if err := svc.host.PushNotification(svc.presenter.Descriptor()); err != nil {
		log.Printf("[service] push notification: %v", err)
	}
}

func (svc *Service) demote() {
	if err := svc.host.DemoteForeground(svc.notifications.SlotID); err != nil {
		log.Printf("[service] demote foreground: %v", err)
	}
	svc.foreground = false
}

func (svc *Service) snapshot() stopwatch.Snapshot {
	snapshot := svc.watch.Snapshot()
	snapshot.Foreground = svc.foreground
	return snapshot
}

func (svc *Service) shutdown() {
	svc.driver.Disarm()
	if svc.foreground {
		svc.demote()
	}

	svc.mu.Lock()
	svc.closed = true
	events := svc.events
	svc.events = nil
	svc.mu.Unlock()

	close(svc.done)
	for _, ch := range events {
		close(ch)
	}
}

func (svc *Service) emit(eventType stopwatch.EventType, snapshot stopwatch.Snapshot) {
	event := stopwatch.Event{
		Type:     eventType,
		Snapshot: snapshot,
		At:       svc.driver.Now(),
	}

	svc.mu.Lock()
	events := append([]chan stopwatch.Event(nil), svc.events...)
	svc.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
