// Package view is the foreground stopwatch window bound to the service.
package view

import (
	"context"
	"log"

	"stopwatch/internal/core/command"
	"stopwatch/internal/core/stopwatch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the service surface the view binds to.
type Controller interface {
	Handle(ctx context.Context, request command.Request) (stopwatch.Snapshot, error)
	Snapshot(ctx context.Context) (stopwatch.Snapshot, error)
	Subscribe(buffer int) <-chan stopwatch.Event
}

// Window shows the elapsed time with Start/Stop and Cancel buttons.
type Window struct {
	window     fyne.Window
	controller Controller
	clock      *widget.Label
	status     *widget.Label
	primary    *widget.Button
	cancel     *widget.Button
	current    stopwatch.Snapshot
	onRender   func(stopwatch.Snapshot)
}

// New creates the stopwatch window. It is hidden on close rather than destroyed.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("Stopwatch")

	view := &Window{
		window:     window,
		controller: controller,
		clock:      widget.NewLabelWithStyle("00:00:00", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true}),
		status:     widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}
	view.clock.SizeName = theme.SizeNameHeadingText
	view.primary = widget.NewButton("Start", view.togglePrimary)
	view.primary.Importance = widget.HighImportance
	view.cancel = widget.NewButton("Cancel", func() {
		view.send(command.ForCommand(command.Cancel))
	})

	buttons := container.NewHBox(layout.NewSpacer(), view.primary, view.cancel, layout.NewSpacer())
	window.SetContent(container.NewVBox(view.clock, view.status, buttons))
	window.Resize(fyne.NewSize(280, 160))
	window.SetCloseIntercept(window.Hide)

	view.render(stopwatch.New().Snapshot())
	return view
}

// Bind follows service events until ctx is done or the service stops.
func (view *Window) Bind(ctx context.Context) {
	events := view.controller.Subscribe(8)

	if snapshot, err := view.controller.Snapshot(ctx); err == nil {
		fyne.Do(func() { view.render(snapshot) })
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				snapshot := event.Snapshot
				fyne.Do(func() { view.render(snapshot) })
			}
		}
	}()
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// PrimaryLabel is the label of the Start/Stop button for status.
func PrimaryLabel(status stopwatch.Status) string {
	switch status {
	case stopwatch.StatusStarted:
		return "Stop"
	case stopwatch.StatusStopped:
		return "Resume"
	default:
		return "Start"
	}
}

// PrimaryCommand is the command sent by the Start/Stop button for status.
func PrimaryCommand(status stopwatch.Status) command.Command {
	if status == stopwatch.StatusStarted {
		return command.Stop
	}
	return command.Start
}

func (view *Window) render(snapshot stopwatch.Snapshot) {
	view.current = snapshot
	view.clock.SetText(snapshot.Time.String())
	view.status.SetText(snapshot.Status.String())
	view.primary.SetText(PrimaryLabel(snapshot.Status))
	if snapshot.Status == stopwatch.StatusIdle || snapshot.Status == stopwatch.StatusCanceled {
		view.cancel.Disable()
	} else {
		view.cancel.Enable()
	}
	if view.onRender != nil {
		view.onRender(snapshot)
	}
}

func (view *Window) togglePrimary() {
	view.send(command.ForCommand(PrimaryCommand(view.current.Status)))
}

func (view *Window) send(request command.Request) {
	go func() {
		if _, err := view.controller.Handle(context.Background(), request); err != nil {
			log.Printf("[view] send %s: %v", command.Decode(request), err)
		}
	}()
}
