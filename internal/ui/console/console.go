// Package console renders the stopwatch notification on a terminal line.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"stopwatch/internal/notification"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Renderer is a Host that draws the notification as a single status line.
// On a terminal the line is redrawn in place; otherwise each update is
// written on its own line.
type Renderer struct {
	mu      sync.Mutex
	out     io.Writer
	inPlace bool
	width   int
	active  bool
}

// New creates a renderer writing to out. Output to a terminal is redrawn in place.
func New(out io.Writer) *Renderer {
	inPlace := false
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		inPlace = true
	}
	return &Renderer{out: out, inPlace: inPlace}
}

// NewStdout creates a renderer for os.Stdout.
func NewStdout() *Renderer {
	return New(os.Stdout)
}

// PromoteForeground starts drawing the notification.
func (renderer *Renderer) PromoteForeground(descriptor notification.Descriptor) error {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.active = true
	return renderer.draw(Line(descriptor), statusColor(descriptor))
}

// PushNotification redraws the notification.
func (renderer *Renderer) PushNotification(descriptor notification.Descriptor) error {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	if !renderer.active {
		return fmt.Errorf("push notification: console is not in the foreground")
	}
	return renderer.draw(Line(descriptor), statusColor(descriptor))
}

// DemoteForeground clears the status line.
func (renderer *Renderer) DemoteForeground(int) error {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	if !renderer.active {
		return nil
	}
	renderer.active = false

	if renderer.inPlace {
		_, err := fmt.Fprintf(renderer.out, "\r%s\r", strings.Repeat(" ", renderer.width))
		renderer.width = 0
		return err
	}
	_, err := fmt.Fprintln(renderer.out, color.New(color.FgHiBlack).Sprint("canceled"))
	return err
}

// Line renders descriptor as plain text, e.g. "Stopwatch  00:00:05  [Stop] [Cancel]".
func Line(descriptor notification.Descriptor) string {
	parts := []string{descriptor.Title, descriptor.Body}
	labels := make([]string, 0, len(descriptor.Actions))
	for _, action := range descriptor.Actions {
		labels = append(labels, "["+action.Label+"]")
	}
	if len(labels) > 0 {
		parts = append(parts, strings.Join(labels, " "))
	}
	return strings.Join(parts, "  ")
}

func (renderer *Renderer) draw(line string, paint *color.Color) error {
	if !renderer.inPlace {
		_, err := fmt.Fprintln(renderer.out, line)
		return err
	}

	padding := ""
	if renderer.width > len(line) {
		padding = strings.Repeat(" ", renderer.width-len(line))
	}
	renderer.width = len(line)
	_, err := fmt.Fprintf(renderer.out, "\r%s%s", paint.Sprint(line), padding)
	return err
}

func statusColor(descriptor notification.Descriptor) *color.Color {
	if primary, ok := descriptor.Primary(); ok && primary.Label == notification.ResumeAction().Label {
		return color.New(color.FgYellow)
	}
	return color.New(color.FgGreen, color.Bold)
}
