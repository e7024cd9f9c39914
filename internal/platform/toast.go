package platform

import (
	"os/exec"

	"fyne.io/fyne/v2"
)

// Toast is a one-shot desktop notification.
type Toast struct {
	Title   string
	Message string
}

// Sender delivers toasts through the native notification tool of the OS.
type Sender interface {
	Send(toast Toast) error
	Available() bool
}

// NewSender returns the sender for the current OS, or a no-op sender when
// the OS tool is missing.
func NewSender() Sender {
	return newSender()
}

// NewFyneSender sends toasts through a fyne application.
func NewFyneSender(app fyne.App) Sender {
	if app == nil {
		return noopSender{}
	}
	return &fyneSender{app: app}
}

type fyneSender struct {
	app fyne.App
}

func (sender *fyneSender) Send(toast Toast) error {
	sender.app.SendNotification(fyne.NewNotification(toast.Title, toast.Message))
	return nil
}

func (sender *fyneSender) Available() bool {
	return true
}

type noopSender struct{}

func (noopSender) Send(Toast) error { return nil }
func (noopSender) Available() bool  { return false }

func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
