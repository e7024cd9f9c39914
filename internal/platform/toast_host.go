package platform

import (
	"fmt"
	"sync"

	"stopwatch/internal/notification"
)

// ToastHost mirrors stopwatch transitions as one-shot toasts.
// It toasts on promote, on a change of the primary action and on demote,
// never on a plain time update.
type ToastHost struct {
	mu      sync.Mutex
	sender  Sender
	title   string
	primary string
	body    string
}

// NewToastHost wraps sender. A nil sender sends nothing.
func NewToastHost(sender Sender) *ToastHost {
	if sender == nil {
		sender = noopSender{}
	}
	return &ToastHost{sender: sender}
}

// PromoteForeground announces that the stopwatch is running.
func (host *ToastHost) PromoteForeground(descriptor notification.Descriptor) error {
	host.mu.Lock()
	host.remember(descriptor)
	host.mu.Unlock()
	return host.send(descriptor.Title, fmt.Sprintf("Running from %s", descriptor.Body))
}

// PushNotification toasts only when the primary action changed.
func (host *ToastHost) PushNotification(descriptor notification.Descriptor) error {
	host.mu.Lock()
	previous := host.primary
	host.remember(descriptor)
	current := host.primary
	host.mu.Unlock()

	if previous == current {
		return nil
	}
	if current == notification.ResumeAction().Label {
		return host.send(descriptor.Title, fmt.Sprintf("Stopped at %s", descriptor.Body))
	}
	return host.send(descriptor.Title, fmt.Sprintf("Running from %s", descriptor.Body))
}

// DemoteForeground announces the reset.
func (host *ToastHost) DemoteForeground(int) error {
	host.mu.Lock()
	title, body := host.title, host.body
	host.primary = ""
	host.mu.Unlock()

	if title == "" {
		title = notification.DefaultConfig().Title
	}
	if body == "" {
		return host.send(title, "Canceled")
	}
	return host.send(title, fmt.Sprintf("Canceled at %s", body))
}

func (host *ToastHost) remember(descriptor notification.Descriptor) {
	host.title = descriptor.Title
	host.body = descriptor.Body
	if primary, ok := descriptor.Primary(); ok {
		host.primary = primary.Label
	}
}

func (host *ToastHost) send(title, message string) error {
	if !host.sender.Available() {
		return nil
	}
	if err := host.sender.Send(Toast{Title: title, Message: message}); err != nil {
		return fmt.Errorf("send toast: %w", err)
	}
	return nil
}
