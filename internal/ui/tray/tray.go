package tray

import (
	"fmt"
	"sync"

	"stopwatch/internal/core/command"
	"stopwatch/internal/notification"
	"stopwatch/resources"

	"fyne.io/fyne/v2"
)

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnRequest     func(command.Request)
	OnShow        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager shows the stopwatch notification as the system tray menu.
// It implements service.Host.
type Manager struct {
	app       MenuSetter
	callbacks Callbacks
	do        func(func())

	mu         sync.Mutex
	title      string
	statusItem *fyne.MenuItem
	primary    *fyne.MenuItem
	cancel     *fyne.MenuItem
	foreground bool
}

// New creates a tray manager and installs the idle menu.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	return newManager(app, callbacks, fyne.Do)
}

func newManager(app MenuSetter, callbacks Callbacks, do func(func())) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		do:        do,
		title:     notification.DefaultConfig().Title,
	}

	manager.statusItem = fyne.NewMenuItem("", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.primary = fyne.NewMenuItem("", nil)
	manager.cancel = fyne.NewMenuItem("", nil)

	manager.refreshMenu()
	return manager
}

// PromoteForeground switches the tray to the running menu.
func (manager *Manager) PromoteForeground(descriptor notification.Descriptor) error {
	manager.mu.Lock()
	manager.foreground = true
	manager.apply(descriptor)
	manager.mu.Unlock()

	manager.refreshMenu()
	return nil
}

// PushNotification updates labels and icon in place.
func (manager *Manager) PushNotification(descriptor notification.Descriptor) error {
	manager.mu.Lock()
	if !manager.foreground {
		manager.mu.Unlock()
		return fmt.Errorf("push notification: tray is not in the foreground")
	}
	manager.apply(descriptor)
	manager.mu.Unlock()

	manager.refreshMenu()
	return nil
}

// DemoteForeground returns the tray to the idle menu.
func (manager *Manager) DemoteForeground(int) error {
	manager.mu.Lock()
	manager.foreground = false
	manager.mu.Unlock()

	manager.refreshMenu()
	return nil
}

// Menu returns the menu currently installed.
func (manager *Manager) Menu() *fyne.Menu {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.buildMenu()
}

func (manager *Manager) apply(descriptor notification.Descriptor) {
	if descriptor.Title != "" {
		manager.title = descriptor.Title
	}
	manager.statusItem.Label = fmt.Sprintf("%s  %s", manager.title, descriptor.Body)

	if len(descriptor.Actions) > notification.PrimaryIndex {
		manager.bind(manager.primary, descriptor.Actions[notification.PrimaryIndex])
	}
	if len(descriptor.Actions) > notification.PrimaryIndex+1 {
		manager.bind(manager.cancel, descriptor.Actions[notification.PrimaryIndex+1])
	}
}

func (manager *Manager) bind(item *fyne.MenuItem, action notification.Action) {
	request := action.Request
	item.Label = action.Label
	item.Action = func() {
		if manager.callbacks.OnRequest != nil {
			manager.callbacks.OnRequest(request)
		}
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	show := fyne.NewMenuItem("Show", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	if !manager.foreground {
		start := fyne.NewMenuItem("Start", func() {
			if manager.callbacks.OnRequest != nil {
				manager.callbacks.OnRequest(command.ForCommand(command.Start))
			}
		})
		return fyne.NewMenu(manager.title, start, show, preferences, fyne.NewMenuItemSeparator(), quit)
	}

	return fyne.NewMenu(manager.title,
		manager.statusItem,
		manager.primary,
		manager.cancel,
		fyne.NewMenuItemSeparator(),
		preferences,
		quit,
	)
}

func (manager *Manager) icon() fyne.Resource {
	if !manager.foreground {
		return resources.MustIcon(resources.IconIdle)
	}
	if manager.primary.Label == notification.ResumeAction().Label {
		return resources.MustIcon(resources.IconStopped)
	}
	return resources.MustIcon(resources.IconRunning)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}

	manager.mu.Lock()
	menu := manager.buildMenu()
	icon := manager.icon()
	manager.mu.Unlock()

	manager.do(func() {
		manager.app.SetSystemTrayMenu(menu)
		manager.app.SetSystemTrayIcon(icon)
	})
}
