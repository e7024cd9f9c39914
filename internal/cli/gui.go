package cli

import (
	"context"
	"errors"
	"log"

	"stopwatch/internal/config"
	"stopwatch/internal/core/command"
	"stopwatch/internal/ipc"
	"stopwatch/internal/platform"
	"stopwatch/internal/service"
	"stopwatch/internal/storage"
	"stopwatch/internal/ui/preferences"
	"stopwatch/internal/ui/tray"
	"stopwatch/internal/ui/view"
	"stopwatch/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appID = "io.github.stopwatch"

func runGUI(ctx context.Context, cfg *config.Configuration, settingsPath, address string) error {
	guard, err := ipc.Listen(address)
	if err != nil {
		if errors.Is(err, ipc.ErrAlreadyRunning) {
			log.Printf("[cli] single instance: %v", err)
			return nil
		}
		return err
	}

	interrupted := ctx.Done()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))

	var inst *instance
	send := func(request command.Request) {
		go func() {
			if _, err := inst.svc.Handle(ctx, request); err != nil {
				log.Printf("[cli] %s: %v", command.Decode(request), err)
			}
		}()
	}

	var hosts service.MultiHost
	var trayManager *tray.Manager
	var window *view.Window
	var prefsWindow *preferences.Window

	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray && cfg.TrayEnabled {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnRequest: send,
			OnShow: func() {
				window.Show()
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: fyneApp.Quit,
		})
		hosts = append(hosts, trayManager)
	}
	if trayManager == nil || cfg.SystemNotifications {
		hosts = append(hosts, platform.NewToastHost(platform.NewFyneSender(fyneApp)))
	}

	inst = startInstance(ctx, guard, hosts, cfg)
	defer inst.close()

	window = view.New(fyneApp, inst.svc)
	window.Bind(ctx)
	if trayManager != nil {
		desktopApp.SetSystemTrayWindow(window.Window())
	} else {
		window.Window().SetCloseIntercept(fyneApp.Quit)
	}

	prefsWindow = preferences.New(fyneApp, preferences.FromConfig(*cfg), func(updated preferences.Settings) {
		updated.Apply(cfg)
		if err := storage.SaveSettings(settingsPath, updated); err != nil {
			log.Printf("[cli] save settings: %v", err)
		}
	})

	if cfg.ShowWindowOnLaunch || trayManager == nil {
		window.Show()
	}

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-interrupted:
			fyne.Do(fyneApp.Quit)
		case <-finished:
		}
	}()

	log.Printf("[cli] stopwatch listening on %s", guard.Address())
	fyneApp.Run()
	return nil
}
