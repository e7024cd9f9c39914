package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	showOnLaunch  *widget.Check
	notifications *widget.Check
	tray          *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Stopwatch Settings")

	showOnLaunch := widget.NewCheck("Show the stopwatch window on launch", nil)
	notifications := widget.NewCheck("Desktop notifications on start, stop and cancel", nil)
	tray := widget.NewCheck("Show controls in the system tray (restart required)", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		showOnLaunch,
		notifications,
		tray,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 200))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		showOnLaunch:  showOnLaunch,
		notifications: notifications,
		tray:          tray,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.showOnLaunch.SetChecked(settings.ShowWindowOnLaunch)
	prefs.notifications.SetChecked(settings.SystemNotifications)
	prefs.tray.SetChecked(settings.TrayEnabled)
}

func (prefs *Window) handleSave() {
	settings := Settings{
		ShowWindowOnLaunch:  prefs.showOnLaunch.Checked,
		SystemNotifications: prefs.notifications.Checked,
		TrayEnabled:         prefs.tray.Checked,
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
