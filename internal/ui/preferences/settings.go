package preferences

import "stopwatch/internal/config"

// Settings defines editable user preferences.
type Settings struct {
	ShowWindowOnLaunch  bool
	SystemNotifications bool
	TrayEnabled         bool
}

// DefaultSettings returns default settings for Stopwatch.
func DefaultSettings() Settings {
	return Settings{
		ShowWindowOnLaunch:  true,
		SystemNotifications: false,
		TrayEnabled:         true,
	}
}

// FromConfig extracts the user-editable part of a loaded configuration.
func FromConfig(cfg config.Configuration) Settings {
	return Settings{
		ShowWindowOnLaunch:  cfg.ShowWindowOnLaunch,
		SystemNotifications: cfg.SystemNotifications,
		TrayEnabled:         cfg.TrayEnabled,
	}
}

// Apply copies settings onto cfg.
func (settings Settings) Apply(cfg *config.Configuration) {
	cfg.ShowWindowOnLaunch = settings.ShowWindowOnLaunch
	cfg.SystemNotifications = settings.SystemNotifications
	cfg.TrayEnabled = settings.TrayEnabled
}
