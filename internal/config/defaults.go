package config

import "stopwatch/internal/notification"

// AppName names the per-user configuration directory and the instance lock.
const AppName = "Stopwatch"

// GetDefaults returns the built-in configuration values keyed by koanf key.
func GetDefaults() map[string]interface{} {
	stock := notification.DefaultConfig()
	return map[string]interface{}{
		"instance_name":         AppName,
		"notification_title":    stock.Title,
		"channel_id":            stock.Channel.ID,
		"channel_name":          stock.Channel.Name,
		"channel_importance":    string(stock.Channel.Importance),
		"notification_id":       stock.SlotID,
		"show_window_on_launch": true,
		"system_notifications":  false,
		"tray_enabled":          true,
	}
}
