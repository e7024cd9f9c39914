// Package config loads the stopwatch configuration.
//
// Sources are layered with increasing priority: built-in defaults, the
// settings file (YAML, or JSON when the path ends in .json), and STOPWATCH_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stopwatch/internal/notification"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "STOPWATCH_"

// Configuration represents the stopwatch application configuration.
type Configuration struct {
	InstanceName        string `koanf:"instance_name" validate:"required"`
	NotificationTitle   string `koanf:"notification_title" validate:"required"`
	ChannelID           string `koanf:"channel_id" validate:"required"`
	ChannelName         string `koanf:"channel_name" validate:"required"`
	ChannelImportance   string `koanf:"channel_importance" validate:"oneof=low default high"`
	NotificationID      int    `koanf:"notification_id" validate:"min=1"`
	ShowWindowOnLaunch  bool   `koanf:"show_window_on_launch"`
	SystemNotifications bool   `koanf:"system_notifications"`
	TrayEnabled         bool   `koanf:"tray_enabled"`
}

// Load reads configuration from defaults, the settings file at path (if it
// exists) and the environment.
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, fmt.Errorf("load settings file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat settings file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Notification converts the configuration to the notification identity.
func (cfg Configuration) Notification() notification.Config {
	return notification.Config{
		Channel: notification.Channel{
			ID:         cfg.ChannelID,
			Name:       cfg.ChannelName,
			Importance: notification.Importance(cfg.ChannelImportance),
		},
		SlotID: cfg.NotificationID,
		Title:  cfg.NotificationTitle,
	}
}

// envTransform converts environment variable names to config keys.
// Example: STOPWATCH_TRAY_ENABLED -> tray_enabled
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Parser()
	}
	return YAML()
}
