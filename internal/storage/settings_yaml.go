package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stopwatch/internal/platform"
	"stopwatch/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	ShowWindowOnLaunch  bool `yaml:"show_window_on_launch"`
	SystemNotifications bool `yaml:"system_notifications"`
	TrayEnabled         bool `yaml:"tray_enabled"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(service platform.Service, appName string) (string, error) {
	appDir, err := service.AppConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(appDir, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	fileData := toYAML(settings)
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	return fromYAML(fileData), nil
}

// SaveSettings writes user preferences to the YAML file at path, keeping any
// other keys already present in the file.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	document := map[string]interface{}{}
	if rawData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(rawData, &document); err != nil {
			return fmt.Errorf("parse settings yaml: %w", err)
		}
		if document == nil {
			document = map[string]interface{}{}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read settings file: %w", err)
	}

	fileData := toYAML(settings)
	document["show_window_on_launch"] = fileData.ShowWindowOnLaunch
	document["system_notifications"] = fileData.SystemNotifications
	document["tray_enabled"] = fileData.TrayEnabled

	serialized, err := yaml.Marshal(document)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func toYAML(settings preferences.Settings) yamlSettings {
	return yamlSettings{
		ShowWindowOnLaunch:  settings.ShowWindowOnLaunch,
		SystemNotifications: settings.SystemNotifications,
		TrayEnabled:         settings.TrayEnabled,
	}
}

func fromYAML(fileData yamlSettings) preferences.Settings {
	return preferences.Settings{
		ShowWindowOnLaunch:  fileData.ShowWindowOnLaunch,
		SystemNotifications: fileData.SystemNotifications,
		TrayEnabled:         fileData.TrayEnabled,
	}
}
