package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tomatick/internal/platform"
	"tomatick/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes          int   `yaml:"work_minutes"`
	ShortBreakMinutes    int   `yaml:"short_break_minutes"`
	LongBreakMinutes     int   `yaml:"long_break_minutes"`
	LongBreakEvery       int   `yaml:"long_break_every"`
	DesktopNotifications *bool `yaml:"desktop_notifications"`
	NativeNotifications  *bool `yaml:"native_notifications"`
	Bell                 *bool `yaml:"bell"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(service platform.Service, appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned. On error the
// defaults are returned alongside the error.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.LongBreakEvery > 0 {
		settings.LongBreakEvery = fileData.LongBreakEvery
	}
	if fileData.DesktopNotifications != nil {
		settings.DesktopNotifications = *fileData.DesktopNotifications
	}
	if fileData.NativeNotifications != nil {
		settings.NativeNotifications = *fileData.NativeNotifications
	}
	if fileData.Bell != nil {
		settings.Bell = *fileData.Bell
	}
}
