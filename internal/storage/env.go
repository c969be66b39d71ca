package storage

import (
	"os"
	"strconv"
	"strings"

	"tomatick/internal/ui/preferences"
)

// Environment variables that override the settings file.
const (
	EnvWorkMinutes          = "TOMATICK_WORK_MINUTES"
	EnvShortBreakMinutes    = "TOMATICK_SHORT_BREAK_MINUTES"
	EnvLongBreakMinutes     = "TOMATICK_LONG_BREAK_MINUTES"
	EnvLongBreakEvery       = "TOMATICK_LONG_BREAK_EVERY"
	EnvDesktopNotifications = "TOMATICK_DESKTOP_NOTIFICATIONS"
	EnvNativeNotifications  = "TOMATICK_NATIVE_NOTIFICATIONS"
	EnvBell                 = "TOMATICK_BELL"
)

// ApplyEnv overlays environment overrides on base. Values that are not positive
// integers or recognised booleans are ignored.
func ApplyEnv(base preferences.Settings) preferences.Settings {
	settings := base
	if v, ok := getEnvInt(EnvWorkMinutes); ok && v > 0 {
		settings.WorkMinutes = v
	}
	if v, ok := getEnvInt(EnvShortBreakMinutes); ok && v > 0 {
		settings.ShortBreakMinutes = v
	}
	if v, ok := getEnvInt(EnvLongBreakMinutes); ok && v > 0 {
		settings.LongBreakMinutes = v
	}
	if v, ok := getEnvInt(EnvLongBreakEvery); ok && v > 0 {
		settings.LongBreakEvery = v
	}
	if v, ok := getEnvBool(EnvDesktopNotifications); ok {
		settings.DesktopNotifications = v
	}
	if v, ok := getEnvBool(EnvNativeNotifications); ok {
		settings.NativeNotifications = v
	}
	if v, ok := getEnvBool(EnvBell); ok {
		settings.Bell = v
	}
	return settings
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
