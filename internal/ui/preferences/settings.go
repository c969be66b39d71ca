package preferences

import (
	"tomatick/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakEvery    int

	// With NativeNotifications set, desktop notifications go through
	// notify-send or osascript instead of the Fyne notification API.
	DesktopNotifications bool
	NativeNotifications  bool
	Bell                 bool
}

// DefaultSettings returns default settings for Tomatick.
func DefaultSettings() Settings {
	return FromTimerConfig(model.DefaultTimerConfig(), Settings{
		DesktopNotifications: true,
		Bell:                 true,
	})
}

// FromTimerConfig copies config into base, keeping base's notification flags.
func FromTimerConfig(config model.TimerConfig, base Settings) Settings {
	config = config.Normalize()
	base.WorkMinutes = config.WorkMinutes
	base.ShortBreakMinutes = config.ShortBreakMinutes
	base.LongBreakMinutes = config.LongBreakMinutes
	base.LongBreakEvery = config.LongBreakEvery
	return base
}

// TimerConfig converts settings to a normalized TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Durations: model.Durations{
			WorkMinutes:       settings.WorkMinutes,
			ShortBreakMinutes: settings.ShortBreakMinutes,
			LongBreakMinutes:  settings.LongBreakMinutes,
		},
		LongBreakEvery: settings.LongBreakEvery,
	}.Normalize()
}
