package model

import (
	"strconv"
	"strings"
)

// Fallback durations, in minutes, used whenever a proposed value is not a positive integer.
const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultLongBreakEvery    = 4
)

// WorkPresets lists the selectable work-duration variants in minutes.
var WorkPresets = []int{10, 25, 50}

// Durations holds the user-adjustable phase lengths in minutes.
type Durations struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
}

// TimerConfig contains runtime settings for the session state machine.
type TimerConfig struct {
	Durations

	// LongBreakEvery is the number of completed work phases between long breaks.
	LongBreakEvery int
}

// DefaultTimerConfig returns the classic 25/5/15 schedule with a long break every 4th session.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Durations: Durations{
			WorkMinutes:       DefaultWorkMinutes,
			ShortBreakMinutes: DefaultShortBreakMinutes,
			LongBreakMinutes:  DefaultLongBreakMinutes,
		},
		LongBreakEvery: DefaultLongBreakEvery,
	}
}

// Normalize replaces every non-positive field with its default.
func (config TimerConfig) Normalize() TimerConfig {
	config.WorkMinutes = positiveOr(config.WorkMinutes, DefaultWorkMinutes)
	config.ShortBreakMinutes = positiveOr(config.ShortBreakMinutes, DefaultShortBreakMinutes)
	config.LongBreakMinutes = positiveOr(config.LongBreakMinutes, DefaultLongBreakMinutes)
	config.LongBreakEvery = positiveOr(config.LongBreakEvery, DefaultLongBreakEvery)
	return config
}

// ParseMinutes parses user input as a positive integer, returning fallback otherwise.
func ParseMinutes(raw string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// IsWorkPreset reports whether minutes is one of WorkPresets.
func IsWorkPreset(minutes int) bool {
	for _, preset := range WorkPresets {
		if preset == minutes {
			return true
		}
	}
	return false
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
