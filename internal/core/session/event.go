package session

import "tomatick/internal/core/model"

// EventKind enumerates the inputs Apply understands.
type EventKind int

const (
	EventTick EventKind = iota
	EventStart
	EventPause
	EventToggle
	EventReset
	EventSwitchPhase
	EventSetConfig
	EventSetWorkVariant
)

func (kind EventKind) String() string {
	switch kind {
	case EventTick:
		return "tick"
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventToggle:
		return "toggle"
	case EventReset:
		return "reset"
	case EventSwitchPhase:
		return "switch_phase"
	case EventSetConfig:
		return "set_config"
	case EventSetWorkVariant:
		return "set_work_variant"
	default:
		return "unknown"
	}
}

// Event is a single input to the state machine. Only the field matching Kind is read.
type Event struct {
	Kind    EventKind
	Phase   Phase
	Config  model.TimerConfig
	Minutes int
}

// Tick advances a running countdown by one second.
func Tick() Event { return Event{Kind: EventTick} }

// Start resumes the countdown.
func Start() Event { return Event{Kind: EventStart} }

// Pause stops the countdown.
func Pause() Event { return Event{Kind: EventPause} }

// Toggle flips between running and paused.
func Toggle() Event { return Event{Kind: EventToggle} }

// Reset restores the full duration of the current phase and pauses.
func Reset() Event { return Event{Kind: EventReset} }

// SwitchPhase moves to phase with a full, paused countdown.
func SwitchPhase(phase Phase) Event { return Event{Kind: EventSwitchPhase, Phase: phase} }

// SetConfig replaces the timer configuration.
func SetConfig(config model.TimerConfig) Event { return Event{Kind: EventSetConfig, Config: config} }

// SetWorkVariant selects one of model.WorkPresets as the work length.
func SetWorkVariant(minutes int) Event { return Event{Kind: EventSetWorkVariant, Minutes: minutes} }
