// Package session implements the Pomodoro timer as a pure state-transition function.
//
// A Session is a plain value. Every change, whether it comes from the user, the
// ticker or a completed countdown, goes through Apply so each transition can be
// exercised without a clock or a UI.
package session

import (
	"fmt"

	"tomatick/internal/core/model"
)

// Session is the live timer state.
type Session struct {
	Config model.TimerConfig
	// WorkVariant is the selected work preset in minutes, or 0 to use Config.WorkMinutes.
	WorkVariant int

	Phase                  Phase
	RemainingSeconds       int
	Running                bool
	CompletedWork          int
	AccumulatedWorkMinutes int
}

// New returns a paused session at the start of a work phase.
func New(config model.TimerConfig) Session {
	current := Session{
		Config: config.Normalize(),
		Phase:  PhaseWork,
	}
	current.RemainingSeconds = current.PhaseDuration(PhaseWork)
	return current
}

// WorkMinutes returns the effective length of the work phase.
func (current Session) WorkMinutes() int {
	if current.WorkVariant > 0 {
		return current.WorkVariant
	}
	return current.Config.WorkMinutes
}

// PhaseDuration returns the full length of phase in seconds.
func (current Session) PhaseDuration(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return current.Config.ShortBreakMinutes * 60
	case PhaseLongBreak:
		return current.Config.LongBreakMinutes * 60
	default:
		return current.WorkMinutes() * 60
	}
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (current Session) Progress() float64 {
	total := current.PhaseDuration(current.Phase)
	if total <= 0 {
		return 1
	}
	progress := float64(total-current.RemainingSeconds) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Clock returns the remaining time formatted as MM:SS.
func (current Session) Clock() string {
	return FormatClock(current.RemainingSeconds)
}

// FormatClock formats seconds as zero-padded MM:SS. Minutes are not clamped to 59.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Outcome describes side effects the host has to perform after a transition.
type Outcome struct {
	Completed bool
	// Finished is the phase that ran down to zero; only set when Completed.
	Finished Phase
	// Changed reports whether the transition produced a different session.
	Changed bool
}

// Apply returns the session that results from event along with its outcome.
func Apply(current Session, event Event) (Session, Outcome) {
	next := current
	var outcome Outcome

	switch event.Kind {
	case EventTick:
		outcome = next.tick()
	case EventStart:
		next.Running = true
	case EventPause:
		next.Running = false
	case EventToggle:
		next.Running = !next.Running
	case EventReset:
		next.reset()
	case EventSwitchPhase:
		if event.Phase.Valid() {
			next.switchPhase(event.Phase)
		}
	case EventSetConfig:
		next.setConfig(event.Config)
	case EventSetWorkVariant:
		next.setWorkVariant(event.Minutes)
	}

	outcome.Changed = next != current
	return next, outcome
}

func (current *Session) tick() Outcome {
	if !current.Running {
		return Outcome{}
	}
	if current.RemainingSeconds > 0 {
		current.RemainingSeconds--
	}
	if current.RemainingSeconds > 0 {
		return Outcome{}
	}
	return current.complete()
}

func (current *Session) complete() Outcome {
	finished := current.Phase
	current.Running = false

	next := PhaseWork
	if finished == PhaseWork {
		current.CompletedWork++
		current.AccumulatedWorkMinutes += current.WorkMinutes()
		every := current.Config.LongBreakEvery
		if every <= 0 {
			every = model.DefaultLongBreakEvery
		}
		next = PhaseShortBreak
		if current.CompletedWork%every == 0 {
			next = PhaseLongBreak
		}
	}

	current.switchPhase(next)
	return Outcome{Completed: true, Finished: finished}
}

func (current *Session) switchPhase(phase Phase) {
	current.Phase = phase
	current.reset()
}

func (current *Session) reset() {
	current.RemainingSeconds = current.PhaseDuration(current.Phase)
	current.Running = false
}

func (current *Session) setConfig(config model.TimerConfig) {
	config = config.Normalize()
	if config == current.Config {
		return
	}
	durationsChanged := config.Durations != current.Config.Durations
	if config.WorkMinutes != current.Config.WorkMinutes {
		current.WorkVariant = 0
	}
	current.Config = config
	if durationsChanged {
		current.reset()
	}
}

func (current *Session) setWorkVariant(minutes int) {
	if !model.IsWorkPreset(minutes) || minutes == current.WorkVariant {
		return
	}
	// Picking the length already in effect only records the selection.
	unchanged := minutes == current.WorkMinutes()
	current.WorkVariant = minutes
	if !unchanged {
		current.reset()
	}
}
