package timekeeper

import (
	"time"

	"tomatick/internal/core/session"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventCompleted   EventType = "completed"
	EventNotifyError EventType = "notify_error"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type       EventType
	Session    session.Session
	Completion *Completion
	Message    string
	At         time.Time
}

// Completion describes a phase that ran down to zero.
type Completion struct {
	Finished      session.Phase
	Next          session.Phase
	CompletedWork int
	// WorkMinutes is the length of the finished work phase, zero after a break.
	WorkMinutes int
	At          time.Time
}
