package session

// Phase identifies which interval the timer is counting down.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

// Phases lists every phase in display order.
var Phases = []Phase{PhaseWork, PhaseShortBreak, PhaseLongBreak}

// Valid reports whether phase is one of the known phases.
func (phase Phase) Valid() bool {
	return phase >= PhaseWork && phase <= PhaseLongBreak
}

func (phase Phase) String() string {
	switch phase {
	case PhaseWork:
		return "work"
	case PhaseShortBreak:
		return "short_break"
	case PhaseLongBreak:
		return "long_break"
	default:
		return "unknown"
	}
}

// Label returns the human readable phase name.
func (phase Phase) Label() string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak reports whether phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}
