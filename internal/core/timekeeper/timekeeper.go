package timekeeper

import (
	"context"
	"log"
	"sync"
	"time"

	"tomatick/internal/core/model"
	"tomatick/internal/core/session"
)

// Notifier is told about every completed phase. Failures are logged and never
// change timer state.
type Notifier interface {
	Notify(ctx context.Context, completion Completion) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval  time.Duration
	NotifyTimeout time.Duration
	Logger        *log.Logger
}

// TimeKeeper owns a session and the goroutine that ticks it.
type TimeKeeper struct {
	mu       sync.Mutex
	options  Config
	session  session.Session
	notifier Notifier
	events   []chan Event
	// stopCh is non-nil exactly while a ticking loop is alive.
	stopCh chan struct{}
	closed bool
}

// New creates a paused TimeKeeper at the start of a work phase.
func New(config model.TimerConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NotifyTimeout <= 0 {
		options.NotifyTimeout = 5 * time.Second
	}
	if options.Logger == nil {
		options.Logger = log.Default()
	}

	return &TimeKeeper{
		options: options,
		session: session.New(config),
	}
}

// SetNotifier injects the completion notifier.
func (keeper *TimeKeeper) SetNotifier(notifier Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns a copy of the current session.
func (keeper *TimeKeeper) Snapshot() session.Session {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.session
}

// Start resumes the countdown.
func (keeper *TimeKeeper) Start() { keeper.apply(session.Start()) }

// Pause stops the countdown.
func (keeper *TimeKeeper) Pause() { keeper.apply(session.Pause()) }

// Toggle flips between running and paused.
func (keeper *TimeKeeper) Toggle() { keeper.apply(session.Toggle()) }

// Reset restores the full duration of the current phase and pauses.
func (keeper *TimeKeeper) Reset() { keeper.apply(session.Reset()) }

// SwitchPhase moves to phase with a full, paused countdown.
func (keeper *TimeKeeper) SwitchPhase(phase session.Phase) {
	keeper.apply(session.SwitchPhase(phase))
}

// SetConfig replaces the timer configuration.
func (keeper *TimeKeeper) SetConfig(config model.TimerConfig) {
	keeper.apply(session.SetConfig(config))
}

// SetWorkVariant selects a work preset.
func (keeper *TimeKeeper) SetWorkVariant(minutes int) {
	keeper.apply(session.SetWorkVariant(minutes))
}

// Close stops the ticking loop and closes observers. Later calls are ignored.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.session.Running = false
	keeper.stopTickerLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) apply(event session.Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		keeper.options.Logger.Printf("timekeeper: %s ignored after close", event.Kind)
		return
	}
	keeper.applyLocked(event, time.Now())
}

func (keeper *TimeKeeper) applyLocked(event session.Event, now time.Time) {
	before := keeper.session
	next, outcome := session.Apply(before, event)
	keeper.session = next
	keeper.syncTickerLocked()

	if outcome.Completed {
		completion := Completion{
			Finished:      outcome.Finished,
			Next:          next.Phase,
			CompletedWork: next.CompletedWork,
			At:            now,
		}
		if outcome.Finished == session.PhaseWork {
			completion.WorkMinutes = before.WorkMinutes()
		}
		keeper.emitLocked(Event{
			Type:       EventCompleted,
			Session:    next,
			Completion: &completion,
			At:         now,
		})
		keeper.notifyLocked(completion)
		return
	}
	if !outcome.Changed {
		return
	}

	eventType := EventStateChange
	if event.Kind == session.EventTick {
		eventType = EventProgress
	}
	keeper.emitLocked(Event{
		Type:    eventType,
		Session: next,
		At:      now,
	})
}

func (keeper *TimeKeeper) syncTickerLocked() {
	if keeper.session.Running && keeper.stopCh == nil {
		keeper.stopCh = make(chan struct{})
		go keeper.run(keeper.stopCh)
		return
	}
	if !keeper.session.Running {
		keeper.stopTickerLocked()
	}
}

func (keeper *TimeKeeper) stopTickerLocked() {
	if keeper.stopCh == nil {
		return
	}
	close(keeper.stopCh)
	keeper.stopCh = nil
}

func (keeper *TimeKeeper) run(stop chan struct{}) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case tickTime := <-ticker.C:
			keeper.tick(stop, tickTime)
		}
	}
}

// tick applies one step unless stop belongs to a loop that has since been stopped.
func (keeper *TimeKeeper) tick(stop chan struct{}, tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || stop == nil || keeper.stopCh != stop {
		return
	}
	keeper.applyLocked(session.Tick(), tickTime)
}

func (keeper *TimeKeeper) notifyLocked(completion Completion) {
	notifier := keeper.notifier
	if notifier == nil {
		return
	}
	timeout := keeper.options.NotifyTimeout
	logger := keeper.options.Logger

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := notifier.Notify(ctx, completion); err != nil {
			logger.Printf("timekeeper: notify %s completion: %v", completion.Finished, err)
			keeper.emit(Event{
				Type:       EventNotifyError,
				Session:    keeper.Snapshot(),
				Completion: &completion,
				Message:    err.Error(),
				At:         time.Now(),
			})
		}
	}()
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.emitLocked(event)
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
