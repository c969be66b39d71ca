// Package notify provides completion notifiers for the timekeeper.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tomatick/internal/core/session"
	"tomatick/internal/core/timekeeper"
)

// ErrUnsupported indicates the notification channel is not available on this system.
var ErrUnsupported = errors.New("notification channel unsupported")

// Noop ignores every completion.
type Noop struct{}

// Notify implements timekeeper.Notifier.
func (Noop) Notify(context.Context, timekeeper.Completion) error { return nil }

// Func adapts a plain function to timekeeper.Notifier.
type Func func(ctx context.Context, completion timekeeper.Completion) error

// Notify implements timekeeper.Notifier.
func (fn Func) Notify(ctx context.Context, completion timekeeper.Completion) error {
	return fn(ctx, completion)
}

// Multi fans a completion out to every notifier and joins their errors.
type Multi []timekeeper.Notifier

// Notify implements timekeeper.Notifier.
func (notifiers Multi) Notify(ctx context.Context, completion timekeeper.Completion) error {
	var errs []error
	for _, notifier := range notifiers {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, completion); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Message renders the title and body shown for a completion.
func Message(completion timekeeper.Completion) (string, string) {
	if completion.Finished == session.PhaseWork {
		title := "Work session complete"
		body := fmt.Sprintf("Time for a %s. %s done.", strings.ToLower(completion.Next.Label()), sessionCount(completion.CompletedWork))
		return title, body
	}
	return fmt.Sprintf("%s over", completion.Finished.Label()), "Ready for the next work session."
}

func sessionCount(count int) string {
	if count == 1 {
		return "1 session"
	}
	return fmt.Sprintf("%d sessions", count)
}
