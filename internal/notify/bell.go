package notify

import (
	"context"
	"fmt"
	"io"

	"tomatick/internal/core/timekeeper"
)

// Bell rings the terminal bell as an audible cue.
type Bell struct {
	Out io.Writer
}

// Notify implements timekeeper.Notifier.
func (bell Bell) Notify(context.Context, timekeeper.Completion) error {
	if bell.Out == nil {
		return ErrUnsupported
	}
	if _, err := io.WriteString(bell.Out, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
