package notify

import (
	"context"

	"fyne.io/fyne/v2"

	"tomatick/internal/core/timekeeper"
)

// FyneNotifier sends completions through the Fyne app notification API.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier wraps app.
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

// Notify implements timekeeper.Notifier.
func (notifier *FyneNotifier) Notify(_ context.Context, completion timekeeper.Completion) error {
	if notifier.app == nil {
		return ErrUnsupported
	}
	title, body := Message(completion)
	notifier.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}
