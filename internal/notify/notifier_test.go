package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomatick/internal/core/session"
	"tomatick/internal/core/timekeeper"
)

func workDone(count int, next session.Phase) timekeeper.Completion {
	return timekeeper.Completion{
		Finished:      session.PhaseWork,
		Next:          next,
		CompletedWork: count,
		WorkMinutes:   25,
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name       string
		completion timekeeper.Completion
		title      string
		body       string
	}{
		{
			name:       "first work session",
			completion: workDone(1, session.PhaseShortBreak),
			title:      "Work session complete",
			body:       "Time for a short break. 1 session done.",
		},
		{
			name:       "fourth work session",
			completion: workDone(4, session.PhaseLongBreak),
			title:      "Work session complete",
			body:       "Time for a long break. 4 sessions done.",
		},
		{
			name:       "short break over",
			completion: timekeeper.Completion{Finished: session.PhaseShortBreak, Next: session.PhaseWork},
			title:      "Short Break over",
			body:       "Ready for the next work session.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := Message(tt.completion)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestMultiJoinsErrors(t *testing.T) {
	var calls int
	first := errors.New("first")
	second := errors.New("second")
	multi := Multi{
		Func(func(context.Context, timekeeper.Completion) error { calls++; return first }),
		nil,
		Noop{},
		Func(func(context.Context, timekeeper.Completion) error { calls++; return second }),
	}

	err := multi.Notify(context.Background(), workDone(1, session.PhaseShortBreak))

	require.Error(t, err)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.Equal(t, 2, calls)
}

func TestMultiWithoutFailures(t *testing.T) {
	multi := Multi{Noop{}, Bell{Out: &bytes.Buffer{}}}

	assert.NoError(t, multi.Notify(context.Background(), workDone(1, session.PhaseShortBreak)))
}

func TestBell(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Bell{Out: &out}.Notify(context.Background(), workDone(1, session.PhaseShortBreak)))
	assert.Equal(t, "\a", out.String())

	err := Bell{}.Notify(context.Background(), workDone(1, session.PhaseShortBreak))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDesktopCommands(t *testing.T) {
	type call struct {
		name string
		args []string
	}

	tests := []struct {
		goos   string
		expect call
	}{
		{
			goos: "linux",
			expect: call{
				name: "notify-send",
				args: []string{"--app-name=Tomatick", "Work session complete", "Time for a short break. 1 session done."},
			},
		},
		{
			goos: "darwin",
			expect: call{
				name: "osascript",
				args: []string{"-e", `display notification "Time for a short break. 1 session done." with title "Work session complete"`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var got call
			desktop := &Desktop{
				GOOS: tt.goos,
				Run: func(_ context.Context, name string, args ...string) error {
					got = call{name: name, args: args}
					return nil
				},
			}

			require.NoError(t, desktop.Notify(context.Background(), workDone(1, session.PhaseShortBreak)))
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestDesktopUnsupportedPlatform(t *testing.T) {
	desktop := &Desktop{
		GOOS: "plan9",
		Run: func(context.Context, string, ...string) error {
			t.Fatal("runner must not be called")
			return nil
		},
	}

	err := desktop.Notify(context.Background(), workDone(1, session.PhaseShortBreak))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDesktopWrapsRunnerError(t *testing.T) {
	failure := errors.New("exit status 1")
	desktop := &Desktop{
		GOOS: "linux",
		Run:  func(context.Context, string, ...string) error { return failure },
	}

	err := desktop.Notify(context.Background(), workDone(1, session.PhaseShortBreak))
	assert.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "notify-send")
}

func TestEscapeAppleScript(t *testing.T) {
	assert.Equal(t, `say \"hi\" \\ bye`, escapeAppleScript(`say "hi" \ bye`))
}

func TestFyneNotifier(t *testing.T) {
	app := test.NewTempApp(t)
	notifier := NewFyneNotifier(app)

	expected := fyne.NewNotification("Work session complete", "Time for a long break. 4 sessions done.")
	test.AssertNotificationSent(t, expected, func() {
		require.NoError(t, notifier.Notify(context.Background(), workDone(4, session.PhaseLongBreak)))
	})
}

func TestFyneNotifierWithoutApp(t *testing.T) {
	err := NewFyneNotifier(nil).Notify(context.Background(), workDone(1, session.PhaseShortBreak))
	assert.ErrorIs(t, err, ErrUnsupported)
}
