package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"tomatick/internal/core/timekeeper"
)

// CommandRunner executes an external command.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// Desktop shows a native notification through notify-send or osascript.
type Desktop struct {
	GOOS string
	Run  CommandRunner
}

// NewDesktop returns a Desktop notifier for the running platform.
func NewDesktop() *Desktop {
	return &Desktop{
		GOOS: runtime.GOOS,
		Run:  runCommand,
	}
}

// Notify implements timekeeper.Notifier.
func (desktop *Desktop) Notify(ctx context.Context, completion timekeeper.Completion) error {
	title, body := Message(completion)
	name, args, err := desktop.command(title, body)
	if err != nil {
		return err
	}
	if err := desktop.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (desktop *Desktop) command(title, body string) (string, []string, error) {
	switch desktop.GOOS {
	case "linux":
		return "notify-send", []string{"--app-name=Tomatick", title, body}, nil
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return "osascript", []string{"-e", script}, nil
	default:
		return "", nil, fmt.Errorf("desktop notification on %s: %w", desktop.GOOS, ErrUnsupported)
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func escapeAppleScript(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}
