package main

import (
	"errors"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"tomatick/internal/core/session"
	"tomatick/internal/core/timekeeper"
	"tomatick/internal/notify"
	"tomatick/internal/platform"
	"tomatick/internal/storage"
	"tomatick/internal/ui/preferences"
	"tomatick/internal/ui/timerwindow"
	"tomatick/internal/ui/tray"
)

const appName = "Tomatick"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v; activated the running window", err)
			return
		}
		log.Fatalf("single instance: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := loadSettings()

	fyneApp := app.NewWithID("com.tomatick.app")
	fyneApp.SetIcon(theme.MediaRecordIcon())

	keeper := timekeeper.New(settings.TimerConfig(), timekeeper.Config{TickInterval: time.Second})
	defer keeper.Close()
	keeper.SetNotifier(buildNotifier(fyneApp, settings))

	var prefsWindow *preferences.Window
	timerView := timerwindow.New(fyneApp, timerwindow.Callbacks{
		OnToggle:      keeper.Toggle,
		OnReset:       keeper.Reset,
		OnSwitchPhase: keeper.SwitchPhase,
		OnWorkVariant: keeper.SetWorkVariant,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	}, keeper.Snapshot())

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		keeper.SetConfig(settings.TimerConfig())
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnToggle:      keeper.Toggle,
			OnReset:       keeper.Reset,
			OnSwitchPhase: keeper.SwitchPhase,
			OnWorkVariant: keeper.SetWorkVariant,
			OnShowTimer: func() {
				timerView.Show()
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: func() {
				keeper.Close()
				fyneApp.Quit()
			},
		}, keeper.Snapshot())
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	guard.Serve(func() {
		fyne.Do(timerView.Show)
	})

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(event, timerView, trayManager)
		}
	}()

	timerView.Show()
	fyneApp.Run()
}

func loadSettings() preferences.Settings {
	settings := preferences.DefaultSettings()
	path, err := storage.SettingsPath(platform.NewService(), appName)
	if err != nil {
		log.Printf("settings: %v", err)
		return storage.ApplyEnv(settings)
	}
	settings, err = storage.LoadSettings(path)
	if err != nil {
		log.Printf("settings: %v; using defaults", err)
	}
	return storage.ApplyEnv(settings)
}

func buildNotifier(fyneApp fyne.App, settings preferences.Settings) timekeeper.Notifier {
	var notifiers notify.Multi
	if settings.DesktopNotifications {
		if settings.NativeNotifications {
			notifiers = append(notifiers, notify.NewDesktop())
		} else {
			notifiers = append(notifiers, notify.NewFyneNotifier(fyneApp))
		}
	}
	if settings.Bell {
		notifiers = append(notifiers, notify.Bell{Out: os.Stdout})
	}
	if len(notifiers) == 0 {
		return notify.Noop{}
	}
	return notifiers
}

func handleEvent(event timekeeper.Event, timerView *timerwindow.Window, trayManager *tray.Manager) {
	switch event.Type {
	case timekeeper.EventNotifyError:
		// Already logged by the keeper; the timer carries on.
		return
	case timekeeper.EventCompleted:
		if event.Completion != nil {
			log.Printf("%s complete, next: %s (%d work sessions)",
				event.Completion.Finished, event.Completion.Next, event.Completion.CompletedWork)
		}
	}

	current := event.Session
	fyne.Do(func() {
		timerView.Render(current)
		if trayManager != nil {
			trayManager.Update(current)
		}
		if event.Type == timekeeper.EventCompleted && current.Phase != session.PhaseWork {
			timerView.Show()
		}
	})
}
