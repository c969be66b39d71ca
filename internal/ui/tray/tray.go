package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"tomatick/internal/core/model"
	"tomatick/internal/core/session"
)

const appTitle = "Tomatick"

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle      func()
	OnReset       func()
	OnSwitchPhase func(session.Phase)
	OnWorkVariant func(minutes int)
	OnShowTimer   func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host      Host
	callbacks Callbacks
	current   session.Session
	running   bool
	rendered  bool
}

// New creates a tray manager and installs its menu.
func New(host Host, callbacks Callbacks, initial session.Session) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
	}
	manager.Update(initial)
	return manager
}

// Update refreshes the status line, menu labels and icon for current.
func (manager *Manager) Update(current session.Session) {
	if manager.rendered && current == manager.current {
		return
	}
	iconChanged := !manager.rendered || current.Running != manager.running
	manager.current = current
	manager.running = current.Running
	manager.rendered = true

	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(manager.buildMenu())
	if iconChanged {
		manager.host.SetSystemTrayIcon(trayIcon(current.Running))
	}
}

// StatusLine returns the text shown at the top of the menu.
func (manager *Manager) StatusLine() string {
	return statusLine(manager.current)
}

func (manager *Manager) buildMenu() *fyne.Menu {
	status := fyne.NewMenuItem(statusLine(manager.current), nil)
	status.Disabled = true

	toggleLabel := "Start"
	if manager.current.Running {
		toggleLabel = "Pause"
	}
	toggle := fyne.NewMenuItem(toggleLabel, manager.callbacks.OnToggle)
	reset := fyne.NewMenuItem("Reset", manager.callbacks.OnReset)

	phaseItems := make([]*fyne.MenuItem, 0, len(session.Phases))
	for _, phase := range session.Phases {
		phase := phase
		item := fyne.NewMenuItem(phase.Label(), func() {
			if manager.callbacks.OnSwitchPhase != nil {
				manager.callbacks.OnSwitchPhase(phase)
			}
		})
		item.Checked = phase == manager.current.Phase
		phaseItems = append(phaseItems, item)
	}
	switchPhase := fyne.NewMenuItem("Switch to", nil)
	switchPhase.ChildMenu = fyne.NewMenu("", phaseItems...)

	variantItems := make([]*fyne.MenuItem, 0, len(model.WorkPresets))
	for _, minutes := range model.WorkPresets {
		minutes := minutes
		item := fyne.NewMenuItem(fmt.Sprintf("%d minutes", minutes), func() {
			if manager.callbacks.OnWorkVariant != nil {
				manager.callbacks.OnWorkVariant(minutes)
			}
		})
		item.Checked = minutes == manager.current.WorkMinutes()
		variantItems = append(variantItems, item)
	}
	workLength := fyne.NewMenuItem("Work length", nil)
	workLength.ChildMenu = fyne.NewMenu("", variantItems...)

	return fyne.NewMenu(appTitle,
		status,
		toggle,
		reset,
		fyne.NewMenuItemSeparator(),
		switchPhase,
		workLength,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", manager.callbacks.OnShowTimer),
		fyne.NewMenuItem("Preferences", manager.callbacks.OnPreferences),
		fyne.NewMenuItem("Quit", manager.callbacks.OnQuit),
	)
}

func statusLine(current session.Session) string {
	status := fmt.Sprintf("%s %s", current.Phase.Label(), current.Clock())
	if !current.Running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return fmt.Sprintf("%s · %d done", status, current.CompletedWork)
}

func trayIcon(running bool) fyne.Resource {
	if running {
		return theme.MediaPlayIcon()
	}
	return theme.MediaPauseIcon()
}
