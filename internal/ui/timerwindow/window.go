package timerwindow

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tomatick/internal/core/model"
	"tomatick/internal/core/session"
)

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnToggle      func()
	OnReset       func()
	OnSwitchPhase func(session.Phase)
	OnWorkVariant func(minutes int)
	OnPreferences func()
}

// Window is the main timer window.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	phaseButtons map[session.Phase]*widget.Button
	variants     *widget.RadioGroup
	variantRow   *fyne.Container
	clock        *canvas.Text
	phaseLabel   *widget.Label
	progress     *widget.ProgressBar
	toggle       *widget.Button
	reset        *widget.Button
	completed    *widget.Label
	focused      *widget.Label
	// rendering suppresses widget callbacks while state is pushed into the widgets.
	rendering bool
}

var phaseColors = map[session.Phase]color.NRGBA{
	session.PhaseWork:       {R: 239, G: 68, B: 68, A: 255},
	session.PhaseShortBreak: {R: 34, G: 197, B: 94, A: 255},
	session.PhaseLongBreak:  {R: 59, G: 130, B: 246, A: 255},
}

// New creates the timer window showing initial.
func New(app fyne.App, callbacks Callbacks, initial session.Session) *Window {
	window := app.NewWindow("Tomatick")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		window:       window,
		callbacks:    callbacks,
		phaseButtons: make(map[session.Phase]*widget.Button, len(session.Phases)),
	}

	tabs := make([]fyne.CanvasObject, 0, len(session.Phases))
	for _, phase := range session.Phases {
		phase := phase
		button := widget.NewButton(phase.Label(), func() {
			if view.callbacks.OnSwitchPhase != nil {
				view.callbacks.OnSwitchPhase(phase)
			}
		})
		view.phaseButtons[phase] = button
		tabs = append(tabs, button)
	}

	options := make([]string, 0, len(model.WorkPresets))
	for _, minutes := range model.WorkPresets {
		options = append(options, presetLabel(minutes))
	}
	view.variants = widget.NewRadioGroup(options, view.handleVariant)
	view.variants.Horizontal = true
	view.variants.Required = true
	view.variantRow = container.NewCenter(container.NewHBox(widget.NewLabel("Work length"), view.variants))

	view.clock = canvas.NewText("--:--", phaseColors[session.PhaseWork])
	view.clock.TextSize = 56
	view.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clock.Alignment = fyne.TextAlignCenter

	view.phaseLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	view.progress = widget.NewProgressBar()

	view.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), view.handleToggle)
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})
	settings := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if view.callbacks.OnPreferences != nil {
			view.callbacks.OnPreferences()
		}
	})

	view.completed = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	view.focused = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	content := container.NewVBox(
		container.NewGridWithColumns(len(tabs), tabs...),
		view.variantRow,
		view.clock,
		view.phaseLabel,
		view.progress,
		container.NewCenter(container.NewHBox(view.toggle, view.reset, settings)),
		view.completed,
		view.focused,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 360))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	view.Render(initial)
	return view
}

// Show displays the window and brings it forward.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Render pushes current into the widgets. Must run on the UI goroutine.
func (view *Window) Render(current session.Session) {
	view.rendering = true
	defer func() { view.rendering = false }()

	for phase, button := range view.phaseButtons {
		importance := widget.LowImportance
		if phase == current.Phase {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}

	if current.Phase == session.PhaseWork {
		view.variantRow.Show()
	} else {
		view.variantRow.Hide()
	}
	selected := presetLabel(current.WorkMinutes())
	if !model.IsWorkPreset(current.WorkMinutes()) {
		selected = ""
	}
	if view.variants.Selected != selected {
		view.variants.SetSelected(selected)
	}

	view.clock.Text = current.Clock()
	view.clock.Color = phaseColors[current.Phase]
	view.clock.Refresh()

	view.phaseLabel.SetText(current.Phase.Label())
	view.progress.SetValue(current.Progress())

	if current.Running {
		view.toggle.SetText("Pause")
		view.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggle.SetText("Start")
		view.toggle.SetIcon(theme.MediaPlayIcon())
	}

	view.completed.SetText(fmt.Sprintf("Completed sessions: %d", current.CompletedWork))
	view.focused.SetText(fmt.Sprintf("Focused: %d min", current.AccumulatedWorkMinutes))
}

func (view *Window) handleToggle() {
	if view.callbacks.OnToggle != nil {
		view.callbacks.OnToggle()
	}
}

func (view *Window) handleVariant(option string) {
	if view.rendering || view.callbacks.OnWorkVariant == nil {
		return
	}
	if minutes, ok := parsePresetLabel(option); ok {
		view.callbacks.OnWorkVariant(minutes)
	}
}

func presetLabel(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

func parsePresetLabel(label string) (int, bool) {
	minutes, err := strconv.Atoi(strings.TrimSuffix(label, " min"))
	if err != nil || !model.IsWorkPreset(minutes) {
		return 0, false
	}
	return minutes, true
}
