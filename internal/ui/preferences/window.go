package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"tomatick/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	work       *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	longEvery  *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Tomatick Settings")

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		work:       widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		longEvery:  widget.NewEntry(),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), prefs.work, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.longBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break after"), prefs.longEvery, widget.NewLabel("sessions")),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 260))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.work.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.shortBreak.SetText(strconv.Itoa(settings.ShortBreakMinutes))
	prefs.longBreak.SetText(strconv.Itoa(settings.LongBreakMinutes))
	prefs.longEvery.SetText(strconv.Itoa(settings.LongBreakEvery))
}

// handleSave coerces every field to a positive integer, falling back to the
// defaults rather than rejecting the form.
func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.WorkMinutes = model.ParseMinutes(prefs.work.Text, model.DefaultWorkMinutes)
	settings.ShortBreakMinutes = model.ParseMinutes(prefs.shortBreak.Text, model.DefaultShortBreakMinutes)
	settings.LongBreakMinutes = model.ParseMinutes(prefs.longBreak.Text, model.DefaultLongBreakMinutes)
	settings.LongBreakEvery = model.ParseMinutes(prefs.longEvery.Text, model.DefaultLongBreakEvery)

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
