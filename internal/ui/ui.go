package ui

import (
	"context"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// ClockApp hosts the two clocks in a single window.
type ClockApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Ctx        context.Context

	Clock  engine.Clock // Injected clock for testability
	Layout config.Layout

	SupportedLanguages []string

	Analog *AnalogClock
	Owl    *OwlClock
}

// NewClockApp constructs the application and wires dependencies.
func NewClockApp(a fyne.App, ctx context.Context, clk engine.Clock, l config.Layout) *ClockApp {
	a.SetIcon(theme.HistoryIcon())

	if clk == nil {
		clk = engine.RealClock()
	}

	return &ClockApp{
		App:                a,
		Ctx:                ctx,
		Clock:              clk,
		Layout:             l,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run builds the window, starts both clocks and blocks in the UI loop.
func (app *ClockApp) Run() {
	app.SetupI18n()
	w := app.BuildWindow()
	app.Start()
	w.Show()
	app.App.Run()
}

// BuildWindow lays out the analog clock above the digital one, centred,
// with a fixed gap between them.
func (app *ClockApp) BuildWindow() fyne.Window {
	app.Analog = NewAnalogClock(app.Layout.AnalogSize, app.Clock)
	app.Owl = NewOwlClock(app.Clock, app.DateNames())

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, app.Layout.Spacing))

	stack := container.New(layout.NewCustomPaddedVBoxLayout(0),
		container.NewCenter(app.Analog),
		gap,
		container.NewCenter(app.Owl),
	)

	content := container.New(
		layout.NewCustomPaddedLayout(config.PaddingVertical, config.PaddingVertical, config.PaddingHorizontal, config.PaddingHorizontal),
		container.NewCenter(stack),
	)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.SetContent(content)
	w.SetOnClosed(func() {
		slog.Info(config.MsgWindowClosed, config.LogKeyComponent, config.CompUI)
		app.Stop()
	})
	app.Window = w

	slog.Info(config.MsgWindowBuilt,
		config.LogKeyComponent, config.CompUI,
		config.LogKeySize, app.Layout.AnalogSize,
		config.LogKeySpacing, app.Layout.Spacing,
		config.LogKeyLang, app.Layout.Language,
	)
	return w
}

// Start begins the per-second refresh of both clocks.
func (app *ClockApp) Start() {
	if app.Analog != nil {
		app.Analog.Start(app.Ctx)
	}
	if app.Owl != nil {
		app.Owl.Start(app.Ctx)
	}
}

// Stop halts both clocks.
func (app *ClockApp) Stop() {
	if app.Analog != nil {
		app.Analog.Stop()
	}
	if app.Owl != nil {
		app.Owl.Stop()
	}
}
