package ui

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/paint"
)

// OwlClock is the digital clock: a dark beveled panel with a glowing,
// colour-cycling HH:mm:ss line above the date.
//
// The time text colour is sampled from engine.PulseColor using the time
// elapsed since the widget was created, so it holds no animation state.
type OwlClock struct {
	widget.BaseWidget

	clock engine.Clock
	names engine.DateNames
	epoch time.Time

	mu  sync.RWMutex
	now time.Time

	ticker ticking
	pulse  *fyne.Animation
}

// NewOwlClock creates the digital clock showing clk.Now(). A nil names uses English.
func NewOwlClock(clk engine.Clock, names engine.DateNames) *OwlClock {
	if names == nil {
		names = engine.EnglishNames{}
	}
	now := clk.Now()
	c := &OwlClock{clock: clk, names: names, epoch: now, now: now}
	c.ExtendBaseWidget(c)
	return c
}

// SetTime updates the displayed time and date.
func (c *OwlClock) SetTime(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
	c.Refresh()
}

// Time returns the instant currently displayed.
func (c *OwlClock) Time() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// TimeColor is the colour of the time text at this moment.
func (c *OwlClock) TimeColor() color.NRGBA {
	return engine.PulseColor(c.clock.Since(c.epoch))
}

// Start re-reads the clock every second and starts the colour pulse.
func (c *OwlClock) Start(ctx context.Context) {
	c.ticker.start(ctx, c.clock, config.CompOwl, c.SetTime)

	if c.pulse == nil {
		c.pulse = fyne.NewAnimation(config.PulseDuration, func(float32) { c.Refresh() })
		c.pulse.Curve = fyne.AnimationLinear
		c.pulse.RepeatCount = fyne.AnimationRepeatForever
		c.pulse.Start()
		slog.Debug(config.MsgPulseStart,
			config.LogKeyComponent, config.CompOwl,
			config.LogKeyInterval, config.PulseDuration)
	}
}

// Stop halts the refresh loop and the colour pulse.
func (c *OwlClock) Stop() {
	c.ticker.stop()
	if c.pulse != nil {
		c.pulse.Stop()
		c.pulse = nil
	}
}

// CreateRenderer implements fyne.Widget.
func (c *OwlClock) CreateRenderer() fyne.WidgetRenderer {
	timeText := canvas.NewText("", config.ColorPulseFrom)
	timeText.TextSize = config.TimeTextSize
	timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	dateText := canvas.NewText("", config.ColorDateText)
	dateText.TextSize = config.DateTextSize
	dateText.TextStyle = fyne.TextStyle{Bold: true}

	r := &owlRenderer{
		clock:    c,
		panel:    canvas.NewRaster(func(w, h int) image.Image { return paint.OwlPanel(w, h) }),
		glow:     canvas.NewRadialGradient(config.ColorTransparent, config.ColorTransparent),
		timeText: timeText,
		dateText: dateText,
	}
	r.updateContent()
	return r
}

type owlRenderer struct {
	clock *OwlClock

	panel    *canvas.Raster
	glow     *canvas.RadialGradient
	timeText *canvas.Text
	dateText *canvas.Text

	size fyne.Size
}

func (r *owlRenderer) Destroy() {}

func (r *owlRenderer) MinSize() fyne.Size {
	return fyne.NewSize(config.PanelWidth, config.PanelHeight)
}

func (r *owlRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.panel, r.glow, r.timeText, r.dateText}
}

func (r *owlRenderer) Layout(size fyne.Size) {
	r.size = size
	r.panel.Move(fyne.NewPos(0, 0))
	r.panel.Resize(size)
	r.layoutText()
}

// layoutText centres both lines horizontally. The time baseline sits on the
// vertical middle and the date baseline a fixed gap above the bottom edge.
func (r *owlRenderer) layoutText() {
	w, h := r.size.Width, r.size.Height

	ts := r.timeText.MinSize()
	r.timeText.Resize(ts)
	r.timeText.Move(fyne.NewPos((w-ts.Width)/2, h/2-ts.Height*config.BaselineRatio))

	ds := r.dateText.MinSize()
	r.dateText.Resize(ds)
	r.dateText.Move(fyne.NewPos((w-ds.Width)/2, h-config.DateBaselineGap-ds.Height*config.BaselineRatio))

	gs := fyne.NewSize(ts.Width*config.GlowSpreadRatio, ts.Height*config.GlowSpreadRatio)
	r.glow.Resize(gs)
	r.glow.Move(r.timeText.Position().Add(fyne.NewDelta((ts.Width-gs.Width)/2, (ts.Height-gs.Height)/2)))
}

func (r *owlRenderer) Refresh() {
	r.updateContent()
	r.layoutText()
	canvas.Refresh(r.glow)
	canvas.Refresh(r.timeText)
	canvas.Refresh(r.dateText)
}

func (r *owlRenderer) updateContent() {
	now := r.clock.Time()
	col := r.clock.TimeColor()

	r.timeText.Text = engine.FormatTime(now)
	r.timeText.Color = col
	r.glow.StartColor = engine.WithAlpha(col, config.GlowAlpha)
	r.glow.EndColor = config.ColorTransparent
	r.dateText.Text = engine.FormatDate(now, r.clock.names)
}
