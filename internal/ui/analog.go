package ui

import (
	"context"
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/paint"
)

// AnalogClock is a square clock with a golden 3D bezel, tick marks and three hands.
type AnalogClock struct {
	widget.BaseWidget

	size  float32
	clock engine.Clock

	mu  sync.RWMutex
	now time.Time

	ticker ticking
}

// NewAnalogClock creates a clock of the given side length (dp) showing clk.Now().
func NewAnalogClock(size float32, clk engine.Clock) *AnalogClock {
	c := &AnalogClock{size: size, clock: clk, now: clk.Now()}
	c.ExtendBaseWidget(c)
	return c
}

// SetTime moves the hands to t and redraws.
func (c *AnalogClock) SetTime(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
	c.Refresh()
}

// Time returns the instant currently displayed.
func (c *AnalogClock) Time() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Start re-reads the clock every second until Stop is called or ctx ends.
func (c *AnalogClock) Start(ctx context.Context) {
	c.ticker.start(ctx, c.clock, config.CompAnalog, c.SetTime)
}

// Stop halts the refresh loop.
func (c *AnalogClock) Stop() {
	c.ticker.stop()
}

// CreateRenderer implements fyne.Widget.
func (c *AnalogClock) CreateRenderer() fyne.WidgetRenderer {
	r := &analogRenderer{
		clock:     c,
		shadow:    canvas.NewRectangle(config.ColorFrameShadow),
		frame:     canvas.NewRectangle(config.ColorFrameMain),
		highlight: canvas.NewRectangle(config.ColorFrameHighlight),
		faceDisc:  canvas.NewRaster(func(w, h int) image.Image { return paint.FaceDisc(w, h) }),
		face:      canvas.NewCircle(config.ColorFace),
		hourHand:  canvas.NewLine(config.ColorInk),
		minHand:   canvas.NewLine(config.ColorInk),
		secHand:   canvas.NewLine(config.ColorSecondHand),
		dot:       canvas.NewCircle(config.ColorInk),
		shine:     canvas.NewCircle(config.ColorCenterShine),
	}

	for range config.HoursOnFace {
		r.hourTicks = append(r.hourTicks, canvas.NewLine(config.ColorInk))
	}
	for range config.MinutePositions - config.HoursOnFace {
		r.minuteTicks = append(r.minuteTicks, canvas.NewLine(config.ColorMinuteTick))
	}

	r.objects = []fyne.CanvasObject{r.shadow, r.frame, r.highlight, r.faceDisc, r.face}
	for _, l := range r.hourTicks {
		r.objects = append(r.objects, l)
	}
	for _, l := range r.minuteTicks {
		r.objects = append(r.objects, l)
	}
	r.objects = append(r.objects, r.hourHand, r.minHand, r.secHand, r.dot, r.shine)

	return r
}

type analogRenderer struct {
	clock *AnalogClock

	shadow, frame, highlight *canvas.Rectangle
	faceDisc                 *canvas.Raster
	face                     *canvas.Circle
	hourTicks, minuteTicks   []*canvas.Line
	hourHand, minHand        *canvas.Line
	secHand                  *canvas.Line
	dot, shine               *canvas.Circle

	objects []fyne.CanvasObject

	// geometry of the last Layout, origin is the top-left of the square face
	geom   engine.Face
	origin fyne.Position
}

func (r *analogRenderer) Destroy() {}

func (r *analogRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(r.clock.size)
}

func (r *analogRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *analogRenderer) Layout(size fyne.Size) {
	side := fyne.Min(size.Width, size.Height)
	r.origin = fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)
	r.geom = engine.NewFace(float64(side))
	g := r.geom

	frameAt := func(rect *canvas.Rectangle, inset, corner float64) {
		rect.Move(r.origin.AddXY(float32(inset), float32(inset)))
		rect.Resize(fyne.NewSquareSize(side - float32(2*inset)))
		rect.CornerRadius = float32(g.Size * corner)
	}
	frameAt(r.shadow, g.Frame*config.ShadowInsetRatio, config.FrameCornerRatio)
	frameAt(r.frame, 0, config.FrameCornerRatio)
	frameAt(r.highlight, g.Frame*config.HighlightInsetRatio, config.HighlightCornerRatio)

	r.placeCircle(r.faceDisc, g.Center, g.FaceRadius)
	r.placeCircle(r.face, g.Center, g.Radius)

	for i, t := range g.HourTicks() {
		r.placeLine(r.hourTicks[i], t.Segment)
	}
	for i, t := range g.MinuteTicks() {
		r.placeLine(r.minuteTicks[i], t.Segment)
	}

	r.placeCircle(r.dot, g.Center, g.Size*config.CenterDotRatio)
	r.placeCircle(r.shine, g.Center, g.Size*config.CenterHighlightRatio)

	r.layoutHands()
}

func (r *analogRenderer) Refresh() {
	r.layoutHands()
	canvas.Refresh(r.hourHand)
	canvas.Refresh(r.minHand)
	canvas.Refresh(r.secHand)
}

func (r *analogRenderer) layoutHands() {
	h := r.geom.Hands(engine.ReadingAt(r.clock.Time()))
	r.placeLine(r.hourHand, h.Hour)
	r.placeLine(r.minHand, h.Minute)
	r.placeLine(r.secHand, h.Second)
}

func (r *analogRenderer) pos(p engine.Point) fyne.Position {
	return r.origin.AddXY(float32(p.X), float32(p.Y))
}

func (r *analogRenderer) placeLine(l *canvas.Line, s engine.Segment) {
	l.Position1 = r.pos(s.Start)
	l.Position2 = r.pos(s.End)
	l.StrokeWidth = float32(s.Width)
}

func (r *analogRenderer) placeCircle(o fyne.CanvasObject, center engine.Point, radius float64) {
	o.Move(r.pos(engine.Point{X: center.X - radius, Y: center.Y - radius}))
	o.Resize(fyne.NewSquareSize(float32(2 * radius)))
}
