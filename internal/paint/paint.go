// Package paint rasterizes the gradient layers Fyne has no primitive for:
// multi-stop linear and radial gradients filled or stroked along rounded
// rectangles and discs. Shapes are scanned by rasterx and composited over
// each other in paint order.
package paint

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// miterLimit is only consulted by miter joins; rounded outlines never reach it.
const miterLimit = 4 << 6

// Stops spreads colours over evenly spaced gradient stops.
func Stops(colors ...color.Color) []rasterx.GradStop {
	stops := make([]rasterx.GradStop, len(colors))
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = stop(c, off)
	}
	return stops
}

// stop moves the alpha of c into the stop opacity: rasterx blends stop
// colours as opaque RGB and applies opacity afterwards.
func stop(c color.Color, offset float64) rasterx.GradStop {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rasterx.GradStop{
		StopColor: color.NRGBA{R: n.R, G: n.G, B: n.B, A: 0xFF},
		Offset:    offset,
		Opacity:   float64(n.A) / 0xFF,
	}
}

// Linear paints stops along the segment (x1,y1)-(x2,y2), padded beyond its ends.
func Linear(x1, y1, x2, y2 float64, stops []rasterx.GradStop) *rasterx.Gradient {
	return &rasterx.Gradient{
		Points: [5]float64{x1, y1, x2, y2},
		Stops:  stops,
		Matrix: rasterx.Identity,
		Units:  rasterx.UserSpaceOnUse,
	}
}

// Vertical paints stops from top to bottom.
func Vertical(top, bottom float64, stops []rasterx.GradStop) *rasterx.Gradient {
	return Linear(0, top, 0, bottom, stops)
}

// Radial paints stops outwards from (cx,cy) over radius r.
func Radial(cx, cy, r float64, stops []rasterx.GradStop) *rasterx.Gradient {
	return &rasterx.Gradient{
		Points:   [5]float64{cx, cy, cx, cy, r},
		Stops:    stops,
		Matrix:   rasterx.Identity,
		Units:    rasterx.UserSpaceOnUse,
		IsRadial: true,
	}
}

// RoundRect is an axis-aligned rectangle with circular corners.
type RoundRect struct {
	X, Y, W, H, Radius float64
}

func (r RoundRect) addTo(p rasterx.Adder) {
	rasterx.AddRoundRect(r.X, r.Y, r.X+r.W, r.Y+r.H, r.Radius, r.Radius, 0, rasterx.RoundGap, p)
}

// Surface is an RGBA image that shapes are painted onto with source-over
// compositing.
type Surface struct {
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewSurface returns a transparent w×h surface.
func NewSurface(w, h int) *Surface {
	w, h = max(w, 0), max(h, 0)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Surface{
		img:     img,
		filler:  rasterx.NewFiller(w, h, scanner),
		stroker: rasterx.NewStroker(w, h, scanner),
	}
}

// FillRoundRect paints the inside of r with g.
func (s *Surface) FillRoundRect(r RoundRect, g *rasterx.Gradient) {
	r.addTo(s.filler)
	s.draw(s.filler, g)
}

// StrokeRoundRect paints a band of the given width centred on the outline of r.
func (s *Surface) StrokeRoundRect(r RoundRect, width float64, g *rasterx.Gradient) {
	s.stroker.SetStroke(fixed.Int26_6(width*64), miterLimit, nil, nil, rasterx.RoundGap, rasterx.Round)
	r.addTo(s.stroker)
	s.draw(s.stroker, g)
}

// FillDisc paints a circle of radius r centred on (cx,cy) with g.
func (s *Surface) FillDisc(cx, cy, r float64, g *rasterx.Gradient) {
	rasterx.AddCircle(cx, cy, r, s.filler)
	s.draw(s.filler, g)
}

// Image returns the painted pixels.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) draw(sc rasterx.Scanner, g *rasterx.Gradient) {
	b := s.img.Bounds()
	g.Bounds.W, g.Bounds.H = float64(b.Dx()), float64(b.Dy())
	sc.SetColor(g.GetColorFunction(1))
	sc.Draw()
	sc.Clear()
}
