package engine

import (
	"math"

	"github.com/tartampluch/go-clock/internal/config"
)

// Point is a position on the widget canvas. Y grows downwards.
type Point struct {
	X, Y float64
}

// Segment is a stroked line on the face.
type Segment struct {
	Start Point
	End   Point
	Width float64
}

// Tick is one tick mark. Degrees is the clock-face angle:
// 12 o'clock is zero and the angle grows clockwise.
type Tick struct {
	Degrees float64
	Segment
}

// Hands holds the three hand segments for one Reading.
type Hands struct {
	Hour   Segment
	Minute Segment
	Second Segment
}

// Face is the geometry of a square analog clock of a given size.
// Every length is derived from Size.
type Face struct {
	Size       float64
	Center     Point
	Radius     float64 // inner white face
	Frame      float64 // bezel thickness
	FaceRadius float64 // gradient disc, slightly larger than Radius
}

// NewFace derives the face geometry from the widget size.
func NewFace(size float64) Face {
	radius := size * config.FaceRadiusRatio
	frame := size * config.FrameRatio
	return Face{
		Size:       size,
		Center:     Point{X: size / 2, Y: size / 2},
		Radius:     radius,
		Frame:      frame,
		FaceRadius: radius + frame*config.FaceRimRatio,
	}
}

// HourHandDegrees is the drawing angle of the hour hand, advancing half a
// degree per minute between hour marks.
func HourHandDegrees(hour, minute int) float64 {
	h := hour % config.HoursOnFace
	return float64(h)*config.DegreesPerHour + float64(minute)*config.HourHandPerMinute - config.TopOfFaceOffsetDeg
}

// MinuteHandDegrees is the drawing angle of the minute hand.
func MinuteHandDegrees(minute int) float64 {
	return float64(minute)*config.DegreesPerMinute - config.TopOfFaceOffsetDeg
}

// SecondHandDegrees is the drawing angle of the second hand.
func SecondHandDegrees(second int) float64 {
	return float64(second)*config.DegreesPerSecond - config.TopOfFaceOffsetDeg
}

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// At returns the point at distance r from the centre along the drawing angle deg.
func (f Face) At(deg, r float64) Point {
	rad := Radians(deg)
	return Point{
		X: f.Center.X + math.Cos(rad)*r,
		Y: f.Center.Y + math.Sin(rad)*r,
	}
}

// HourTicks returns the 12 thick marks, one every 30 degrees starting at 12 o'clock.
func (f Face) HourTicks() []Tick {
	ticks := make([]Tick, 0, config.HoursOnFace)
	for i := 0; i < config.HoursOnFace; i++ {
		deg := float64(i) * config.DegreesPerHour
		ticks = append(ticks, f.tick(deg, config.HourTickStart, f.Size*config.HourTickWidth))
	}
	return ticks
}

// MinuteTicks returns the 48 thin marks, one every 6 degrees except where an hour mark sits.
func (f Face) MinuteTicks() []Tick {
	ticks := make([]Tick, 0, config.MinutePositions-config.HoursOnFace)
	for i := 0; i < config.MinutePositions; i++ {
		if i%config.MinutesPerHourTick == 0 {
			continue
		}
		deg := float64(i) * config.DegreesPerMinute
		ticks = append(ticks, f.tick(deg, config.MinuteTickStart, f.Size*config.MinuteTickWidth))
	}
	return ticks
}

func (f Face) tick(faceDeg, start, width float64) Tick {
	deg := faceDeg - config.TopOfFaceOffsetDeg
	return Tick{
		Degrees: faceDeg,
		Segment: Segment{
			Start: f.At(deg, f.Radius*start),
			End:   f.At(deg, f.Radius*config.TickEnd),
			Width: width,
		},
	}
}

// Hands places the hour, minute and second hands for r.
func (f Face) Hands(r Reading) Hands {
	hand := func(deg, length, width float64) Segment {
		return Segment{Start: f.Center, End: f.At(deg, f.Radius*length), Width: f.Size * width}
	}
	return Hands{
		Hour:   hand(HourHandDegrees(r.Hour, r.Minute), config.HourHandLength, config.HourHandWidth),
		Minute: hand(MinuteHandDegrees(r.Minute), config.MinuteHandLength, config.MinuteHandWidth),
		Second: hand(SecondHandDegrees(r.Second), config.SecondHandLength, config.SecondHandWidth),
	}
}
