package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/engine"
)

const eps = 1e-9

// -----------------------------------------------------------------------------
// Hand Angles
// -----------------------------------------------------------------------------

func TestHourHandDegrees_AllPositions(t *testing.T) {
	for h := 0; h < 12; h++ {
		for m := 0; m < 60; m++ {
			want := float64(h*30) + float64(m)*0.5 - 90
			assert.InDelta(t, want, engine.HourHandDegrees(h, m), eps, "h=%d m=%d", h, m)
		}
	}
}

func TestHourHandDegrees_WrapsAtTwelve(t *testing.T) {
	assert.Equal(t, engine.HourHandDegrees(1, 5), engine.HourHandDegrees(13, 5))
	assert.Equal(t, engine.HourHandDegrees(0, 0), engine.HourHandDegrees(12, 0))
}

func TestMinuteAndSecondHandDegrees(t *testing.T) {
	for v := 0; v < 60; v++ {
		want := float64(v*6) - 90
		assert.InDelta(t, want, engine.MinuteHandDegrees(v), eps, "minute=%d", v)
		assert.InDelta(t, want, engine.SecondHandDegrees(v), eps, "second=%d", v)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-90, 270},
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-450, 270},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, engine.NormalizeDegrees(tt.in), eps, "in=%v", tt.in)
	}
}

// -----------------------------------------------------------------------------
// Readings
// -----------------------------------------------------------------------------

func TestReadingAt_UsesTwelveHourDial(t *testing.T) {
	ts := time.Date(2025, 3, 14, 13, 5, 9, 0, time.UTC)
	assert.Equal(t, engine.Reading{Hour: 1, Minute: 5, Second: 9}, engine.ReadingAt(ts))

	midnight := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, engine.Reading{}, engine.ReadingAt(midnight))
}

// -----------------------------------------------------------------------------
// Geometry
// -----------------------------------------------------------------------------

func TestNewFace_DerivedFromSize(t *testing.T) {
	f := engine.NewFace(250)

	assert.Equal(t, engine.Point{X: 125, Y: 125}, f.Center)
	assert.InDelta(t, 100, f.Radius, eps)
	assert.InDelta(t, 20, f.Frame, eps)
	assert.InDelta(t, 106, f.FaceRadius, eps)
}

func TestHourTicks(t *testing.T) {
	f := engine.NewFace(200)
	ticks := f.HourTicks()
	require.Len(t, ticks, 12)

	for i, tk := range ticks {
		assert.InDelta(t, float64(i*30), tk.Degrees, eps)
		assert.InDelta(t, 0, math.Mod(tk.Degrees, 30), eps)
		assert.InDelta(t, 2, tk.Width, eps)
		assert.InDelta(t, f.Radius*0.85, dist(f.Center, tk.Start), 1e-6)
		assert.InDelta(t, f.Radius*0.95, dist(f.Center, tk.End), 1e-6)
	}

	// 12 o'clock points straight up.
	assert.InDelta(t, f.Center.X, ticks[0].End.X, 1e-6)
	assert.Less(t, ticks[0].End.Y, f.Center.Y)
}

func TestMinuteTicks(t *testing.T) {
	f := engine.NewFace(200)
	ticks := f.MinuteTicks()
	require.Len(t, ticks, 48)

	seen := make(map[int]bool)
	for _, tk := range ticks {
		deg := int(math.Round(tk.Degrees))
		assert.Zero(t, deg%6, "minute tick must sit on a 6 degree step")
		assert.NotZero(t, deg%30, "minute tick must not overlap an hour tick")
		assert.False(t, seen[deg], "duplicate tick at %d", deg)
		seen[deg] = true
		assert.InDelta(t, f.Radius*0.90, dist(f.Center, tk.Start), 1e-6)
	}
}

func TestHands_Lengths(t *testing.T) {
	f := engine.NewFace(300)
	h := f.Hands(engine.Reading{Hour: 4, Minute: 20, Second: 45})

	assert.InDelta(t, f.Radius*0.5, dist(f.Center, h.Hour.End), 1e-6)
	assert.InDelta(t, f.Radius*0.7, dist(f.Center, h.Minute.End), 1e-6)
	assert.InDelta(t, f.Radius*0.8, dist(f.Center, h.Second.End), 1e-6)

	assert.Equal(t, f.Center, h.Hour.Start)
	assert.InDelta(t, 3.6, h.Hour.Width, eps)
	assert.InDelta(t, 2.4, h.Minute.Width, eps)
	assert.InDelta(t, 1.2, h.Second.Width, eps)
}

func TestHands_Directions(t *testing.T) {
	f := engine.NewFace(200)

	// 03:00:00 -> hour hand points right, minute and second hands point up.
	h := f.Hands(engine.Reading{Hour: 3})
	assert.InDelta(t, f.Center.Y, h.Hour.End.Y, 1e-6)
	assert.Greater(t, h.Hour.End.X, f.Center.X)
	assert.InDelta(t, f.Center.X, h.Minute.End.X, 1e-6)
	assert.Less(t, h.Minute.End.Y, f.Center.Y)

	// 30 seconds -> second hand points down.
	h = f.Hands(engine.Reading{Second: 30})
	assert.InDelta(t, f.Center.X, h.Second.End.X, 1e-6)
	assert.Greater(t, h.Second.End.Y, f.Center.Y)
}

func dist(a, b engine.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
