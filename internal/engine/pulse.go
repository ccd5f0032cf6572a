package engine

import (
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tartampluch/go-clock/internal/config"
)

// FastOutSlowIn is the material "standard" easing curve, cubic-bezier(0.4, 0, 0.2, 1).
var FastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1); (x1,y1) and (x2,y2) are the control points.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton did not settle: bisect inside [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// PulseProgress is the eased position in [0,1] of a reverse-repeating tween
// of one-way length period after elapsed time. It is 0 at every even multiple
// of period and 1 at every odd multiple.
func PulseProgress(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	cycle := 2 * period
	phase := elapsed % cycle
	if phase < 0 {
		phase += cycle
	}
	if phase > period {
		phase = cycle - phase
	}
	return FastOutSlowIn(float64(phase) / float64(period))
}

// PulseColor is the time text colour after elapsed time, swinging between
// config.ColorPulseFrom and config.ColorPulseTo every config.PulseDuration.
func PulseColor(elapsed time.Duration) color.NRGBA {
	return LerpColor(config.ColorPulseFrom, config.ColorPulseTo, PulseProgress(elapsed, config.PulseDuration))
}

// LerpColor interpolates a and b at t in [0,1] through the Oklab space, so
// hues stay vivid between the endpoints. Alpha is interpolated linearly.
func LerpColor(a, b color.Color, t float64) color.NRGBA {
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	switch {
	case t <= 0:
		return ca
	case t >= 1:
		return cb
	}

	mixed := opaque(ca).BlendOkLab(opaque(cb), t).Clamped()
	r, g, bl := mixed.RGB255()
	return color.NRGBA{
		R: r,
		G: g,
		B: bl,
		A: uint8(math.Round(float64(ca.A) + (float64(cb.A)-float64(ca.A))*t)),
	}
}

// opaque drops the alpha of c; colorful.MakeColor would turn a transparent
// colour into black.
func opaque(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// WithAlpha returns c with its alpha scaled by a in [0,1].
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * clampUnit(a)))
	return n
}
