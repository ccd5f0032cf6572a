package paint

import (
	"image"
	"math"

	"github.com/tartampluch/go-clock/internal/config"
)

// OwlPanel renders the beveled backdrop of the digital clock at w×h pixels.
// Corner radius and stroke widths are defined for a 340×200 panel and scale
// with the smaller of the two axis ratios.
func OwlPanel(w, h int) *image.RGBA {
	s := NewSurface(w, h)
	if w <= 0 || h <= 0 {
		return s.Image()
	}

	fw, fh := float64(w), float64(h)
	scale := math.Min(fw/config.PanelWidth, fh/config.PanelHeight)
	body := RoundRect{W: fw, H: fh, Radius: config.PanelCorner * scale}

	// Base: dark grey at the top fading to black.
	s.FillRoundRect(body, Vertical(0, fh, Stops(config.ColorPanelTop, config.ColorPanelBottom)))

	// Bevel highlight from the top-left corner.
	s.FillRoundRect(body, Linear(0, 0, fw/2, fh/2, Stops(config.ColorBevelHighlight, config.ColorTransparent)))

	// Inner shadow towards the bottom-right corner.
	s.FillRoundRect(body, Linear(fw/2, fh/2, fw, fh, Stops(config.ColorTransparent, config.ColorInnerShadow)))

	// Ambient glow ring.
	glowRadius := math.Max(fw, fh) / config.PanelGlowDivisor
	s.StrokeRoundRect(body, config.PanelGlowStroke*scale,
		Radial(fw*config.PanelGlowCenterX, fh*config.PanelGlowCenterY, glowRadius,
			Stops(config.ColorAmbientGlow, config.ColorTransparent)))

	// Glossy reflection.
	s.FillRoundRect(body, Linear(0, 0, fw/config.PanelGlossDivisor, fh/config.PanelGlossDivisor,
		Stops(config.ColorGloss, config.ColorTransparent)))

	// Border.
	s.StrokeRoundRect(body, config.PanelBorderStroke*scale,
		Vertical(0, fh, Stops(config.ColorBorderTop, config.ColorBorderBottom)))

	return s.Image()
}

// FaceDisc renders the shaded analog face: a disc filling the w×h box with a
// white centre shading to light grey at the rim.
func FaceDisc(w, h int) *image.RGBA {
	s := NewSurface(w, h)
	if w <= 0 || h <= 0 {
		return s.Image()
	}

	cx, cy := float64(w)/2, float64(h)/2
	r := math.Min(cx, cy)
	s.FillDisc(cx, cy, r, Radial(cx, cy, r, Stops(config.ColorFace, config.ColorFaceMid, config.ColorFaceEdge)))
	return s.Image()
}
