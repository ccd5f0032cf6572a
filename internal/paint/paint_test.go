package paint_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/paint"
)

func at(img *image.RGBA, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// -----------------------------------------------------------------------------
// Stops
// -----------------------------------------------------------------------------

func TestStops_AlphaBecomesOpacity(t *testing.T) {
	stops := paint.Stops(config.ColorBevelHighlight, config.ColorTransparent)
	require.Len(t, stops, 2)

	assert.Equal(t, 0.0, stops[0].Offset)
	assert.Equal(t, 1.0, stops[1].Offset)

	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, stops[0].StopColor)
	assert.InDelta(t, float64(config.ColorBevelHighlight.A)/0xFF, stops[0].Opacity, 1e-9)
	assert.Equal(t, 0.0, stops[1].Opacity)
}

func TestStops_EvenlySpaced(t *testing.T) {
	stops := paint.Stops(config.ColorFace, config.ColorFaceMid, config.ColorFaceEdge)
	require.Len(t, stops, 3)
	assert.Equal(t, []float64{0, 0.5, 1}, []float64{stops[0].Offset, stops[1].Offset, stops[2].Offset})
	for _, s := range stops {
		assert.Equal(t, 1.0, s.Opacity)
	}

	single := paint.Stops(config.ColorFace)
	require.Len(t, single, 1)
	assert.Equal(t, 0.0, single[0].Offset)
}

// -----------------------------------------------------------------------------
// Surface
// -----------------------------------------------------------------------------

func TestSurface_SourceOver(t *testing.T) {
	s := paint.NewSurface(4, 4)
	square := paint.RoundRect{W: 4, H: 4}
	blue := color.NRGBA{B: 0xFF, A: 0xFF}
	halfRed := color.NRGBA{R: 0xFF, A: 0x80}

	s.FillRoundRect(square, paint.Vertical(0, 4, paint.Stops(blue, blue)))
	s.FillRoundRect(square, paint.Vertical(0, 4, paint.Stops(halfRed, halfRed)))

	px := at(s.Image(), 1, 1)
	assert.Equal(t, uint8(0xFF), px.A)
	assert.InDelta(t, 128, int(px.R), 2)
	assert.InDelta(t, 127, int(px.B), 2)
}

func TestSurface_StrokeFollowsOutline(t *testing.T) {
	s := paint.NewSurface(40, 40)
	white := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	s.StrokeRoundRect(paint.RoundRect{X: 5, Y: 5, W: 30, H: 30, Radius: 5}, 2, paint.Vertical(0, 40, paint.Stops(white, white)))

	img := s.Image()
	assert.GreaterOrEqual(t, int(at(img, 20, 4).A), 250, "band straddles the top edge")
	assert.GreaterOrEqual(t, int(at(img, 20, 5).A), 250)
	assert.Zero(t, at(img, 20, 20).A, "inside stays empty")
	assert.Zero(t, at(img, 20, 1).A, "outside stays empty")
}

func TestSurface_RadialGradient(t *testing.T) {
	s := paint.NewSurface(20, 20)
	black := color.NRGBA{A: 0xFF}
	white := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	s.FillRoundRect(paint.RoundRect{W: 20, H: 20}, paint.Radial(10, 10, 10, paint.Stops(black, white)))

	img := s.Image()
	center := at(img, 10, 10)
	edge := at(img, 10, 0)
	corner := at(img, 0, 0)

	assert.Less(t, int(center.R), 0x20)
	assert.Greater(t, int(edge.R), 0xE0)
	assert.Equal(t, uint8(0xFF), corner.R, "padded beyond the radius")
}

func TestNewSurface_NegativeSize(t *testing.T) {
	s := paint.NewSurface(-3, 5)
	assert.True(t, s.Image().Bounds().Empty())
}

// -----------------------------------------------------------------------------
// Panels
// -----------------------------------------------------------------------------

func TestOwlPanel_Deterministic(t *testing.T) {
	a := paint.OwlPanel(config.PanelWidth, config.PanelHeight)
	b := paint.OwlPanel(config.PanelWidth, config.PanelHeight)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestOwlPanel_Shape(t *testing.T) {
	img := paint.OwlPanel(config.PanelWidth, config.PanelHeight)
	require.Equal(t, config.PanelWidth, img.Bounds().Dx())
	require.Equal(t, config.PanelHeight, img.Bounds().Dy())

	// Rounded corners stay transparent.
	assert.Zero(t, at(img, 0, 0).A)
	assert.Zero(t, at(img, config.PanelWidth-1, config.PanelHeight-1).A)

	// The body is opaque and dark.
	center := at(img, config.PanelWidth/2, config.PanelHeight/2)
	assert.Equal(t, uint8(0xFF), center.A)
	assert.Less(t, int(center.R), 0x40)

	// The highlight makes the top-left quadrant brighter than the bottom-right one.
	tl := at(img, config.PanelWidth/5, config.PanelHeight/5)
	br := at(img, config.PanelWidth*4/5, config.PanelHeight*4/5)
	assert.Greater(t, int(tl.R), int(br.R))
}

func TestOwlPanel_BorderOnTop(t *testing.T) {
	img := paint.OwlPanel(config.PanelWidth, config.PanelHeight)

	// The last layer is the border stroke; near the top it is #3A3A3A.
	top := at(img, config.PanelWidth/2, 1)
	assert.Equal(t, uint8(0xFF), top.A)
	assert.InDelta(t, int(config.ColorBorderTop.R), int(top.R), 2)
}

func TestOwlPanel_Scaled(t *testing.T) {
	img := paint.OwlPanel(config.PanelWidth/2, config.PanelHeight/2)
	require.Equal(t, config.PanelWidth/2, img.Bounds().Dx())

	assert.Zero(t, at(img, 0, 0).A)
	assert.Equal(t, uint8(0xFF), at(img, config.PanelWidth/4, config.PanelHeight/4).A)
}

func TestOwlPanel_Empty(t *testing.T) {
	img := paint.OwlPanel(0, 0)
	assert.True(t, img.Bounds().Empty())
}

func TestFaceDisc(t *testing.T) {
	img := paint.FaceDisc(100, 100)

	assert.Zero(t, at(img, 0, 0).A, "outside the disc")
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, at(img, 50, 50))

	rim := at(img, 50, 2)
	assert.Equal(t, uint8(0xFF), rim.A)
	assert.Less(t, rim.R, uint8(0xF0), "rim is shaded")
}

func TestFaceDisc_Empty(t *testing.T) {
	assert.True(t, paint.FaceDisc(0, 10).Bounds().Empty())
}
