package fling

import "github.com/hajimehoshi/ebiten/v2"

// Content paints something into bounds, given in screen space, with the
// given opacity. Nodes, placeholders and shuttles all paint through it.
type Content interface {
	Draw(dst *ebiten.Image, bounds Rect, alpha float64)
}

// ContentFunc adapts a function to Content.
type ContentFunc func(dst *ebiten.Image, bounds Rect, alpha float64)

// Draw calls f.
func (f ContentFunc) Draw(dst *ebiten.Image, bounds Rect, alpha float64) {
	f(dst, bounds, alpha)
}

// whitePixel is a 1x1 white image scaled to paint solid rectangles. Created
// on first use so that packages importing fling do not need a graphics
// context until they draw.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Solid is Content that fills its bounds with a color.
type Solid Color

// Draw implements Content.
func (s Solid) Draw(dst *ebiten.Image, bounds Rect, alpha float64) {
	if bounds.Width <= 0 || bounds.Height <= 0 || !bounds.IsFinite() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(bounds.Width, bounds.Height)
	op.GeoM.Translate(bounds.X, bounds.Y)
	c := Color(s)
	op.ColorScale.Scale(float32(c.R*c.A*alpha), float32(c.G*c.A*alpha), float32(c.B*c.A*alpha), float32(c.A*alpha))
	dst.DrawImage(solidPixel(), &op)
}

// ImageContent stretches an image over its bounds.
type ImageContent struct {
	Image *ebiten.Image
}

// Draw implements Content.
func (ic ImageContent) Draw(dst *ebiten.Image, bounds Rect, alpha float64) {
	if ic.Image == nil || !bounds.IsFinite() {
		return
	}
	b := ic.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(bounds.Width/float64(b.Dx()), bounds.Height/float64(b.Dy()))
	op.GeoM.Translate(bounds.X, bounds.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(ic.Image, &op)
}

// Crossfade paints From and To over the same bounds, To weighted by Mix.
type Crossfade struct {
	From, To Content
	Mix      func() float64
}

// Draw implements Content.
func (c Crossfade) Draw(dst *ebiten.Image, bounds Rect, alpha float64) {
	mix := 1.0
	if c.Mix != nil {
		mix = clamp01(c.Mix())
	}
	if c.From != nil && mix < 1 {
		c.From.Draw(dst, bounds, alpha*(1-mix))
	}
	if c.To != nil && mix > 0 {
		c.To.Draw(dst, bounds, alpha*mix)
	}
}
