package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// RasterCanvas is a bitmap Canvas backed by a gg drawing context.
type RasterCanvas struct {
	dc *gg.Context
}

// NewRasterCanvas returns a transparent width×height raster surface.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{dc: gg.NewContext(width, height)}
}

// SetFillColor implements Canvas.
func (r *RasterCanvas) SetFillColor(c color.Color) {
	r.dc.SetColor(c)
}

// NoStroke implements Canvas. gg only strokes on an explicit Stroke call,
// which RasterCanvas never issues.
func (r *RasterCanvas) NoStroke() {}

// FillRect implements Canvas.
func (r *RasterCanvas) FillRect(x, y, w, h int) {
	r.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	r.dc.Fill()
}

// Image returns the surface's pixels.
func (r *RasterCanvas) Image() image.Image {
	return r.dc.Image()
}

// Raster paints m onto a new raster surface the size of the source image
// and returns the result.
func Raster(m *mosaic.Mosaic, background color.Color) image.Image {
	rc := NewRasterCanvas(m.Width(), m.Height())
	Draw(rc, background, m)
	return rc.Image()
}
