package render

import (
	"image/color"

	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// DefaultBackground is the color a surface is cleared to before tiles are
// painted.
var DefaultBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Canvas is a drawing surface that can fill rectangles.
type Canvas interface {
	// SetFillColor sets the color used by subsequent FillRect calls.
	SetFillColor(c color.Color)

	// NoStroke disables outline drawing for subsequent shapes.
	NoStroke()

	// FillRect fills the w×h rectangle whose top-left pixel is (x, y).
	FillRect(x, y, w, h int)
}

// Draw clears c to background and paints each tile in order: set the fill
// to the tile color, disable stroke, fill the tile rectangle.
func Draw(c Canvas, background color.Color, m *mosaic.Mosaic) {
	c.NoStroke()
	c.SetFillColor(background)
	c.FillRect(0, 0, m.Width(), m.Height())

	for i := 0; i < m.Len(); i++ {
		DrawTile(c, m.Tile(i))
	}
}

// DrawTile paints a single tile.
func DrawTile(c Canvas, t mosaic.Tile) {
	c.SetFillColor(t.Color)
	c.NoStroke()
	c.FillRect(t.Rect.X, t.Rect.Y, t.Rect.Width, t.Rect.Height)
}
