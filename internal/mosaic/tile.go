package mosaic

import (
	"image"
	"image/color"
)

// Tile is one solid-colour rectangle of a mosaic.
//
// The colour is sampled once when the tile is built; drawing a tile never
// reads the source image again.
type Tile struct {
	// Rect is the pixel footprint of the tile.
	Rect CellRect `json:"rect"`

	// Sample is the source pixel the colour was read from, relative to the
	// image's top-left corner.
	Sample image.Point `json:"sample"`

	// Color is the non-premultiplied colour of the sampled pixel.
	Color color.NRGBA `json:"color"`
}

// Build samples one colour per cell and returns the tiles in cell order.
//
// Each cell is sampled at its centre pixel, floored, and clamped to the last
// valid column and row:
//
//	sampleX = min(x0 + width/2, W-1)
//	sampleY = min(y0 + height/2, H-1)
//
// Coordinates in cells are relative to img.Bounds().Min, so images with a
// non-zero origin (such as sub-images) are handled.
//
// # Errors
//
//   - ErrEmptyImage if img has zero width or height.
//   - *InvariantError if a cell is empty or lies outside the image, or a
//     sample point falls outside it. Cells from Partition never trigger this.
func Build(img image.Image, cells []CellRect) ([]Tile, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}

	tiles := make([]Tile, 0, len(cells))
	for i, c := range cells {
		if c.Empty() {
			return nil, invariantf("build", "cell %d %+v has no area", i, c)
		}
		if c.X < 0 || c.Y < 0 || c.X+c.Width > width || c.Y+c.Height > height {
			return nil, invariantf("build", "cell %d %+v outside %dx%d image", i, c, width, height)
		}

		sample := samplePoint(c, width, height)
		if sample.X < 0 || sample.X >= width || sample.Y < 0 || sample.Y >= height {
			return nil, invariantf("build", "sample point (%d,%d) of cell %d outside %dx%d image",
				sample.X, sample.Y, i, width, height)
		}

		src := img.At(bounds.Min.X+sample.X, bounds.Min.Y+sample.Y)
		tiles = append(tiles, Tile{
			Rect:   c,
			Sample: sample,
			Color:  color.NRGBAModel.Convert(src).(color.NRGBA),
		})
	}

	return tiles, nil
}

// samplePoint returns the floored centre of c clamped to a width×height image.
func samplePoint(c CellRect, width, height int) image.Point {
	return image.Point{
		X: min(c.X+c.Width/2, width-1),
		Y: min(c.Y+c.Height/2, height-1),
	}
}
