package mosaic

import (
	"fmt"
	"image"
)

// Mosaic is the finished, immutable tile sequence for one image.
//
// Tiles are kept in partition order (row-major), which is also the order a
// renderer paints them in.
type Mosaic struct {
	width      int
	height     int
	resolution int
	tiles      []Tile
}

// New partitions img according to spec and samples a colour for every cell.
//
// Returns ErrEmptyImage for a zero-area image, ErrInvalidResolution for a bad
// spec, and an *InvariantError if sampling detects a partition defect.
func New(img image.Image, spec GridSpec) (*Mosaic, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	cells, err := Partition(bounds.Dx(), bounds.Dy(), spec)
	if err != nil {
		return nil, err
	}

	tiles, err := Build(img, cells)
	if err != nil {
		return nil, fmt.Errorf("failed to build tiles: %w", err)
	}

	return &Mosaic{
		width:      bounds.Dx(),
		height:     bounds.Dy(),
		resolution: spec.Resolution,
		tiles:      tiles,
	}, nil
}

// Width returns the width of the source image in pixels.
func (m *Mosaic) Width() int { return m.width }

// Height returns the height of the source image in pixels.
func (m *Mosaic) Height() int { return m.height }

// Resolution returns the grid resolution the mosaic was built with.
func (m *Mosaic) Resolution() int { return m.resolution }

// Bounds returns the rectangle covered by the mosaic, anchored at (0,0).
func (m *Mosaic) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Len returns the number of tiles.
func (m *Mosaic) Len() int { return len(m.tiles) }

// Tile returns the i-th tile in draw order.
func (m *Mosaic) Tile(i int) Tile { return m.tiles[i] }

// Tiles returns a copy of the tile sequence in draw order.
func (m *Mosaic) Tiles() []Tile {
	out := make([]Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// Cells returns the footprints of all tiles in draw order.
func (m *Mosaic) Cells() []CellRect {
	out := make([]CellRect, len(m.tiles))
	for i, t := range m.tiles {
		out[i] = t.Rect
	}
	return out
}
