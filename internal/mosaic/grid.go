package mosaic

import (
	"fmt"
	"image"
	"math"
	"math/bits"
)

// DefaultResolution is the number of cells along each image edge when no
// resolution is configured.
const DefaultResolution = 64

// GridSpec configures the partition: the image is divided into
// Resolution×Resolution notional cells of equal, possibly fractional, size.
type GridSpec struct {
	Resolution int `json:"resolution"`
}

// NewGridSpec returns a GridSpec for the given resolution.
//
// Returns ErrInvalidResolution if n is less than one.
func NewGridSpec(n int) (GridSpec, error) {
	spec := GridSpec{Resolution: n}
	if err := spec.Validate(); err != nil {
		return GridSpec{}, err
	}
	return spec, nil
}

// Validate checks that the resolution is at least one.
func (s GridSpec) Validate() error {
	if s.Resolution < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidResolution, s.Resolution)
	}
	return nil
}

// CellSize returns the real-valued nominal cell width and height for a
// width×height image.
func (s GridSpec) CellSize(width, height int) (float64, float64) {
	if s.Resolution < 1 {
		return 0, 0
	}
	n := float64(s.Resolution)
	return float64(width) / n, float64(height) / n
}

// CellRect is the integer-pixel footprint of one mosaic tile.
//
// (X, Y) is the top-left corner (inclusive); the cell spans Width columns and
// Height rows. Width and Height are always positive for cells produced by
// Partition.
type CellRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the cell as an image.Rectangle with an exclusive Max corner.
func (c CellRect) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Empty reports whether the cell covers no pixels.
func (c CellRect) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Partition divides a width×height image into the cells of spec's grid.
//
// Cells are returned in row-major order: top row first, each row left to
// right. The edges of every cell are grid lines rounded half up, so adjacent
// cells share their boundary and the cells tile [0,width)×[0,height) with
// no gaps or overlaps. Candidate cells that round to zero width or height
// (possible when the resolution exceeds an image dimension) are skipped;
// fewer than Resolution² cells are returned in that case.
//
// A non-positive width or height produces no cells and no error.
// Returns ErrInvalidResolution if spec.Resolution is less than one.
func Partition(width, height int, spec GridSpec) ([]CellRect, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, nil
	}

	ys := gridLines(height, spec.Resolution)
	xs := gridLines(width, spec.Resolution)
	cells := make([]CellRect, 0, (len(xs)-1)*(len(ys)-1))

	for r := 1; r < len(ys); r++ {
		for c := 1; c < len(xs); c++ {
			cells = append(cells, CellRect{
				X:      xs[c-1],
				Y:      ys[r-1],
				Width:  xs[c] - xs[c-1],
				Height: ys[r] - ys[r-1],
			})
		}
	}

	return cells, nil
}

// CellCount returns the number of cells Partition would produce, without
// producing them. Counts beyond math.MaxInt saturate.
func CellCount(width, height int, spec GridSpec) int {
	if spec.Validate() != nil || width <= 0 || height <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(min(spec.Resolution, width)), uint64(min(spec.Resolution, height)))
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}
	return int(lo)
}

// gridLines returns the distinct grid lines across extent pixels, from 0 to
// extent inclusive. Once n reaches extent, consecutive lines differ by at most
// one pixel and every integer position is hit, so the lines are 0..extent and
// the grid never has to be walked line by line.
func gridLines(extent, n int) []int {
	if n >= extent {
		lines := make([]int, extent+1)
		for i := range lines {
			lines[i] = i
		}
		return lines
	}

	lines := make([]int, n+1)
	for i := range lines {
		lines[i] = gridLine(i, extent, n)
	}
	return lines
}

// gridLine returns the i-th of n grid lines across extent pixels, i·extent/n
// rounded half up, for 0 <= i <= n. The 128-bit intermediate keeps line n
// exactly at extent for any int inputs.
func gridLine(i, extent, n int) int {
	hi, lo := bits.Mul64(uint64(i), uint64(extent)<<1)
	lo, carry := bits.Add64(lo, uint64(n), 0)
	q, _ := bits.Div64(hi+carry, lo, uint64(n)<<1)
	return int(q)
}
