// Package mosaic turns a raster image into a grid of solid-colour tiles.
//
// The package has two stages that always run in order:
//
//  1. Partition divides a W×H pixel area into an N×N grid of integer-pixel
//     cells (CellRect), row-major, dropping any cell that rounds to zero area.
//  2. Build samples one colour per cell at the cell's centre pixel and pairs
//     it with the rectangle to form a Tile.
//
// New runs both stages for an image and returns an immutable Mosaic.
//
// # Boundary Rounding
//
// Cells are generally fractional in size (W/N by H/N). Every cell edge is the
// nominal grid line i·W/N rounded to the nearest integer, half rounding up.
// Because neighbouring cells round the same grid line, the right edge of one
// cell is always the left edge of the next, so the surviving cells cover
// [0,W)×[0,H) exactly once. Rounding is evaluated in integer arithmetic, so
// the far edge of the last row and column is exactly W and H.
//
// For example, W=5 and N=2 gives nominal lines 0, 2.5 and 5, which round to
// 0, 3 and 5: two cells of width 3 and 2.
//
// # Sampling
//
// The representative colour is a single pixel, not an average:
//
//	sampleX = min(x0 + width/2, W-1)
//	sampleY = min(y0 + height/2, H-1)
//
// Colours are stored as non-premultiplied 8-bit RGBA (color.NRGBA).
//
// # Errors
//
// A zero-area image yields ErrEmptyImage and a resolution below one yields
// ErrInvalidResolution. A cell or sample point that falls outside the image
// is reported as an *InvariantError; it indicates a defect, never bad input.
//
// # Thread Safety
//
// All functions are pure. A Mosaic never changes after construction and may
// be shared between goroutines without locking.
package mosaic
