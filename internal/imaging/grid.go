package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// DefaultOverlayColor is the boundary color used when none is given.
var DefaultOverlayColor = color.NRGBA{R: 255, G: 0, B: 0, A: 128}

// CellOverlay returns a copy of img with the boundaries between mosaic cells
// drawn on top, for previewing a partition against its source.
//
// A line is drawn along the top row and left column of every cell that does
// not touch the top or left image edge, so each shared edge is drawn once and
// the outer border is left untouched. With showCoordinates set, each cell is
// labelled with the pixel coordinates of its top-left corner.
func CellOverlay(img image.Image, cells []mosaic.CellRect, lineColor color.Color, showCoordinates bool) *image.NRGBA {
	result := imaging.Clone(img)
	line := image.NewUniform(lineColor)

	for _, c := range cells {
		if c.Y > 0 {
			draw.Draw(result, image.Rect(c.X, c.Y, c.X+c.Width, c.Y+1), line, image.Point{}, draw.Over)
		}
		if c.X > 0 {
			// Skip the corner pixel already drawn by the horizontal line.
			top := c.Y
			if c.Y > 0 {
				top++
			}
			draw.Draw(result, image.Rect(c.X, top, c.X+1, c.Y+c.Height), line, image.Point{}, draw.Over)
		}
	}

	if showCoordinates {
		labelColor := color.NRGBA{255, 255, 255, 255}
		bgColor := color.NRGBA{0, 0, 0, 180}
		for _, c := range cells {
			drawLabel(result, c.X+2, c.Y+2, fmt.Sprintf("%d,%d", c.X, c.Y), labelColor, bgColor)
		}
	}

	return result
}

// drawLabel draws a small text label at the given position using a 3x5
// pixel font covering digits and the comma. Pixels outside img are skipped.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	box := image.Rect(x-1, y-1, x+labelWidth, y+labelHeight).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Over)

	bounds := img.Bounds()
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				p := image.Pt(cx+col, y+row)
				if p.In(bounds) {
					img.SetNRGBA(p.X, p.Y, fg)
				}
			}
		}
		cx += charWidth
	}
}
