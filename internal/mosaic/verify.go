package mosaic

// Verify checks that cells tile the width×height rectangle exactly: every
// cell lies inside the image, no pixel is covered twice and none is left
// uncovered. It returns an *InvariantError describing the first violation.
//
// Verify allocates one int32 per pixel.
func Verify(cells []CellRect, width, height int) error {
	if width <= 0 || height <= 0 {
		if len(cells) > 0 {
			return invariantf("verify", "%d cells for empty %dx%d image", len(cells), width, height)
		}
		return nil
	}

	owner := make([]int32, width*height)
	for i := range owner {
		owner[i] = -1
	}

	for i, c := range cells {
		if c.Empty() {
			return invariantf("verify", "cell %d %+v has no area", i, c)
		}
		if c.X < 0 || c.Y < 0 || c.X+c.Width > width || c.Y+c.Height > height {
			return invariantf("verify", "cell %d %+v outside %dx%d image", i, c, width, height)
		}
		for y := c.Y; y < c.Y+c.Height; y++ {
			for x := c.X; x < c.X+c.Width; x++ {
				idx := y*width + x
				if prev := owner[idx]; prev >= 0 {
					return invariantf("verify", "pixel (%d,%d) covered by cells %d and %d", x, y, prev, i)
				}
				owner[idx] = int32(i)
			}
		}
	}

	for idx, o := range owner {
		if o < 0 {
			return invariantf("verify", "pixel (%d,%d) not covered by any cell", idx%width, idx/width)
		}
	}

	return nil
}
