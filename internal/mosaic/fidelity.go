package mosaic

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Fidelity returns the mean CIEDE2000 distance between every source pixel
// and the colour of the tile covering it. Zero means the mosaic reproduces
// the image exactly; alpha is ignored.
func Fidelity(img image.Image, m *Mosaic) float64 {
	bounds := img.Bounds()
	var total float64
	var count int

	for _, t := range m.tiles {
		tc := toColorful(t.Color)
		for y := t.Rect.Y; y < t.Rect.Y+t.Rect.Height; y++ {
			for x := t.Rect.X; x < t.Rect.X+t.Rect.Width; x++ {
				px := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				total += tc.DistanceCIEDE2000(toColorful(px))
				count++
			}
		}
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
