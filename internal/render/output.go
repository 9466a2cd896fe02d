package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/image-mosaic/internal/imaging"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// ErrUnsupportedFormat is returned for an output format with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultJPEGQuality is used when Options.JPEGQuality is zero.
const DefaultJPEGQuality = 95

// Options controls how a mosaic is written out.
type Options struct {
	// Background is painted before the tiles. Nil means DefaultBackground.
	Background color.Color

	// JPEGQuality is the JPEG quality (1-100). Zero means DefaultJPEGQuality.
	JPEGQuality int
}

func (o Options) background() color.Color {
	if o.Background == nil {
		return DefaultBackground
	}
	return o.Background
}

func (o Options) jpegQuality() int {
	if o.JPEGQuality == 0 {
		return DefaultJPEGQuality
	}
	return o.JPEGQuality
}

// OutputFormats lists the formats Save and Encode accept.
var OutputFormats = []string{"png", "jpeg", "bmp", "svg"}

// SupportsFormat reports whether format is one of OutputFormats.
func SupportsFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Save renders m to path. The file extension selects the surface: ".svg"
// writes vector output, ".png", ".jpg", ".jpeg" and ".bmp" write a bitmap.
func Save(path string, m *mosaic.Mosaic, opts Options) error {
	format := imaging.FormatFromPath(path)

	if format == "svg" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		if err := WriteSVG(f, m, opts.background()); err != nil {
			f.Close()
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	return SaveImage(path, Raster(m, opts.background()), opts)
}

// SaveImage writes img to path as a bitmap in the format named by the file
// extension. SVG is not accepted here.
func SaveImage(path string, img image.Image, opts Options) error {
	encoder, err := rasterEncoder(imaging.FormatFromPath(path), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Encode renders m in the named format and returns it base64-encoded.
func Encode(m *mosaic.Mosaic, format string, opts Options) (*imaging.EncodedImage, error) {
	switch format {
	case "png":
		return imaging.EncodePNG(Raster(m, opts.background()))
	case "svg":
		var buf bytes.Buffer
		if err := WriteSVG(&buf, m, opts.background()); err != nil {
			return nil, err
		}
		return imaging.EncodeBytes(buf.Bytes(), "image/svg+xml", m.Width(), m.Height()), nil
	case "jpeg", "bmp":
		encoder, err := rasterEncoder(format, opts)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := encoder(&buf, Raster(m, opts.background())); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}
		return imaging.EncodeBytes(buf.Bytes(), "image/"+format, m.Width(), m.Height()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func rasterEncoder(format string, opts Options) (imgio.Encoder, error) {
	switch format {
	case "png":
		return imgio.PNGEncoder(), nil
	case "jpeg":
		return imgio.JPEGEncoder(opts.jpegQuality()), nil
	case "bmp":
		return imgio.BMPEncoder(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
