package pipeline

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/ironsheep/image-mosaic/internal/imaging"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
	"github.com/ironsheep/image-mosaic/internal/render"
)

// Config holds all the configuration parameters for one mosaic run,
// parsed from command-line flags.
type Config struct {
	InputPath   string
	OutputPath  string
	OverlayPath string
	Resolution  int
	Background  string
	JPEGQuality int
	Verify      bool
}

// DefaultConfig returns a Config with every optional field at its default.
func DefaultConfig() *Config {
	return &Config{
		OutputPath:  "mosaic.png",
		Resolution:  mosaic.DefaultResolution,
		Background:  "#FFFFFF",
		JPEGQuality: render.DefaultJPEGQuality,
	}
}

// Validate checks that the configuration can be run.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("--input/-i flag is required")
	}
	if _, err := os.Stat(c.InputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", c.InputPath)
	}
	if _, err := mosaic.NewGridSpec(c.Resolution); err != nil {
		return fmt.Errorf("--resolution: %w", err)
	}
	if c.OutputPath == "" {
		return errors.New("--output/-o must not be empty")
	}
	if format := imaging.FormatFromPath(c.OutputPath); !render.SupportsFormat(format) {
		return fmt.Errorf("unsupported output format for %s (use .png, .jpg, .bmp or .svg)", c.OutputPath)
	}
	if c.OverlayPath != "" {
		if format := imaging.FormatFromPath(c.OverlayPath); format == "svg" || !render.SupportsFormat(format) {
			return fmt.Errorf("unsupported overlay format for %s (use .png, .jpg or .bmp)", c.OverlayPath)
		}
	}
	if _, err := imaging.ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("--background: %w", err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("--jpeg-quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	return nil
}

func (c *Config) gridSpec() mosaic.GridSpec {
	return mosaic.GridSpec{Resolution: c.Resolution}
}

func (c *Config) renderOptions() (render.Options, error) {
	bg, err := imaging.ParseHexColor(c.Background)
	if err != nil {
		return render.Options{}, fmt.Errorf("invalid background: %w", err)
	}
	return render.Options{Background: color.Color(bg), JPEGQuality: c.JPEGQuality}, nil
}
