// Package pipeline runs the one-shot mosaic job: load the source image,
// partition it, sample the tiles, and write the rendered output.
package pipeline

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/ironsheep/image-mosaic/internal/imaging"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
	"github.com/ironsheep/image-mosaic/internal/render"
)

// Result summarises a completed run.
type Result struct {
	Width      int
	Height     int
	Resolution int
	Tiles      int
	Fidelity   float64
	OutputPath string
	Elapsed    time.Duration
}

// Run executes the whole job described by cfg. Nothing is written unless
// the image loads and the mosaic builds successfully.
func Run(cfg *Config) (*Result, error) {
	start := time.Now()

	opts, err := cfg.renderOptions()
	if err != nil {
		return nil, err
	}

	img, err := imaging.NewImageCache().Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %s (%dx%d)", cfg.InputPath, img.Bounds().Dx(), img.Bounds().Dy())

	m, err := mosaic.New(img, cfg.gridSpec())
	if err != nil {
		return nil, err
	}
	cw, ch := cfg.gridSpec().CellSize(m.Width(), m.Height())
	log.Printf("Built %d tiles at resolution %d (cell %.2fx%.2f px)", m.Len(), m.Resolution(), cw, ch)

	if cfg.Verify {
		if err := mosaic.Verify(m.Cells(), m.Width(), m.Height()); err != nil {
			return nil, err
		}
		log.Printf("Verified coverage of %dx%d pixels", m.Width(), m.Height())
	}

	if err := render.Save(cfg.OutputPath, m, opts); err != nil {
		return nil, err
	}
	log.Printf("Wrote %s", cfg.OutputPath)

	if cfg.OverlayPath != "" {
		if err := saveOverlay(cfg.OverlayPath, img, m, opts); err != nil {
			return nil, err
		}
		log.Printf("Wrote overlay %s", cfg.OverlayPath)
	}

	return &Result{
		Width:      m.Width(),
		Height:     m.Height(),
		Resolution: m.Resolution(),
		Tiles:      m.Len(),
		Fidelity:   mosaic.Fidelity(img, m),
		OutputPath: cfg.OutputPath,
		Elapsed:    time.Since(start),
	}, nil
}

func saveOverlay(path string, img image.Image, m *mosaic.Mosaic, opts render.Options) error {
	overlay := imaging.CellOverlay(img, m.Cells(), imaging.DefaultOverlayColor, false)
	if err := render.SaveImage(path, overlay, opts); err != nil {
		return fmt.Errorf("failed to write overlay: %w", err)
	}
	return nil
}
