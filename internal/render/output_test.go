package render

import (
	"encoding/base64"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-mosaic/internal/imaging"
)

func TestSave(t *testing.T) {
	m := buildMosaic(t, createQuadrantImage(20, 20), 4)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg", "out.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, m, Options{}); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			img, err := imaging.NewImageCache().Load(path)
			if err != nil {
				t.Fatalf("reloading %s failed: %v", name, err)
			}
			if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
				t.Errorf("dimensions: got %v, want 20x20", img.Bounds())
			}
		})
	}
}

func TestSave_PNGPixels(t *testing.T) {
	m := buildMosaic(t, createQuadrantImage(8, 8), 2)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Save(path, m, Options{Background: color.Black}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := img.NRGBAAt(6, 1); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("top-right tile: got %v, want green", got)
	}
	if got := img.NRGBAAt(1, 6); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("bottom-left tile: got %v, want blue", got)
	}
}

func TestSave_SVG(t *testing.T) {
	m := buildMosaic(t, createQuadrantImage(8, 8), 2)
	path := filepath.Join(t.TempDir(), "out.svg")

	if err := Save(path, m, Options{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output is not an SVG document")
	}
}

func TestSave_DiskFull(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	m := buildMosaic(t, createQuadrantImage(8, 8), 2)
	dir := t.TempDir()

	for _, name := range []string{"full.svg", "full.png"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.Symlink("/dev/full", path); err != nil {
				t.Skipf("cannot link /dev/full: %v", err)
			}
			if err := Save(path, m, Options{}); err == nil {
				t.Error("Save to a full device succeeded")
			}
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	m := buildMosaic(t, createQuadrantImage(4, 4), 2)
	err := Save(filepath.Join(t.TempDir(), "out.xyz"), m, Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	m := buildMosaic(t, createQuadrantImage(6, 6), 3)

	tests := []struct {
		format   string
		mimeType string
		prefix   string
	}{
		{"png", "image/png", "\x89PNG"},
		{"svg", "image/svg+xml", "<?xml"},
		{"jpeg", "image/jpeg", "\xff\xd8"},
		{"bmp", "image/bmp", "BM"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			result, err := Encode(m, tt.format, Options{})
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if result.MimeType != tt.mimeType {
				t.Errorf("MimeType: got %s, want %s", result.MimeType, tt.mimeType)
			}
			if result.Width != 6 || result.Height != 6 {
				t.Errorf("dimensions: got %dx%d", result.Width, result.Height)
			}
			data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
			if err != nil {
				t.Fatalf("failed to decode base64: %v", err)
			}
			if !strings.HasPrefix(string(data), tt.prefix) {
				t.Errorf("data does not start with %q", tt.prefix)
			}
		})
	}

	if _, err := Encode(m, "gif", Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat for gif, got %v", err)
	}
}

func TestSupportsFormat(t *testing.T) {
	for _, f := range []string{"png", "jpeg", "bmp", "svg"} {
		if !SupportsFormat(f) {
			t.Errorf("SupportsFormat(%s) = false", f)
		}
	}
	for _, f := range []string{"gif", "unknown", ""} {
		if SupportsFormat(f) {
			t.Errorf("SupportsFormat(%s) = true", f)
		}
	}
}
