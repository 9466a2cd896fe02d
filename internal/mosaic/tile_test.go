package mosaic

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// createCoordinateImage creates an image whose pixel at (x,y) encodes its
// own coordinates in the red and green channels.
func createCoordinateImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func createUniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBuild_FourByFour(t *testing.T) {
	img := createCoordinateImage(4, 4)
	cells, err := Partition(4, 4, GridSpec{Resolution: 2})
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	tiles, err := Build(img, cells)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []Tile{
		{Rect: CellRect{0, 0, 2, 2}, Sample: image.Pt(1, 1), Color: color.NRGBA{1, 1, 7, 255}},
		{Rect: CellRect{2, 0, 2, 2}, Sample: image.Pt(3, 1), Color: color.NRGBA{3, 1, 7, 255}},
		{Rect: CellRect{0, 2, 2, 2}, Sample: image.Pt(1, 3), Color: color.NRGBA{1, 3, 7, 255}},
		{Rect: CellRect{2, 2, 2, 2}, Sample: image.Pt(3, 3), Color: color.NRGBA{3, 3, 7, 255}},
	}
	if diff := cmp.Diff(want, tiles); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_OddWidth(t *testing.T) {
	img := createCoordinateImage(5, 1)
	cells, err := Partition(5, 1, GridSpec{Resolution: 2})
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	tiles, err := Build(img, cells)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []image.Point{image.Pt(1, 0), image.Pt(4, 0)}
	if len(tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(tiles), len(want))
	}
	for i, p := range want {
		if tiles[i].Sample != p {
			t.Errorf("tile %d sample: got %v, want %v", i, tiles[i].Sample, p)
		}
	}
}

func TestBuild_SamplesStayInBounds(t *testing.T) {
	for _, size := range []image.Point{{1, 1}, {2, 3}, {7, 5}, {16, 9}} {
		img := createCoordinateImage(size.X, size.Y)
		for n := 1; n <= max(size.X, size.Y)+2; n++ {
			cells, err := Partition(size.X, size.Y, GridSpec{Resolution: n})
			if err != nil {
				t.Fatalf("Partition failed: %v", err)
			}
			tiles, err := Build(img, cells)
			if err != nil {
				t.Fatalf("Build(%v, n=%d) failed: %v", size, n, err)
			}
			for _, tile := range tiles {
				if !tile.Sample.In(img.Bounds()) {
					t.Fatalf("sample %v outside %v", tile.Sample, img.Bounds())
				}
				if !tile.Sample.In(tile.Rect.Rect()) {
					t.Fatalf("sample %v outside its cell %+v", tile.Sample, tile.Rect)
				}
				want := color.NRGBA{R: uint8(tile.Sample.X), G: uint8(tile.Sample.Y), B: 7, A: 255}
				if tile.Color != want {
					t.Fatalf("tile color: got %v, want %v", tile.Color, want)
				}
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	img := createCoordinateImage(37, 23)
	cells, err := Partition(37, 23, GridSpec{Resolution: 8})
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	first, err := Build(img, cells)
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	second, err := Build(img, cells)
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Build not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuild_SubImageOrigin(t *testing.T) {
	full := createCoordinateImage(8, 8)
	sub := full.SubImage(image.Rect(2, 4, 6, 8))

	tiles, err := Build(sub, []CellRect{{X: 0, Y: 0, Width: 4, Height: 4}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if tiles[0].Sample != image.Pt(2, 2) {
		t.Errorf("sample: got %v, want (2,2)", tiles[0].Sample)
	}
	want := color.NRGBA{R: 4, G: 6, B: 7, A: 255}
	if tiles[0].Color != want {
		t.Errorf("color: got %v, want %v", tiles[0].Color, want)
	}
}

func TestBuild_NonPremultipliedColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	tiles, err := Build(img, []CellRect{{0, 0, 2, 2}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tiles[0].Color != c {
		t.Errorf("color: got %v, want %v", tiles[0].Color, c)
	}
}

func TestBuild_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 10))
	_, err := Build(img, nil)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("expected ErrEmptyImage, got %v", err)
	}
}

func TestBuild_InvariantViolation(t *testing.T) {
	img := createCoordinateImage(4, 4)

	tests := []struct {
		name string
		cell CellRect
	}{
		{"past right edge", CellRect{X: 3, Y: 0, Width: 2, Height: 1}},
		{"past bottom edge", CellRect{X: 0, Y: 3, Width: 1, Height: 2}},
		{"negative origin", CellRect{X: -1, Y: 0, Width: 1, Height: 1}},
		{"zero width", CellRect{X: 0, Y: 0, Width: 0, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(img, []CellRect{tt.cell})
			if !errors.Is(err, ErrInvariant) {
				t.Fatalf("expected ErrInvariant, got %v", err)
			}
			var ie *InvariantError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *InvariantError, got %T", err)
			}
			if ie.Op != "build" {
				t.Errorf("Op: got %q, want build", ie.Op)
			}
		})
	}
}

func TestSamplePoint_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		cell   CellRect
		width  int
		height int
		want   image.Point
	}{
		{"centre", CellRect{0, 0, 4, 4}, 4, 4, image.Pt(2, 2)},
		{"odd size floors", CellRect{3, 0, 3, 3}, 6, 3, image.Pt(4, 1)},
		{"single pixel", CellRect{0, 0, 1, 1}, 1, 1, image.Pt(0, 0)},
		{"clamped to last column", CellRect{4, 0, 4, 1}, 5, 1, image.Pt(4, 0)},
		{"clamped to last row", CellRect{0, 2, 1, 6}, 1, 3, image.Pt(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := samplePoint(tt.cell, tt.width, tt.height); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvariantError_Error(t *testing.T) {
	err := &InvariantError{Op: "verify", Msg: "pixel (1,2) not covered by any cell"}
	want := "mosaic invariant violated: verify: pixel (1,2) not covered by any cell"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	err = &InvariantError{Msg: "boom"}
	if err.Error() != "mosaic invariant violated: boom" {
		t.Errorf("got %q", err.Error())
	}

	var nilErr *InvariantError
	if nilErr.Error() != "" {
		t.Error("nil InvariantError should render empty")
	}
}
