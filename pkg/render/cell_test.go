package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

// solid returns a solid-color image of the given size.
func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// isReddish reports whether c is recognizably the red test color, with
// tolerance for resampling at region edges.
func isReddish(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 200 && g>>8 < 60 && b>>8 < 60
}

// isWhite reports whether c is the white background.
func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 240 && g>>8 > 240 && b>>8 > 240
}

func TestFitCellDimensions(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		cellW, cellH int
	}{
		{"landscape into square", 200, 100, 100, 100},
		{"portrait into square", 100, 200, 100, 100},
		{"exact fit", 100, 100, 100, 100},
		{"upscale", 10, 10, 100, 100},
		{"wide cell", 100, 100, 300, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := FitCell(solid(tt.srcW, tt.srcH, red), tt.cellW, tt.cellH, white)
			if cell.Bounds().Dx() != tt.cellW || cell.Bounds().Dy() != tt.cellH {
				t.Errorf("cell = %dx%d, want %dx%d",
					cell.Bounds().Dx(), cell.Bounds().Dy(), tt.cellW, tt.cellH)
			}
		})
	}
}

func TestFitCellLetterboxing(t *testing.T) {
	// A 2:1 source in a square cell: letterboxed to 100x50, centered.
	cell := FitCell(solid(200, 100, red), 100, 100, white)

	if !isReddish(cell.At(50, 50)) {
		t.Error("cell center should show the source image")
	}
	if !isWhite(cell.At(50, 5)) {
		t.Error("top letterbox band should be background")
	}
	if !isWhite(cell.At(50, 95)) {
		t.Error("bottom letterbox band should be background")
	}

	// The non-background region must match the source aspect ratio within
	// one pixel of rounding: 100 wide, 50 tall.
	minY, maxY := -1, -1
	for y := 0; y < 100; y++ {
		if isReddish(cell.At(50, y)) {
			if minY < 0 {
				minY = y
			}
			maxY = y
		}
	}
	height := maxY - minY + 1
	if height < 49 || height > 51 {
		t.Errorf("fitted height = %d, want 50 ±1", height)
	}

	minX, maxX := -1, -1
	for x := 0; x < 100; x++ {
		if isReddish(cell.At(x, 50)) {
			if minX < 0 {
				minX = x
			}
			maxX = x
		}
	}
	width := maxX - minX + 1
	if width < 99 || width > 100 {
		t.Errorf("fitted width = %d, want 100 ±1", width)
	}
}

func TestFitCellPillarboxing(t *testing.T) {
	cell := FitCell(solid(100, 200, red), 100, 100, white)

	if !isReddish(cell.At(50, 50)) {
		t.Error("cell center should show the source image")
	}
	if !isWhite(cell.At(5, 50)) {
		t.Error("left pillarbox band should be background")
	}
	if !isWhite(cell.At(95, 50)) {
		t.Error("right pillarbox band should be background")
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	if c != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("ParseHex(#ff0000) = %v", c)
	}

	c, err = ParseHex("fff")
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	if c != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("ParseHex(fff) = %v", c)
	}

	if _, err := ParseHex("#FF8800"); err != nil {
		t.Errorf("uppercase hex should parse: %v", err)
	}

	for _, bad := range []string{"", "red", "#12345", "#zzzzzz"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}
