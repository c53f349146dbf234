package render

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/gridfold/gridfold/pkg/errors"
)

func blackCanvas(w, h int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return canvas
}

// hasLightPixel reports whether any pixel in the rectangle is brighter than
// the black background.
func hasLightPixel(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c, _, _, _ := img.At(x, y).RGBA()
			if c>>8 > 100 {
				return true
			}
		}
	}
	return false
}

func TestDrawTitle(t *testing.T) {
	canvas := blackCanvas(600, 200)
	opts := TitleOptions{
		Text:        "Holiday 2025",
		Size:        24,
		Color:       color.White,
		BorderWidth: 2,
		BorderColor: color.Black,
	}

	if err := DrawTitle(canvas, opts, ""); err != nil {
		t.Fatalf("DrawTitle error: %v", err)
	}

	if !hasLightPixel(canvas, image.Rect(0, 0, 300, 80)) {
		t.Error("expected title pixels in the top-left region")
	}
	if hasLightPixel(canvas, image.Rect(0, 120, 600, 200)) {
		t.Error("no pixels should be drawn below the title band")
	}
}

func TestDrawTitleWithSampleLabel(t *testing.T) {
	canvas := blackCanvas(600, 200)
	opts := TitleOptions{
		Text:  "Trip",
		Size:  24,
		Color: color.White,
	}

	if err := DrawTitle(canvas, opts, "Sample 12 of 96"); err != nil {
		t.Fatalf("DrawTitle error: %v", err)
	}

	if !hasLightPixel(canvas, image.Rect(0, 0, 200, 80)) {
		t.Error("expected title pixels top-left")
	}
	if !hasLightPixel(canvas, image.Rect(400, 0, 600, 80)) {
		t.Error("expected sample label pixels top-right")
	}
}

func TestDrawTitleNoText(t *testing.T) {
	canvas := blackCanvas(100, 100)
	if err := DrawTitle(canvas, TitleOptions{}, ""); err != nil {
		t.Fatalf("DrawTitle error: %v", err)
	}
	if hasLightPixel(canvas, canvas.Bounds()) {
		t.Error("empty title should leave the canvas untouched")
	}
}

func TestDrawTitleMissingFont(t *testing.T) {
	canvas := blackCanvas(100, 100)
	opts := TitleOptions{
		Text:     "x",
		Size:     24,
		FontPath: filepath.Join(t.TempDir(), "missing.ttf"),
	}
	err := DrawTitle(canvas, opts, "")
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("code = %v, want FONT_NOT_FOUND", errors.GetCode(err))
	}
}

func TestTitleMargin(t *testing.T) {
	margin, err := TitleMargin(TitleOptions{Text: "Title", Size: 24, BorderWidth: 2})
	if err != nil {
		t.Fatalf("TitleMargin error: %v", err)
	}
	// At least the edge padding above and below plus the border stroke.
	if margin <= 2*textEdgePadding+4 {
		t.Errorf("margin = %d, want > %d", margin, 2*textEdgePadding+4)
	}

	empty, err := TitleMargin(TitleOptions{})
	if err != nil {
		t.Fatalf("TitleMargin error: %v", err)
	}
	if empty != 0 {
		t.Errorf("empty title margin = %d, want 0", empty)
	}
}
