package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gridfold/gridfold/pkg/layout"
	"github.com/gridfold/gridfold/pkg/source"
)

func writeSolidPNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(w, h, c)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestAssemblerGrid(t *testing.T) {
	dir := t.TempDir()
	colors := []color.NRGBA{
		{R: 0xff, A: 0xff},
		{G: 0xff, A: 0xff},
		{B: 0xff, A: 0xff},
		{R: 0xff, G: 0xff, A: 0xff},
	}
	var images []source.Image
	for i, c := range colors {
		path := filepath.Join(dir, string(rune('a'+i))+".png")
		writeSolidPNG(t, path, 100, 100, c)
		images = append(images, source.Image{Path: path, Width: 100, Height: 100})
	}

	// 2x2 grid of 200px square cells with 10px padding on a 430px canvas.
	lay, err := layout.Plan(4, 1.0, layout.PlanOptions{Width: 430, Height: 430, Padding: 10, Columns: 2})
	if err != nil {
		t.Fatal(err)
	}
	if lay.Grid.CellWidth != 200 || lay.Grid.CellHeight != 200 {
		t.Fatalf("cell = %dx%d, want 200x200", lay.Grid.CellWidth, lay.Grid.CellHeight)
	}

	a := NewAssembler(lay, white, 2, nil)
	if err := a.Compose(context.Background(), images); err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	canvas := a.Canvas()

	if canvas.Bounds().Dx() != 430 || canvas.Bounds().Dy() != 430 {
		t.Fatalf("canvas = %dx%d, want 430x430", canvas.Bounds().Dx(), canvas.Bounds().Dy())
	}

	// Cell centers carry the corresponding image colors (row-major order).
	centers := []image.Point{{110, 110}, {320, 110}, {110, 320}, {320, 320}}
	for i, pt := range centers {
		r, g, b, _ := canvas.At(pt.X, pt.Y).RGBA()
		wr, wg, wb, _ := colors[i].RGBA()
		if diff(r, wr) > 0x0f00 || diff(g, wg) > 0x0f00 || diff(b, wb) > 0x0f00 {
			t.Errorf("cell %d center = %v, want close to %v", i, canvas.At(pt.X, pt.Y), colors[i])
		}
	}

	// Padding lines stay background: canvas edge, the vertical gutter
	// between columns, and the horizontal gutter between rows.
	for _, pt := range []image.Point{{5, 5}, {215, 110}, {110, 215}, {425, 425}} {
		if !isWhite(canvas.At(pt.X, pt.Y)) {
			t.Errorf("padding at %v = %v, want background", pt, canvas.At(pt.X, pt.Y))
		}
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestAssemblerSkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}

	lay, err := layout.Plan(1, 1.0, layout.PlanOptions{Width: 120, Height: 120, Padding: 10, Columns: 1})
	if err != nil {
		t.Fatal(err)
	}

	a := NewAssembler(lay, black, 1, nil)
	err = a.Compose(context.Background(), []source.Image{{Path: bad, Width: 100, Height: 100}})
	if err != nil {
		t.Fatalf("Compose should skip undecodable images, got %v", err)
	}

	// The cell stays background.
	r, g, b, _ := a.Canvas().At(60, 60).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("cell for skipped image = %v, want background", a.Canvas().At(60, 60))
	}
}

func TestAssemblerLetterboxInCell(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.png")
	writeSolidPNG(t, path, 200, 100, color.NRGBA{R: 0xff, A: 0xff})

	lay, err := layout.Plan(1, 2.0, layout.PlanOptions{Width: 100, Height: 100, Padding: 0, Columns: 1})
	if err != nil {
		t.Fatal(err)
	}

	a := NewAssembler(lay, white, 1, nil)
	if err := a.Compose(context.Background(), []source.Image{{Path: path, Width: 200, Height: 100}}); err != nil {
		t.Fatal(err)
	}

	canvas := a.Canvas()
	if !isReddish(canvas.At(50, 50)) {
		t.Error("image should cover the cell center")
	}
	if !isWhite(canvas.At(50, 5)) || !isWhite(canvas.At(50, 95)) {
		t.Error("letterbox bands should be background")
	}
}
