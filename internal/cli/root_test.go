package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a solid-color PNG with the given dimensions.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRootCommandBuildsCollage(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png"} {
		writePNG(t, filepath.Join(dir, name), 50, 50)
	}
	out := filepath.Join(t.TempDir(), "out.png")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{dir, out, "--size", "120", "--columns", "2", "--no-cache"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output not decodable: %v", err)
	}
	// Padding 5, 2 columns: cells are (120-15)/2 = 52 px square and the
	// canvas height refits to 2*52+15 = 119.
	if cfg.Width != 120 || cfg.Height != 119 {
		t.Errorf("output is %dx%d, want 120x119", cfg.Width, cfg.Height)
	}
}

func TestRootCommandRejectsMissingFolder(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{filepath.Join(t.TempDir(), "missing"), "--no-cache"})

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("Execute succeeded for missing folder, want error")
	}
}

func TestRootCommandRejectsBadQuality(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{t.TempDir(), "--quality", "200", "--no-cache"})

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("Execute succeeded with quality 200, want error")
	}
}

func TestPlanCommandWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 40, 30)
	writePNG(t, filepath.Join(dir, "b.png"), 40, 30)
	out := filepath.Join(t.TempDir(), "out.jpg")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"plan", dir, out, "--no-cache"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("plan error: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("plan wrote an output file")
	}
}
