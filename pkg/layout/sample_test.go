package layout

import (
	"fmt"
	"testing"

	"github.com/gridfold/gridfold/pkg/source"
)

func numbered(n int) []source.Image {
	images := make([]source.Image, n)
	for i := range images {
		images[i] = source.Image{Path: fmt.Sprintf("%03d.jpg", i), Width: 100, Height: 100}
	}
	return images
}

func TestSampleImagesNoTruncation(t *testing.T) {
	images := numbered(5)

	for _, maxImages := range []int{5, 6, 100, 0, -1} {
		s := SampleImages(images, maxImages)
		if s.Truncated {
			t.Errorf("maxImages=%d: Truncated = true, want false", maxImages)
		}
		if len(s.Images) != 5 {
			t.Errorf("maxImages=%d: len = %d, want 5", maxImages, len(s.Images))
		}
		if s.Label() != "" {
			t.Errorf("maxImages=%d: Label = %q, want empty", maxImages, s.Label())
		}
	}
}

func TestSampleImagesKeepsFirstAndLast(t *testing.T) {
	for _, tt := range []struct{ n, maxImages int }{
		{10, 4},
		{100, 12},
		{50, 2},
		{3, 2},
	} {
		t.Run(fmt.Sprintf("n=%d,max=%d", tt.n, tt.maxImages), func(t *testing.T) {
			images := numbered(tt.n)
			s := SampleImages(images, tt.maxImages)

			if !s.Truncated {
				t.Fatal("Truncated = false, want true")
			}
			if len(s.Images) > tt.maxImages {
				t.Errorf("len = %d, exceeds max %d", len(s.Images), tt.maxImages)
			}
			if s.Images[0].Path != images[0].Path {
				t.Errorf("first = %s, want %s", s.Images[0].Path, images[0].Path)
			}
			if s.Images[len(s.Images)-1].Path != images[tt.n-1].Path {
				t.Errorf("last = %s, want %s", s.Images[len(s.Images)-1].Path, images[tt.n-1].Path)
			}
			if s.Original != tt.n {
				t.Errorf("Original = %d, want %d", s.Original, tt.n)
			}
		})
	}
}

func TestSampleImagesOrderPreserved(t *testing.T) {
	images := numbered(40)
	s := SampleImages(images, 10)

	prev := ""
	for _, img := range s.Images {
		if img.Path <= prev {
			t.Fatalf("sample out of order: %s after %s", img.Path, prev)
		}
		prev = img.Path
	}
}

func TestSampleLabel(t *testing.T) {
	s := SampleImages(numbered(30), 8)
	want := fmt.Sprintf("Sample %d of 30", len(s.Images))
	if s.Label() != want {
		t.Errorf("Label = %q, want %q", s.Label(), want)
	}
}
