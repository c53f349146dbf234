package layout

import (
	"fmt"

	"github.com/gridfold/gridfold/pkg/source"
)

// Sample is a possibly reduced subset of the source images.
// When Truncated is false, Images is the original list unchanged.
type Sample struct {
	Images    []source.Image
	Truncated bool
	Original  int
}

// Label returns the "Sample N of M" overlay text, or "" when no sampling
// occurred.
func (s Sample) Label() string {
	if !s.Truncated {
		return ""
	}
	return fmt.Sprintf("Sample %d of %d", len(s.Images), s.Original)
}

// SampleImages reduces images to at most maxImages entries.
//
// The first and last images are always kept; intermediate picks are spread
// at an even stride across the rest, centered within each stride so coverage
// approximates uniform. maxImages <= 0 or >= len(images) returns the input
// unchanged and not truncated.
func SampleImages(images []source.Image, maxImages int) Sample {
	n := len(images)
	s := Sample{Images: images, Original: n}
	if maxImages <= 0 || maxImages >= n {
		return s
	}
	s.Truncated = true

	if maxImages < 2 {
		s.Images = images[:maxImages]
		return s
	}

	out := make([]source.Image, 0, maxImages)
	out = append(out, images[0])

	if maxImages > 2 {
		remaining := maxImages - 2
		middle := n - 2
		step := float64(middle) / float64(remaining)
		for i := 0; i < remaining; i++ {
			idx := int(1 + float64(i)*step + step/2)
			if idx < n-1 {
				out = append(out, images[idx])
			}
		}
	}

	out = append(out, images[n-1])
	s.Images = out
	return s
}
