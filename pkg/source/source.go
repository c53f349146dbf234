// Package source discovers image files in a folder and probes their
// dimensions without fully decoding them.
package source

import (
	// Register decoders for every supported input format. DecodeConfig and
	// image.Decode both dispatch on these registrations.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Image is a discovered source image with its natural dimensions.
type Image struct {
	Path   string
	Width  int
	Height int
}

// Ratio returns the width/height aspect ratio.
func (i Image) Ratio() float64 {
	return float64(i.Width) / float64(i.Height)
}
