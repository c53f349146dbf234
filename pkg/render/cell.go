package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FitCell scales src to fit within a w×h cell without cropping and centers
// it on a background-filled buffer of exactly that size.
//
// The scale factor is min(w/srcW, h/srcH), so the pasted region keeps the
// source aspect ratio within one pixel of rounding; leftover space becomes
// letterboxing (or pillarboxing) in the background color.
func FitCell(src image.Image, w, h int, bg color.Color) *image.NRGBA {
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()

	scale := math.Min(float64(w)/float64(srcW), float64(h)/float64(srcH))
	scaledW := clamp(int(math.Round(float64(srcW)*scale)), 1, w)
	scaledH := clamp(int(math.Round(float64(srcH)*scale)), 1, h)

	resized := imaging.Resize(src, scaledW, scaledH, imaging.Lanczos)
	cell := imaging.New(w, h, bg)
	return imaging.PasteCenter(cell, resized)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
