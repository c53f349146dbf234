// Package encode writes the finished canvas to disk.
//
// Each output format implements the Encoder interface; the format is chosen
// from the output file extension. Writes are atomic: the canvas is encoded
// to a hidden temp file in the destination directory and renamed into place
// only on success, so a failed run never leaves a partial output file.
package encode

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gridfold/gridfold/pkg/errors"
)

// DefaultExtension is appended to output paths that carry no extension.
const DefaultExtension = ".jpg"

// Encoder encodes a canvas into one output format.
type Encoder interface {
	// Encode writes img to w.
	Encode(w io.Writer, img image.Image) error

	// Format returns the short format name, e.g. "jpeg".
	Format() string
}

// ForPath selects an encoder from the output path's extension.
// quality applies to lossy formats (JPEG, WEBP) and must already be
// validated to 1-100.
func ForPath(path string, quality int) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpegEncoder{quality: quality}, nil
	case ".png":
		return pngEncoder{}, nil
	case ".gif":
		return gifEncoder{}, nil
	case ".bmp":
		return bmpEncoder{}, nil
	case ".tif", ".tiff":
		return tiffEncoder{}, nil
	case ".webp":
		return webpEncoder{quality: quality}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unsupported output format %q (use .jpg, .png, .gif, .bmp, .tiff or .webp)",
			filepath.Ext(path))
	}
}

type jpegEncoder struct{ quality int }

func (e jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: e.quality})
}

func (e jpegEncoder) Format() string { return "jpeg" }

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func (pngEncoder) Format() string { return "png" }

type gifEncoder struct{}

func (gifEncoder) Encode(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func (gifEncoder) Format() string { return "gif" }

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

func (bmpEncoder) Format() string { return "bmp" }

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func (tiffEncoder) Format() string { return "tiff" }

type webpEncoder struct{ quality int }

func (e webpEncoder) Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(e.quality)})
}

func (e webpEncoder) Format() string { return "webp" }
