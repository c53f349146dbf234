package render

import (
	"image"
	"image/color"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gridfold/gridfold/pkg/errors"
)

// textEdgePadding is the distance in pixels between overlay text and the
// canvas edge (and the extra space above/below text in a reserved margin).
const textEdgePadding = 20

// fallbackFonts are tried via system font lookup when no explicit font path
// is given.
var fallbackFonts = []string{
	"DejaVuSans-Bold.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Bold.ttf",
	"Arial.ttf",
	"arial.ttf",
	"Helvetica.ttf",
}

// TitleOptions configures the title and sample-label overlays.
type TitleOptions struct {
	Text        string
	Size        int // font size in pixels
	FontPath    string
	Color       color.Color
	BorderWidth int
	BorderColor color.Color
}

// loadFace loads the title font face. An explicitly given path must exist
// and parse; without one, common system fonts are tried and the builtin
// bitmap face is the last resort.
func loadFace(path string, size float64) (font.Face, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot read font %q", path)
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot parse font %q", path)
		}
		return truetype.NewFace(f, &truetype.Options{Size: size}), nil
	}

	for _, name := range fallbackFonts {
		fontPath, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(fontPath)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return truetype.NewFace(f, &truetype.Options{Size: size}), nil
	}

	return basicfont.Face7x13, nil
}

// TitleMargin measures the vertical space a reserved title band needs:
// text height plus edge padding above and below plus the border stroke.
// Returns 0 for an empty title.
func TitleMargin(opts TitleOptions) (int, error) {
	if opts.Text == "" {
		return 0, nil
	}
	face, err := loadFace(opts.FontPath, float64(opts.Size))
	if err != nil {
		return 0, err
	}
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	_, h := dc.MeasureString(opts.Text)
	return int(h) + 2*textEdgePadding + 2*opts.BorderWidth, nil
}

// DrawTitle draws the title (top-left) and the sample label (top-right)
// onto the canvas. Either string may be empty. The border is produced by
// filling the text repeatedly at every offset within the border width
// before the final fill.
func DrawTitle(canvas *image.RGBA, opts TitleOptions, sampleLabel string) error {
	if opts.Text == "" && sampleLabel == "" {
		return nil
	}

	face, err := loadFace(opts.FontPath, float64(opts.Size))
	if err != nil {
		return err
	}

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(face)

	if opts.Text != "" {
		drawOutlined(dc, opts.Text, float64(textEdgePadding), opts)
	}
	if sampleLabel != "" {
		w, _ := dc.MeasureString(sampleLabel)
		x := float64(canvas.Bounds().Dx()) - w - float64(textEdgePadding) - float64(2*opts.BorderWidth)
		drawOutlined(dc, sampleLabel, x, opts)
	}
	return nil
}

// drawOutlined draws one line of text at the top of the canvas with the
// fill-behind border technique.
func drawOutlined(dc *gg.Context, text string, x float64, opts TitleOptions) {
	_, h := dc.MeasureString(text)
	y := float64(textEdgePadding) + h

	if opts.BorderWidth > 0 {
		border := opts.BorderColor
		if border == nil {
			border = color.Black
		}
		dc.SetColor(border)
		for dx := -opts.BorderWidth; dx <= opts.BorderWidth; dx++ {
			for dy := -opts.BorderWidth; dy <= opts.BorderWidth; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				dc.DrawString(text, x+float64(dx), y+float64(dy))
			}
		}
	}

	fill := opts.Color
	if fill == nil {
		fill = color.White
	}
	dc.SetColor(fill)
	dc.DrawString(text, x, y)
}
