package render

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gridfold/gridfold/pkg/errors"
)

// ParseHex parses a "#rrggbb" or "#rgb" hex color string.
// The leading "#" is optional and matching is case-insensitive.
func ParseHex(s string) (color.Color, error) {
	if err := errors.ValidateHexColor(s); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
