package errors

import (
	"os"
	"regexp"
)

// ValidateQuality validates a JPEG/WEBP quality value.
// Quality must be in the range 1-100 inclusive.
func ValidateQuality(q int) error {
	if q < 1 || q > 100 {
		return New(ErrCodeInvalidConfig, "quality must be between 1 and 100, got %d", q)
	}
	return nil
}

// ValidatePadding validates the inter-cell padding in pixels.
func ValidatePadding(p int) error {
	if p < 0 {
		return New(ErrCodeInvalidConfig, "padding cannot be negative, got %d", p)
	}
	return nil
}

// ValidateDimension validates an explicit canvas dimension or size value.
// Zero means "not set" and is allowed; negative values are not.
func ValidateDimension(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s cannot be negative, got %d", name, v)
	}
	return nil
}

// ValidateCount validates a count-style flag (columns, max-rows).
// Zero means "not set"; anything else must be at least 1.
func ValidateCount(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must be at least 1, got %d", name, v)
	}
	return nil
}

// hexColorRegex matches #rgb and #rrggbb hex color strings.
var hexColorRegex = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color string such as "#1a2b3c" or "#fff".
// The leading "#" is optional.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex color %q (expected #rrggbb)", s)
	}
	return nil
}

// ValidateFontPath validates an explicitly specified font file path.
// An empty path is allowed (the system default font is used instead).
func ValidateFontPath(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return Wrap(ErrCodeFontNotFound, err, "font file %q not found", path)
	}
	if info.IsDir() {
		return New(ErrCodeFontNotFound, "font path %q is a directory", path)
	}
	return nil
}
