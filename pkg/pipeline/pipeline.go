// Package pipeline provides the collage pipeline for gridfold.
//
// This package implements the complete discover → analyze → plan → compose →
// encode pipeline used by the CLI commands. Centralizing it here keeps the
// build and plan commands behaving identically and gives tests a single
// entry point.
//
// # Architecture
//
// The pipeline consists of these stages:
//
//  1. Discover: list and sort the image files in the source folder
//  2. Probe: read image dimensions (cached; corrupt files are skipped)
//  3. Analyze: pick the representative aspect ratio
//  4. Plan: compute canvas and grid geometry, sampling if a row cap applies
//  5. Compose: fit every image into its cell on the canvas
//  6. Title: draw the title and sample-label overlays
//  7. Encode: write the output file atomically
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Folder: "photos", Columns: 4}
//	result, err := runner.Execute(ctx, &opts)
package pipeline

import (
	"path/filepath"

	"github.com/gridfold/gridfold/pkg/encode"
	"github.com/gridfold/gridfold/pkg/errors"
	"github.com/gridfold/gridfold/pkg/layout"
)

// Default values shared by every entry point. The CLI surfaces these as
// flag defaults; the pipeline re-applies them so programmatic callers get
// the same behavior.
const (
	// DefaultSize is the default length of the canvas's longer dimension.
	DefaultSize = layout.DefaultSize

	// DefaultPadding is the default spacing between cells in pixels.
	DefaultPadding = 5

	// DefaultQuality is the default JPEG/WEBP quality.
	DefaultQuality = 80

	// DefaultBackground is the default canvas background color.
	DefaultBackground = "#000000"

	// DefaultTitleSize is the default title font size in pixels.
	DefaultTitleSize = 24

	// DefaultTitleColor is the default title fill color.
	DefaultTitleColor = "#FFFFFF"

	// DefaultTitleBorder is the default title stroke width in pixels.
	DefaultTitleBorder = 2

	// DefaultTitleBorderColor is the default title stroke color.
	DefaultTitleBorderColor = "#000000"
)

// TitleOptions configures the optional title overlay.
type TitleOptions struct {
	Text        string // empty means no title
	Size        int    // font size in pixels
	Font        string // path to a TTF file; empty uses a system font
	Color       string // hex fill color
	BorderWidth int    // stroke width; 0 disables the border
	BorderColor string // hex stroke color
	Margin      bool   // reserve canvas space instead of overlaying
}

// Options contains all configuration for a collage run.
type Options struct {
	// Input and output
	Folder string // source folder (required)
	Output string // output path; empty derives it from the folder name

	// Canvas geometry
	Size     int  // longer-dimension target; 0 means DefaultSize
	Width    int  // explicit canvas width
	Height   int  // explicit canvas height
	Padding  int  // pixels between cells
	Columns  int  // explicit column count; 0 auto-computes
	MaxRows  int  // row cap; exceeding it samples the images
	Centered bool // center the grid in leftover canvas space

	// Appearance
	Background string // hex background color
	Quality    int    // lossy encode quality 1-100
	Title      TitleOptions

	// Execution
	Workers int   // concurrent cell workers; 0 means one per CPU
	Seed    int64 // analyzer sampling seed; 0 seeds from the clock

	// resolvedOutput is the absolute output path, set by validation.
	resolvedOutput string

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults fills in default values and rejects invalid
// configuration. It runs before any file is touched, so a bad flag fails
// fast without image processing.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Folder == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "source folder is required")
	}

	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Title.Size == 0 {
		o.Title.Size = DefaultTitleSize
	}
	if o.Title.Color == "" {
		o.Title.Color = DefaultTitleColor
	}
	if o.Title.BorderColor == "" {
		o.Title.BorderColor = DefaultTitleBorderColor
	}

	if err := errors.ValidateQuality(o.Quality); err != nil {
		return err
	}
	if err := errors.ValidatePadding(o.Padding); err != nil {
		return err
	}
	if err := errors.ValidateDimension("size", o.Size); err != nil {
		return err
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if err := errors.ValidateCount("columns", o.Columns); err != nil {
		return err
	}
	if err := errors.ValidateCount("max-rows", o.MaxRows); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(o.Background); err != nil {
		return err
	}
	if o.Title.Text != "" {
		if err := errors.ValidateHexColor(o.Title.Color); err != nil {
			return err
		}
		if err := errors.ValidateHexColor(o.Title.BorderColor); err != nil {
			return err
		}
		if o.Title.BorderWidth < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "title border cannot be negative, got %d", o.Title.BorderWidth)
		}
		if o.Title.Size < 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "title size must be at least 1, got %d", o.Title.Size)
		}
		if err := errors.ValidateFontPath(o.Title.Font); err != nil {
			return err
		}
	}

	out, err := resolveOutput(o.Output, o.Folder)
	if err != nil {
		return err
	}
	// Fail on unsupported extensions before any image work happens.
	if _, err := encode.ForPath(out, o.Quality); err != nil {
		return err
	}
	o.resolvedOutput = out

	o.validated = true
	return nil
}

// OutputPath returns the absolute output path. Valid after
// ValidateAndSetDefaults.
func (o *Options) OutputPath() string {
	return o.resolvedOutput
}

// resolveOutput turns the user's output argument into an absolute path.
// An empty argument derives "<folder base>.jpg" in the working directory;
// a missing extension gets the default one.
func resolveOutput(output, folder string) (string, error) {
	if output == "" {
		abs, err := filepath.Abs(folder)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot resolve folder %q", folder)
		}
		output = filepath.Base(abs) + encode.DefaultExtension
	} else if filepath.Ext(output) == "" {
		output += encode.DefaultExtension
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot resolve output %q", output)
	}
	return abs, nil
}
