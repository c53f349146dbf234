package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridfold/gridfold/pkg/pipeline"
)

// collageFlags holds the command-line flags shared by the build and plan
// commands. Defaults mirror pipeline defaults so the help text and the
// library agree.
type collageFlags struct {
	size     int  // longer canvas dimension target
	width    int  // explicit canvas width
	height   int  // explicit canvas height
	padding  int  // pixels between cells
	columns  int  // explicit column count
	maxRows  int  // row cap; exceeding it samples the images
	centered bool // center the grid in leftover canvas space

	background string // hex background color
	quality    int    // lossy encode quality

	title            string // title text; empty disables the overlay
	titleSize        int    // title font size in pixels
	titleFont        string // TTF file path
	titleColor       string // title fill color
	titleBorder      int    // title stroke width
	titleBorderColor string // title stroke color
	titleMargin      bool   // reserve canvas space instead of overlaying

	workers int   // concurrent cell workers
	seed    int64 // analyzer sampling seed

	noCache    bool   // bypass the probe cache
	configFile string // explicit config file path
}

// register wires the shared flags onto cmd.
func (f *collageFlags) register(cmd *cobra.Command) {
	f.size = pipeline.DefaultSize
	f.padding = pipeline.DefaultPadding
	f.background = pipeline.DefaultBackground
	f.quality = pipeline.DefaultQuality
	f.titleSize = pipeline.DefaultTitleSize
	f.titleColor = pipeline.DefaultTitleColor
	f.titleBorder = pipeline.DefaultTitleBorder
	f.titleBorderColor = pipeline.DefaultTitleBorderColor

	flags := cmd.Flags()
	flags.IntVarP(&f.size, "size", "s", f.size, "target length of the longer canvas dimension")
	flags.IntVar(&f.width, "width", 0, "explicit canvas width (overrides --size)")
	flags.IntVar(&f.height, "height", 0, "explicit canvas height (overrides --size)")
	flags.IntVarP(&f.padding, "padding", "p", f.padding, "pixels between cells and around the edge")
	flags.IntVarP(&f.columns, "columns", "c", 0, "number of columns (default auto)")
	flags.IntVar(&f.maxRows, "max-rows", 0, "cap on rows; extra images are sampled out")
	flags.BoolVar(&f.centered, "centered", false, "center the grid in leftover canvas space")
	flags.StringVarP(&f.background, "background", "b", f.background, "background color (hex)")
	flags.IntVarP(&f.quality, "quality", "q", f.quality, "JPEG/WEBP quality (1-100)")
	flags.StringVarP(&f.title, "title", "t", "", "title text drawn on the collage")
	flags.IntVar(&f.titleSize, "title-size", f.titleSize, "title font size in pixels")
	flags.StringVar(&f.titleFont, "title-font", "", "path to a TTF font for the title")
	flags.StringVar(&f.titleColor, "title-color", f.titleColor, "title text color (hex)")
	flags.IntVar(&f.titleBorder, "title-border", f.titleBorder, "title outline width in pixels")
	flags.StringVar(&f.titleBorderColor, "title-border-color", f.titleBorderColor, "title outline color (hex)")
	flags.BoolVar(&f.titleMargin, "title-margin", false, "reserve space above the grid for the title")
	flags.IntVarP(&f.workers, "workers", "w", 0, "concurrent image workers (default one per CPU)")
	flags.Int64Var(&f.seed, "seed", 0, "random seed for aspect sampling (default time-seeded)")
	flags.BoolVar(&f.noCache, "no-cache", false, "bypass the image dimension cache")
	flags.StringVar(&f.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/gridfold/config.toml)")
}

// options converts the flags into pipeline options.
func (f *collageFlags) options(folder, output string) pipeline.Options {
	return pipeline.Options{
		Folder:     folder,
		Output:     output,
		Size:       f.size,
		Width:      f.width,
		Height:     f.height,
		Padding:    f.padding,
		Columns:    f.columns,
		MaxRows:    f.maxRows,
		Centered:   f.centered,
		Background: f.background,
		Quality:    f.quality,
		Title: pipeline.TitleOptions{
			Text:        f.title,
			Size:        f.titleSize,
			Font:        f.titleFont,
			Color:       f.titleColor,
			BorderWidth: f.titleBorder,
			BorderColor: f.titleBorderColor,
			Margin:      f.titleMargin,
		},
		Workers: f.workers,
		Seed:    f.seed,
	}
}

// buildCommand creates the root command, which runs a full collage build.
func (c *CLI) buildCommand() *cobra.Command {
	var flags collageFlags

	cmd := &cobra.Command{
		Use:   "gridfold <folder> [output]",
		Short: "Gridfold builds image collages from folders",
		Long: `Gridfold lays out every image in a folder on a single grid canvas and
writes the result as one image file.

The grid adapts to the images: the most common aspect ratio among them
decides the cell shape, and the grid dimensions are chosen to fit the
requested canvas. Images are letterboxed into their cells, never cropped.

The output path defaults to "<folder name>.jpg" in the current directory;
the output format follows the file extension (.jpg, .png, .gif, .bmp,
.tiff or .webp).`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &flags); err != nil {
				return err
			}
			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			return c.runBuild(cmd.Context(), flags, args[0], output)
		},
	}

	flags.register(cmd)
	return cmd
}

// runBuild executes the pipeline and prints the result summary.
func (c *CLI) runBuild(ctx context.Context, flags collageFlags, folder, output string) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}

	opts := flags.options(folder, output)
	prog := newProgress(loggerFromContext(ctx))

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Building collage from %s", folder))
	spin.Start()
	res, err := runner.Execute(ctx, &opts)
	spin.Stop()
	if err != nil {
		if ctx.Err() == nil {
			printError("Build failed")
		}
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d images", res.Rendered))

	if res.Sampled {
		printWarning("Sampled %d of %d images to honor the row cap", res.Rendered, res.Total)
	}
	printSuccess("Collage written")
	printFile(res.OutputPath)
	printCollageStats(res)
	return nil
}
