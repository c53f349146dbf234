package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridfold/gridfold/pkg/cache"
	"github.com/gridfold/gridfold/pkg/encode"
	"github.com/gridfold/gridfold/pkg/errors"
	"github.com/gridfold/gridfold/pkg/layout"
	"github.com/gridfold/gridfold/pkg/observability"
	"github.com/gridfold/gridfold/pkg/render"
	"github.com/gridfold/gridfold/pkg/source"
)

// Runner executes collage runs. Create one with NewRunner and reuse it
// across runs; it is safe for sequential use only.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a runner. c caches probe results; pass
// cache.NewNullCache() to disable caching. A nil logger uses the default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cache: c, logger: logger}
}

// Result describes a completed (or, for PlanOnly, planned) run.
type Result struct {
	OutputPath string        // absolute destination path
	Format     string        // output format name, e.g. "jpeg"
	Canvas     layout.Canvas // final canvas geometry
	Grid       layout.Grid   // final grid geometry
	Aspect     layout.Aspect // detected cell aspect ratio
	Total      int           // images found in the folder
	Rendered   int           // images placed on the canvas
	Sampled    bool          // whether the row cap reduced the set
	Stats      Stats         // per-stage wall-clock durations
}

// Stats records how long each pipeline stage took.
type Stats map[string]time.Duration

// Total sums the recorded stage durations.
func (s Stats) Total() time.Duration {
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total
}

// stage runs fn as a named pipeline stage, recording its duration and
// emitting observability events.
func (r *Runner) stage(ctx context.Context, stats Stats, name string, fn func() error) error {
	observability.Pipeline().OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	stats[name] = elapsed
	observability.Pipeline().OnStageComplete(ctx, name, elapsed, err)
	if err != nil {
		return err
	}
	r.logger.Debug("stage complete", "stage", name, "duration", elapsed)
	return nil
}

// Execute runs the full pipeline and writes the collage to disk.
//
// Stages run in order: discover, probe, analyze, plan, compose, title,
// encode. Validation happens first, so configuration errors surface before
// any file is read. The output file appears atomically; on error nothing
// is written.
func (r *Runner) Execute(ctx context.Context, opts *Options) (*Result, error) {
	res, lay, sample, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	bg, err := render.ParseHex(opts.Background)
	if err != nil {
		return nil, err
	}

	asm := render.NewAssembler(lay, bg, opts.Workers, r.logger)
	err = r.stage(ctx, res.Stats, "compose", func() error {
		return asm.Compose(ctx, sample.Images)
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, res.Stats, "title", func() error {
		topts, terr := r.titleOptions(opts)
		if terr != nil {
			return terr
		}
		return render.DrawTitle(asm.Canvas(), topts, sample.Label())
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, res.Stats, "encode", func() error {
		enc, eerr := encode.ForPath(res.OutputPath, opts.Quality)
		if eerr != nil {
			return eerr
		}
		res.Format = enc.Format()
		return encode.WriteAtomic(res.OutputPath, asm.Canvas(), enc)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("collage written",
		"output", res.OutputPath,
		"format", res.Format,
		"canvas", res.Canvas,
		"grid", res.Grid,
		"images", res.Rendered,
		"duration", res.Stats.Total())
	return res, nil
}

// PlanOnly runs the pipeline up to (not including) compose. No pixels are
// decoded beyond image headers and nothing is written; the returned Result
// describes what Execute would produce.
func (r *Runner) PlanOnly(ctx context.Context, opts *Options) (*Result, error) {
	res, _, _, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	enc, err := encode.ForPath(res.OutputPath, opts.Quality)
	if err != nil {
		return nil, err
	}
	res.Format = enc.Format()
	return res, nil
}

// prepare validates opts and runs the discover, probe, analyze and plan
// stages shared by Execute and PlanOnly.
func (r *Runner) prepare(ctx context.Context, opts *Options) (*Result, layout.Layout, layout.Sample, error) {
	var (
		lay    layout.Layout
		sample layout.Sample
	)
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, lay, sample, err
		}
	}

	res := &Result{
		OutputPath: opts.OutputPath(),
		Stats:      make(Stats),
	}

	var paths []string
	err := r.stage(ctx, res.Stats, "discover", func() error {
		var derr error
		paths, derr = source.Discover(opts.Folder)
		return derr
	})
	if err != nil {
		return nil, lay, sample, err
	}
	res.Total = len(paths)
	r.logger.Info("found images", "folder", opts.Folder, "count", len(paths))

	var images []source.Image
	err = r.stage(ctx, res.Stats, "probe", func() error {
		prober := source.NewProber(r.cache, r.logger)
		var perr error
		images, perr = prober.ProbeAll(ctx, paths)
		if perr != nil {
			return perr
		}
		if len(images) == 0 {
			return errors.New(errors.ErrCodeNoImages, "no readable images in %q", opts.Folder)
		}
		return nil
	})
	if err != nil {
		return nil, lay, sample, err
	}

	var aspect layout.Aspect
	err = r.stage(ctx, res.Stats, "analyze", func() error {
		var rng *rand.Rand
		if opts.Seed != 0 {
			rng = rand.New(rand.NewSource(opts.Seed))
		}
		var aerr error
		aspect, aerr = layout.AnalyzeAspect(images, rng)
		return aerr
	})
	if err != nil {
		return nil, lay, sample, err
	}
	res.Aspect = aspect
	r.logger.Info("detected aspect ratio", "ratio", aspect.Label, "sampled", aspect.Sampled)

	err = r.stage(ctx, res.Stats, "plan", func() error {
		margin := 0
		if opts.Title.Text != "" && opts.Title.Margin {
			topts, terr := r.titleOptions(opts)
			if terr != nil {
				return terr
			}
			margin, terr = render.TitleMargin(topts)
			if terr != nil {
				return terr
			}
		}

		popts := layout.PlanOptions{
			Size:        opts.Size,
			Width:       opts.Width,
			Height:      opts.Height,
			Columns:     opts.Columns,
			MaxRows:     opts.MaxRows,
			Padding:     opts.Padding,
			Centered:    opts.Centered,
			TitleMargin: margin,
		}
		var perr error
		lay, sample, perr = layout.PlanWithLimit(images, aspect.Ratio, popts)
		return perr
	})
	if err != nil {
		return nil, lay, sample, err
	}

	res.Canvas = lay.Canvas
	res.Grid = lay.Grid
	res.Rendered = len(sample.Images)
	res.Sampled = sample.Truncated
	if sample.Truncated {
		r.logger.Info("row cap reached, sampling", "kept", len(sample.Images), "total", sample.Original)
	}
	r.logger.Info("planned layout",
		"width", lay.Canvas.Width, "height", lay.Canvas.Height,
		"rows", lay.Grid.Rows, "cols", lay.Grid.Cols,
		"cellWidth", lay.Grid.CellWidth, "cellHeight", lay.Grid.CellHeight)

	return res, lay, sample, nil
}

// titleOptions converts the run's title configuration into render options.
func (r *Runner) titleOptions(opts *Options) (render.TitleOptions, error) {
	fill, err := render.ParseHex(opts.Title.Color)
	if err != nil {
		return render.TitleOptions{}, err
	}
	border, err := render.ParseHex(opts.Title.BorderColor)
	if err != nil {
		return render.TitleOptions{}, err
	}
	return render.TitleOptions{
		Text:        opts.Title.Text,
		Size:        opts.Title.Size,
		FontPath:    opts.Title.Font,
		Color:       fill,
		BorderWidth: opts.Title.BorderWidth,
		BorderColor: border,
	}, nil
}
