package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/gridfold/gridfold/pkg/layout"
	"github.com/gridfold/gridfold/pkg/source"
)

// Assembler owns the canvas buffer and fills it cell by cell.
type Assembler struct {
	layout  layout.Layout
	bg      color.Color
	canvas  *image.RGBA
	logger  *log.Logger
	workers int
}

// NewAssembler allocates a background-filled canvas for lay.
// workers bounds the number of concurrent cell compositions; values < 1
// mean one worker per CPU.
func NewAssembler(lay layout.Layout, bg color.Color, workers int, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.Default()
	}
	canvas := image.NewRGBA(image.Rect(0, 0, lay.Canvas.Width, lay.Canvas.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Assembler{
		layout:  lay,
		bg:      bg,
		canvas:  canvas,
		logger:  logger,
		workers: workers,
	}
}

// Compose decodes each image and blits it into its cell in row-major order.
//
// Cells are composited concurrently, but every worker touches only its own
// cell rectangle of the shared canvas; the rectangles are disjoint by
// construction, so the blits do not race. Decoded source buffers live only
// for the duration of their cell.
//
// An image that fails to decode at this stage is skipped with a warning and
// its cell keeps the background color; unreadable files have normally been
// filtered out during probing already.
func (a *Assembler) Compose(ctx context.Context, images []source.Image) error {
	workers := a.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	cellW := a.layout.Grid.CellWidth
	cellH := a.layout.Grid.CellHeight

	for i, src := range images {
		if i >= a.layout.Grid.Capacity() {
			a.logger.Warn("more images than cells, truncating", "extra", len(images)-i)
			break
		}
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			img, err := imaging.Open(src.Path, imaging.AutoOrientation(true))
			if err != nil {
				a.logger.Warn("skipping undecodable image", "path", src.Path, "err", err)
				return nil
			}

			cell := FitCell(img, cellW, cellH, a.bg)
			row, col := a.layout.Position(i)
			x, y := a.layout.CellOrigin(row, col)
			draw.Draw(a.canvas, image.Rect(x, y, x+cellW, y+cellH), cell, image.Point{}, draw.Src)
			return nil
		})
	}

	return g.Wait()
}

// Canvas returns the assembled canvas buffer.
func (a *Assembler) Canvas() *image.RGBA {
	return a.canvas
}
