package layout

import (
	"math"

	"github.com/gridfold/gridfold/pkg/errors"
	"github.com/gridfold/gridfold/pkg/source"
)

// DefaultSize is the default length of the canvas's longer dimension.
const DefaultSize = 1920

// PlanOptions configures the grid planner.
// Zero values mean "not set" for every field except Padding and Centered.
type PlanOptions struct {
	Size        int  // target length of the longer canvas dimension
	Width       int  // explicit canvas width
	Height      int  // explicit canvas height
	Columns     int  // explicit column count
	MaxRows     int  // row cap; exceeding it triggers sampling
	Padding     int  // pixels between cells and around the canvas edge
	Centered    bool // center the grid in leftover canvas space
	TitleMargin int  // pixels reserved at the top for the title
}

// Canvas is the output image geometry. Height includes TitleMargin.
type Canvas struct {
	Width       int
	Height      int
	TitleMargin int
}

// Grid partitions the canvas below the title margin into cells.
type Grid struct {
	Rows       int
	Cols       int
	CellWidth  int
	CellHeight int
	Padding    int
	OffsetX    int
	OffsetY    int
}

// Capacity returns the number of cells in the grid.
func (g Grid) Capacity() int {
	return g.Rows * g.Cols
}

// Layout combines canvas and grid geometry. Computed once per run.
type Layout struct {
	Canvas Canvas
	Grid   Grid
}

// CellOrigin returns the top-left canvas pixel of the cell at (row, col).
func (l Layout) CellOrigin(row, col int) (x, y int) {
	g := l.Grid
	x = g.OffsetX + col*g.CellWidth + g.Padding*(col+1)
	y = l.Canvas.TitleMargin + g.OffsetY + row*g.CellHeight + g.Padding*(row+1)
	return x, y
}

// Position returns the (row, col) cell for the i-th image in row-major
// fill order.
func (l Layout) Position(i int) (row, col int) {
	return i / l.Grid.Cols, i % l.Grid.Cols
}

// Plan computes the canvas and grid for n images of the given aspect ratio.
//
// Explicit width and height win over Size; a single explicit dimension
// derives the other from the cell aspect ratio; otherwise the canvas takes
// the grid's aggregate aspect ratio at the requested Size. The grid is the
// explicit column count when given, an integer search against the canvas
// aspect when the canvas is fixed, and a near-square grid oriented to the
// cell aspect otherwise. Unless Height is explicit, the canvas height is
// refit so the grid closes exactly at the bottom padding.
func Plan(n int, aspect float64, opts PlanOptions) (Layout, error) {
	if n < 1 {
		return Layout{}, errors.New(errors.ErrCodeNoImages, "cannot lay out zero images")
	}
	if aspect <= 0 {
		return Layout{}, errors.New(errors.ErrCodeLayout, "aspect ratio must be positive, got %g", aspect)
	}

	p := opts.Padding
	margin := opts.TitleMargin
	explicit := opts.Width > 0 && opts.Height > 0

	var rows, cols int
	switch {
	case opts.Columns > 0:
		cols = opts.Columns
		rows = ceilDiv(n, cols)
	case explicit:
		canvasAspect := float64(opts.Width) / float64(opts.Height-margin)
		rows, cols = searchGrid(n, aspect, canvasAspect)
	default:
		cols = int(math.Ceil(math.Sqrt(float64(n))))
		rows = ceilDiv(n, cols)
		g := float64(cols) / float64(rows) * aspect
		if (g > 1 && cols < rows) || (g < 1 && cols > rows) {
			cols, rows = rows, cols
		}
	}

	var width, height int
	switch {
	case explicit:
		width, height = opts.Width, opts.Height
	case opts.Width > 0:
		width = opts.Width
		cw := (width - (cols+1)*p) / cols
		ch := int(float64(cw) / aspect)
		height = rows*ch + (rows+1)*p + margin
	case opts.Height > 0:
		height = opts.Height
		ch := (height - margin - (rows+1)*p) / rows
		cw := int(float64(ch) * aspect)
		width = cols*cw + (cols+1)*p
	default:
		size := opts.Size
		if size <= 0 {
			size = DefaultSize
		}
		g := aspect
		if opts.Columns == 0 {
			g = float64(cols) / float64(rows) * aspect
		}
		if g >= 1 {
			width = size
			height = int(float64(size) / g)
		} else {
			height = size
			width = int(float64(size) * g)
		}
	}

	cellW := (width - (cols+1)*p) / cols
	var cellH int
	if explicit {
		// Both dimensions pinned by the user: divide the canvas evenly and
		// let the compositor letterbox inside cells.
		cellH = (height - margin - (rows+1)*p) / rows
	} else {
		cellH = int(float64(cellW) / aspect)
	}
	if cellW <= 0 || cellH <= 0 {
		return Layout{}, errors.New(errors.ErrCodeLayout,
			"canvas %dx%d with padding %d cannot hold a %dx%d grid (cell would be %dx%d)",
			width, height, p, rows, cols, cellW, cellH)
	}

	if opts.Height <= 0 {
		height = rows*cellH + (rows+1)*p + margin
	}

	grid := Grid{
		Rows:       rows,
		Cols:       cols,
		CellWidth:  cellW,
		CellHeight: cellH,
		Padding:    p,
	}
	if opts.Centered {
		gridW := cols*cellW + (cols+1)*p
		gridH := rows*cellH + (rows+1)*p
		grid.OffsetX = max((width-gridW)/2, 0)
		grid.OffsetY = max((height-margin-gridH)/2, 0)
	}

	return Layout{
		Canvas: Canvas{Width: width, Height: height, TitleMargin: margin},
		Grid:   grid,
	}, nil
}

// PlanWithLimit plans a grid for images, sampling them down when the plan
// would exceed opts.MaxRows. The replanned grid keeps the first pass's
// column count so the row cap is hit exactly.
func PlanWithLimit(images []source.Image, aspect float64, opts PlanOptions) (Layout, Sample, error) {
	sample := Sample{Images: images, Original: len(images)}

	lay, err := Plan(len(images), aspect, opts)
	if err != nil {
		return Layout{}, sample, err
	}
	if opts.MaxRows <= 0 || lay.Grid.Rows <= opts.MaxRows {
		return lay, sample, nil
	}

	sample = SampleImages(images, opts.MaxRows*lay.Grid.Cols)
	opts.Columns = lay.Grid.Cols
	lay, err = Plan(len(sample.Images), aspect, opts)
	if err != nil {
		return Layout{}, sample, err
	}
	return lay, sample, nil
}

// searchGrid finds the (rows, cols) pair with rows*cols >= n whose aggregate
// aspect ratio is closest to the canvas aspect ratio. Ties prefer fewer
// empty cells, then fewer rows.
func searchGrid(n int, cellAspect, canvasAspect float64) (rows, cols int) {
	const eps = 1e-9
	bestScore := math.Inf(1)
	bestEmpty := math.MaxInt
	rows, cols = 1, n

	for r := 1; r <= n; r++ {
		c := ceilDiv(n, r)
		score := math.Abs(cellAspect*float64(c)/float64(r) - canvasAspect)
		empty := r*c - n
		if score < bestScore-eps || (math.Abs(score-bestScore) <= eps && empty < bestEmpty) {
			bestScore = score
			bestEmpty = empty
			rows, cols = r, c
		}
	}
	return rows, cols
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
