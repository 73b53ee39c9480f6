package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// NeighborCount counts living neighbors of (row, col). Neighbors that would
// fall outside the grid are skipped, nothing wraps around, so corners see at
// most 3 neighbors and edges at most 5. Coordinates outside the grid count 0.
func NeighborCount(g *Grid, row, col int) int {
	if !g.inBounds(row, col) {
		return 0
	}

	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] == rules.Alive {
				count++
			}
		}
	}

	return count
}

// Step returns the next generation of g as a new grid. g is only read.
func Step(g *Grid) *Grid {
	next := newGrid(g.rows, g.cols)
	stepRows(next, g, 0, g.rows)
	return next
}

// StepInto writes the next generation of src into dst, overwriting every cell
func StepInto(dst, src *Grid) error {
	if dst == src {
		return errors.New("[StepInto] destination must not be the source grid")
	}
	if dst.rows != src.rows || dst.cols != src.cols {
		return errors.Wrapf(ErrDimensionMismatch, "[StepInto] dst %dx%d, src %dx%d",
			dst.rows, dst.cols, src.rows, src.cols)
	}
	stepRows(dst, src, 0, src.rows)
	return nil
}

// StepParallel calculates the next generation splitting rows across workers.
// Each worker reads the untouched source and writes its own rows of the result.
func StepParallel(g *Grid, pool *GridPool) (*Grid, error) {
	next := pool.Get(g.rows, g.cols)

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			stepRows(next, g, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		pool.Put(next)
		return nil, errors.Wrap(err, "[StepParallel] failed in parallel processing")
	}

	return next, nil
}

func stepRows(dst, src *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range src.cols {
			dst.cells[row][col] = rules.TransitionRule(src.cells[row][col], NeighborCount(src, row, col))
		}
	}
}

// Engine advances generations using the strategy selected by configuration
type Engine struct {
	parallel bool
	pool     *GridPool
}

// NewEngine creates an engine. A nil pool allocates a fresh grid every step.
func NewEngine(parallel bool, pool *GridPool) *Engine {
	return &Engine{parallel: parallel, pool: pool}
}

// Next returns the generation after g. g is left unmodified; once the caller
// has swapped its reference it can hand g back with Release.
func (e *Engine) Next(g *Grid) (*Grid, error) {
	if e.parallel {
		return StepParallel(g, e.pool)
	}
	if e.pool == nil {
		return Step(g), nil
	}
	next := e.pool.Get(g.rows, g.cols)
	stepRows(next, g, 0, g.rows)
	return next, nil
}

// Release returns a discarded generation to the pool, if any
func (e *Engine) Release(g *Grid) {
	e.pool.Put(g)
}
