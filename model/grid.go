package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a non-positive size
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrDimensionMismatch is returned when two grids that must share a size don't
	ErrDimensionMismatch = errors.New("grid dimensions do not match")
)

// Grid represents the game board. Its dimensions are fixed at construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]rules.CellState
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return newGrid(rows, cols), nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]rules.CellState, rows)
	for i := range cells {
		cells[i] = make([]rules.CellState, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// ParseGrid builds a grid from equal-length lines. '1', '#' and 'O' are alive,
// '0', '.' and ' ' are dead.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[ParseGrid] no rows")
	}
	g, err := NewGrid(len(lines), len(lines[0]))
	if err != nil {
		return nil, errors.Wrap(err, "[ParseGrid]")
	}
	for row, line := range lines {
		if len(line) != g.cols {
			return nil, errors.Wrapf(ErrDimensionMismatch, "[ParseGrid] row %d has %d columns, want %d", row, len(line), g.cols)
		}
		for col, ch := range []byte(line) {
			switch ch {
			case '1', '#', 'O':
				g.cells[row][col] = rules.Alive
			case '0', '.', ' ':
			default:
				return nil, errors.Errorf("[ParseGrid] unexpected character %q at (%d,%d)", ch, row, col)
			}
		}
	}
	return g, nil
}

// Dimensions returns the number of rows and columns
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (rules.CellState, error) {
	if !g.inBounds(row, col) {
		return rules.Dead, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) outside %dx%d", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set overwrites the state of a cell
func (g *Grid) Set(row, col int, state rules.CellState) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) outside %dx%d", row, col, g.rows, g.cols)
	}
	g.cells[row][col] = state
	return nil
}

// reset resizes the grid if needed and kills every cell
func (g *Grid) reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	if len(g.cells) != rows {
		g.cells = make([][]rules.CellState, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]rules.CellState, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for row := range g.cells {
		clear(g.cells[row])
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.rows, g.cols)
	for row := range g.cells {
		copy(c.cells[row], g.cells[row])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := range g.cells {
		for col, state := range g.cells[row] {
			if other.cells[row][col] != state {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.cells {
		for _, state := range g.cells[row] {
			if state == rules.Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, g.cols)
	for row := range g.cells {
		for col, state := range g.cells[row] {
			buf[col] = byte(state)
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid one line per row, '1' for alive and '.' for dead
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for row := range g.cells {
		for _, state := range g.cells[row] {
			if state == rules.Alive {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
