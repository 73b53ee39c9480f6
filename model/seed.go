package model

import (
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

// Seeder populates the initial state of a freshly constructed grid
type Seeder interface {
	Seed(g *Grid)
}

// RandomSeeder picks dead or alive uniformly and independently for every cell
type RandomSeeder struct {
	rng *rand.Rand
}

// NewRandomSeeder returns a deterministic seeder for a non-zero seed, and a
// time-seeded one otherwise
func NewRandomSeeder(seed uint64) *RandomSeeder {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSeeder{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (s *RandomSeeder) Seed(g *Grid) {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = rules.CellState(s.rng.IntN(2))
		}
	}
}

// PatternSeeder stamps a fixed pattern with its top-left corner at (Row, Col).
// Cells of the pattern that fall outside the grid are dropped.
type PatternSeeder struct {
	Pattern  *Grid
	Row, Col int
}

func (s PatternSeeder) Seed(g *Grid) {
	for r := range s.Pattern.rows {
		for c := range s.Pattern.cols {
			_ = g.Set(s.Row+r, s.Col+c, s.Pattern.cells[r][c])
		}
	}
}
