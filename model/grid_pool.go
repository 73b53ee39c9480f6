package model

import "sync"

// GridPool recycles discarded generations so each step doesn't allocate
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the requested size from the pool.
// A nil pool allocates.
func (p *GridPool) Get(rows, cols int) *Grid {
	if p == nil {
		return newGrid(rows, cols)
	}
	g := p.pool.Get().(*Grid)
	g.reset(rows, cols)
	return g
}

// Put clears a grid and returns it to the pool. The caller must not use it
// afterwards.
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}
