package model

// History keeps hashes of recent generations to spot still lifes and short
// oscillators
type History struct {
	size   int
	hashes []string
}

// NewHistory remembers at most size generations
func NewHistory(size int) *History {
	return &History{size: size}
}

// Record adds g to the history, dropping the oldest entry when full
func (h *History) Record(g *Grid) {
	if h.size <= 0 {
		return
	}
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Period returns the smallest p such that g matches the generation recorded p
// steps ago, or 0 when g matches nothing in the history. 1 means a still life.
func (h *History) Period(g *Grid) int {
	current := g.Hash()
	for p := 1; p <= len(h.hashes); p++ {
		if h.hashes[len(h.hashes)-p] == current {
			return p
		}
	}
	return 0
}
