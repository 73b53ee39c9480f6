package rules

// CellState is the state of a single cell. The numeric value is what gets
// rendered, so both states always print at the same width.
type CellState uint8

const (
	Dead  CellState = 0
	Alive CellState = 1
)

func (s CellState) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

/*
TransitionRule applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly 3 living neighbors is born; a living cell with more
than 1 and fewer than 4 living neighbors survives; every other cell is dead.
*/
func TransitionRule(current CellState, aliveNeighbors int) CellState {
	if current == Dead && aliveNeighbors == 3 {
		return Alive
	}
	if current == Alive && aliveNeighbors > 1 && aliveNeighbors < 4 {
		return Alive
	}
	return Dead
}
