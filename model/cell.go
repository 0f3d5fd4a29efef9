package model

// Cell is the liveness of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// CellOf converts a boolean liveness value into a Cell
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
