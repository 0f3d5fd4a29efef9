package rules

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

A live cell survives with two or three live neighbors, a dead cell is born with
exactly three, and every other combination yields a dead cell.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
