package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
)

// Grid represents one generation of the game board.
// Cells are stored row-major in a single buffer; there is no wraparound.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a new grid of dead cells with the specified dimensions
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Get returns the state of a cell, Dead for any position outside the grid
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.cells[g.index(x, y)]
}

// Set sets the state of a cell. Writing outside the grid is a programming
// error and panics.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("model: Set(%d, %d) outside %dx%d grid", x, y, g.width, g.height))
	}
	g.cells[g.index(x, y)] = c
}

// CountNeighbors counts living cells among the up to eight neighbors of (x, y)
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) == Alive {
				count++
			}
		}
	}
	return count
}

// Randomize sets every cell independently alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = CellOf(rng.Float64() < density)
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Cells returns a row-major copy of the cell values
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
