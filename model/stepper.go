package model

import (
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-frames/rules"
)

// Stepper computes generation N+1 from generation N
type Stepper struct {
	workers int
}

// NewStepper returns a Stepper that splits each generation across the given
// number of row bands. Values below 2 step sequentially.
func NewStepper(workers int) *Stepper {
	return &Stepper{workers: max(1, workers)}
}

// Workers returns the number of row bands used per generation
func (s *Stepper) Workers() int {
	return s.workers
}

// Step returns the next generation of current in a freshly allocated grid.
// current is only read.
func (s *Stepper) Step(current *Grid) *Grid {
	next := NewGrid(current.width, current.height)

	if s.workers == 1 || current.height == 1 {
		stepRows(current, next, 0, current.height)
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(s.workers, current.height)
		rowsPerWorker = (current.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, current.height)
		)
		if startRow >= current.height {
			break
		}

		// each band writes only its own rows of next
		eg.Go(func() error {
			stepRows(current, next, startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait()

	return next
}

func stepRows(current, next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < current.width; x++ {
			alive := current.cells[current.index(x, y)] == Alive
			if rules.ApplyConwayRules(current.CountNeighbors(x, y), alive) {
				next.cells[next.index(x, y)] = Alive
			}
		}
	}
}
