package model

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNegativeGenerations is returned when a run is asked for fewer than zero generations
var ErrNegativeGenerations = errors.New("generation count must not be negative")

// FrameSink consumes each finished generation, typically persisting it as an image
type FrameSink interface {
	Emit(generation int, g *Grid) error
}

// FrameSinkFunc adapts a function to FrameSink
type FrameSinkFunc func(generation int, g *Grid) error

// Emit calls f(generation, g)
func (f FrameSinkFunc) Emit(generation int, g *Grid) error {
	return f(generation, g)
}

// Simulation drives the generation loop. It holds only the current
// generation; each step replaces it with the stepper's result.
type Simulation struct {
	stepper *Stepper
	sink    FrameSink

	current    *Grid
	generation int
}

// NewSimulation creates a driver that steps with stepper and emits to sink
func NewSimulation(stepper *Stepper, sink FrameSink) *Simulation {
	return &Simulation{stepper: stepper, sink: sink}
}

// Current returns the generation index and grid last emitted
func (s *Simulation) Current() (int, *Grid) {
	return s.generation, s.current
}

// Run emits initial as generation 0 and then the next generations in
// order, for generations+1 emissions in total. The context is checked
// between generations; a cancelled run returns the context error.
func (s *Simulation) Run(ctx context.Context, initial *Grid, generations int) error {
	if generations < 0 {
		return errors.Wrapf(ErrNegativeGenerations, "[Run] got %d", generations)
	}

	s.current = initial
	s.generation = 0
	if err := s.sink.Emit(0, s.current); err != nil {
		return errors.Wrap(err, "[Run] failed to emit generation 0")
	}

	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[Run] stopped before generation %d", gen)
		}

		s.current = s.stepper.Step(s.current)
		s.generation = gen

		if err := s.sink.Emit(gen, s.current); err != nil {
			return errors.Wrapf(err, "[Run] failed to emit generation %d", gen)
		}
	}

	return nil
}
