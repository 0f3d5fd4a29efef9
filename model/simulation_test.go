package model

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

type recordingSink struct {
	generations []int
	hashes      []string
	grids       []*Grid
	failAt      int
}

func (r *recordingSink) Emit(generation int, g *Grid) error {
	if r.failAt > 0 && generation == r.failAt {
		return errors.New("disk full")
	}
	r.generations = append(r.generations, generation)
	r.hashes = append(r.hashes, g.GetGridHash())
	r.grids = append(r.grids, g)
	return nil
}

func randomGrid(seed uint64) *Grid {
	g := NewGrid(24, 24)
	g.Randomize(rand.New(rand.NewPCG(seed, 0)), 0.5)
	return g
}

func TestRunEmitsEveryGenerationInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		sink := &recordingSink{}
		sim := NewSimulation(NewStepper(1), sink)

		if err := sim.Run(context.Background(), randomGrid(1), n); err != nil {
			t.Fatalf("Run(%d): %v", n, err)
		}
		if len(sink.generations) != n+1 {
			t.Fatalf("Run(%d) emitted %d frames, want %d", n, len(sink.generations), n+1)
		}
		for i, gen := range sink.generations {
			if gen != i {
				t.Fatalf("frame %d carried generation %d", i, gen)
			}
		}
		if gen, _ := sim.Current(); gen != n {
			t.Fatalf("Current() generation = %d, want %d", gen, n)
		}
	}
}

func TestRunEmitsInitialGridUnchanged(t *testing.T) {
	initial := randomGrid(2)
	want := initial.GetGridHash()

	sink := &recordingSink{}
	if err := NewSimulation(NewStepper(1), sink).Run(context.Background(), initial, 3); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sink.hashes[0] != want || initial.GetGridHash() != want {
		t.Fatal("generation 0 was modified by the run")
	}
	for i := 1; i < len(sink.grids); i++ {
		if sink.grids[i] == sink.grids[i-1] {
			t.Fatalf("generation %d aliases generation %d", i, i-1)
		}
	}
}

func TestRunMatchesManualStepping(t *testing.T) {
	initial := randomGrid(3)
	sink := &recordingSink{}
	if err := NewSimulation(NewStepper(4), sink).Run(context.Background(), initial, 4); err != nil {
		t.Fatalf("Run: %v", err)
	}

	s := NewStepper(1)
	g := initial
	for gen := 1; gen <= 4; gen++ {
		g = s.Step(g)
		if sink.hashes[gen] != g.GetGridHash() {
			t.Fatalf("generation %d differs from manual stepping", gen)
		}
	}
}

func TestRunRejectsNegativeGenerations(t *testing.T) {
	sink := &recordingSink{}
	err := NewSimulation(NewStepper(1), sink).Run(context.Background(), randomGrid(4), -1)
	if errors.Cause(err) != ErrNegativeGenerations {
		t.Fatalf("Run(-1) error = %v, want ErrNegativeGenerations", err)
	}
	if len(sink.generations) != 0 {
		t.Fatal("frames were emitted for a rejected run")
	}
}

func TestRunStopsOnSinkError(t *testing.T) {
	sink := &recordingSink{failAt: 2}
	err := NewSimulation(NewStepper(1), sink).Run(context.Background(), randomGrid(5), 10)
	if err == nil {
		t.Fatal("expected sink error")
	}
	if len(sink.generations) != 2 {
		t.Fatalf("emitted %d frames before the failure, want 2", len(sink.generations))
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var seen []int
	sink := FrameSinkFunc(func(generation int, _ *Grid) error {
		seen = append(seen, generation)
		if generation == 1 {
			cancel()
		}
		return nil
	})

	err := NewSimulation(NewStepper(1), sink).Run(ctx, randomGrid(6), 10)
	if errors.Cause(err) != context.Canceled {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if len(seen) != 2 {
		t.Fatalf("emitted %v after cancellation at generation 1", seen)
	}
}
