package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sheikhrachel/go-gol-frames/model"
	"github.com/sheikhrachel/go-gol-frames/utils"
)

// statusSink prints one status line per generation and logs when the run
// settles into a still life or cycle
type statusSink struct {
	w       io.Writer
	logger  *slog.Logger
	stats   *utils.Stats
	history *utils.History

	lastFrameTime time.Time
	stagnantSince int
}

func newStatusSink(w io.Writer, logger *slog.Logger, window int) *statusSink {
	return &statusSink{
		w:             w,
		logger:        logger,
		stats:         utils.NewStats(),
		history:       utils.NewHistory(window),
		lastFrameTime: time.Now(),
		stagnantSince: -1,
	}
}

// Emit updates the game state and displays the current status
func (s *statusSink) Emit(generation int, g *model.Grid) error {
	livingCells := g.CountLivingCells()

	// Update performance stats
	now := time.Now()
	s.stats.Update(generation, livingCells, g.GetWidth()*g.GetHeight(), now.Sub(s.lastFrameTime))
	s.lastFrameTime = now

	period := s.history.Observe(g.GetGridHash())

	status := "Active"
	switch {
	case livingCells == 0:
		status = "Extinct"
	case period == 1:
		status = "Still"
	case period > 1:
		status = fmt.Sprintf("Cycle (%d)", period)
	}

	if period > 0 && s.stagnantSince < 0 {
		s.stagnantSince = generation
		s.logger.Info("simulation stagnated", "generation", generation, "period", period, "living", livingCells)
	} else if period == 0 {
		s.stagnantSince = -1
	}

	_, err := fmt.Fprintf(s.w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, s.stats.Density, status)
	return err
}

// summary logs the final stats of the run
func (s *statusSink) summary() {
	s.logger.Info("simulation finished",
		"generations", s.stats.TotalGenerations,
		"runtime", s.stats.Runtime().Round(time.Millisecond),
		"gen_per_sec", fmt.Sprintf("%.1f", s.stats.GenerationsPerSecond),
		"avg_population", fmt.Sprintf("%.1f", s.stats.AveragePopulation),
	)
}
