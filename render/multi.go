package render

import (
	"io"

	"github.com/sheikhrachel/go-gol-frames/model"
)

// MultiSink fans each generation out to several sinks in order, stopping
// at the first error
type MultiSink []model.FrameSink

// Emit forwards to every sink
func (m MultiSink) Emit(generation int, g *model.Grid) error {
	for _, s := range m {
		if err := s.Emit(generation, g); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink that implements io.Closer and returns the first error
func (m MultiSink) Close() error {
	var first error
	for _, s := range m {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
