package render

import (
	"image"
	"image/gif"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-frames/model"
)

// GIFSink collects every generation and writes one animated GIF on Close
type GIFSink struct {
	raster *Rasterizer
	path   string
	delay  int

	anim gif.GIF
}

// NewGIFSink writes to path with delay hundredths of a second between frames
func NewGIFSink(raster *Rasterizer, path string, delay int) *GIFSink {
	return &GIFSink{raster: raster, path: path, delay: delay}
}

// Emit appends a frame
func (s *GIFSink) Emit(generation int, g *model.Grid) error {
	s.anim.Image = append(s.anim.Image, s.raster.RasterizePaletted(generation, g))
	s.anim.Delay = append(s.anim.Delay, s.delay)
	return nil
}

// Frames returns the frames collected so far
func (s *GIFSink) Frames() []*image.Paletted {
	return s.anim.Image
}

// Close encodes the animation. Nothing is written if no frame was emitted.
func (s *GIFSink) Close() error {
	if len(s.anim.Image) == 0 {
		return nil
	}

	return writeFileAtomic(s.path, func(w io.Writer) error {
		return errors.Wrapf(gif.EncodeAll(w, &s.anim), "[GIFSink] failed to encode: %s", s.path)
	})
}
