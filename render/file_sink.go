package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-frames/model"
)

// FileSinkOptions configures where a FileSink writes frames. Empty paths are skipped.
type FileSinkOptions struct {
	Format string
	// FirstPath receives generation 0 only
	FirstPath string
	// CurrentPath is rewritten with every generation and ends holding the last one
	CurrentPath string
	// FrameDir receives one gen-NNNNN file per generation
	FrameDir string
}

// FileSink persists generations as image files
type FileSink struct {
	raster *Rasterizer
	opts   FileSinkOptions
}

// NewFileSink validates opts and creates FrameDir if needed
func NewFileSink(raster *Rasterizer, opts FileSinkOptions) (*FileSink, error) {
	if !IsFormat(opts.Format) {
		return nil, errors.Errorf("[NewFileSink] unknown image format %q", opts.Format)
	}

	if opts.FrameDir != "" {
		if err := os.MkdirAll(opts.FrameDir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "[NewFileSink] failed to create frame dir: %s", opts.FrameDir)
		}
	}

	return &FileSink{raster: raster, opts: opts}, nil
}

// FramePath returns the per-generation file name inside FrameDir
func (s *FileSink) FramePath(generation int) string {
	return filepath.Join(s.opts.FrameDir, fmt.Sprintf("gen-%05d.%s", generation, Extension(s.opts.Format)))
}

// Emit renders g once and writes it to every configured destination
func (s *FileSink) Emit(generation int, g *model.Grid) error {
	var img image.Image
	if s.opts.Format == "gif" {
		img = s.raster.RasterizePaletted(generation, g)
	} else {
		img = s.raster.Rasterize(generation, g)
	}

	if generation == 0 && s.opts.FirstPath != "" {
		if err := s.write(s.opts.FirstPath, img); err != nil {
			return err
		}
	}
	if s.opts.CurrentPath != "" {
		if err := s.write(s.opts.CurrentPath, img); err != nil {
			return err
		}
	}
	if s.opts.FrameDir != "" {
		if err := s.write(s.FramePath(generation), img); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileSink) write(path string, img image.Image) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return Encode(w, img, s.opts.Format)
	})
}
