package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-frames/model"
	"github.com/sheikhrachel/go-gol-frames/render"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrInvalidDensity    = errors.New("density must be within [0, 1]")
	ErrInvalidScale      = errors.New("scale must be positive")
	ErrUnknownFormat     = errors.New("unknown image format")
)

// Config holds the configuration for a run
type Config struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Generations      int     `json:"generations"`
	Density          float64 `json:"density"`
	Seed             int64   `json:"seed"`
	Workers          int     `json:"workers"`
	FirstOutput      string  `json:"first_output"`
	CurrentOutput    string  `json:"current_output"`
	FrameDir         string  `json:"frame_dir"`
	AnimationOutput  string  `json:"animation_output"`
	Format           string  `json:"format"`
	Scale            int     `json:"scale"`
	Label            bool    `json:"label"`
	AliveColor       string  `json:"alive_color"`
	DeadColor        string  `json:"dead_color"`
	Terminal         bool    `json:"terminal"`
	StagnationWindow int     `json:"stagnation_window"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            256,
		Height:           256,
		Generations:      10,
		Density:          0.5,
		Seed:             0, // 0 means seed from the clock
		Workers:          1,
		FirstOutput:      "first.png",
		CurrentOutput:    "current.png",
		Format:           "png",
		Scale:            1,
		AliveColor:       "#8bd450",
		DeadColor:        "#965fd4",
		StagnationWindow: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations that cannot start a run
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Validate] got %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Wrapf(model.ErrNegativeGenerations, "[Validate] got %d", c.Generations)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "[Validate] got %v", c.Density)
	}
	if c.Scale <= 0 {
		return errors.Wrapf(ErrInvalidScale, "[Validate] got %d", c.Scale)
	}
	if !render.IsFormat(c.Format) {
		return errors.Wrapf(ErrUnknownFormat, "[Validate] got %q, want one of %s", c.Format, strings.Join(render.Formats, ", "))
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to simulate after the initial grid")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands stepped in parallel")
	fs.StringVar(&c.FirstOutput, "first", c.FirstOutput, "image file for generation 0")
	fs.StringVar(&c.CurrentOutput, "current", c.CurrentOutput, "image file rewritten with every generation")
	fs.StringVar(&c.FrameDir, "frames", c.FrameDir, "directory receiving one image per generation")
	fs.StringVar(&c.AnimationOutput, "gif", c.AnimationOutput, "animated GIF of the whole run")
	fs.StringVar(&c.Format, "format", c.Format, "image format: "+strings.Join(render.Formats, ", ")+"; defaults to the extension of a positional <first_output>")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.BoolVar(&c.Label, "label", c.Label, "draw the generation number on each frame")
	fs.StringVar(&c.AliveColor, "alive-color", c.AliveColor, "hex color of living cells")
	fs.StringVar(&c.DeadColor, "dead-color", c.DeadColor, "hex color of dead cells")
	fs.BoolVar(&c.Terminal, "terminal", c.Terminal, "also print each generation to stdout")
	fs.IntVar(&c.StagnationWindow, "stagnation-window", c.StagnationWindow, "recent generations compared for stagnation, 0 disables, 1 detects only still lifes")
}
