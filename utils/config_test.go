package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-frames/model"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Width != 256 || c.Height != 256 || c.Density != 0.5 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -3 }, ErrInvalidDimensions},
		{"negative generations", func(c *Config) { c.Generations = -1 }, model.ErrNegativeGenerations},
		{"density above one", func(c *Config) { c.Density = 1.5 }, ErrInvalidDensity},
		{"negative density", func(c *Config) { c.Density = -0.1 }, ErrInvalidDensity},
		{"zero scale", func(c *Config) { c.Scale = 0 }, ErrInvalidScale},
		{"unknown format", func(c *Config) { c.Format = "jpeg" }, ErrUnknownFormat},
		{"zero generations", func(c *Config) { c.Generations = 0 }, nil},
		{"gif format", func(c *Config) { c.Format = "gif" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			if err := c.Validate(); errors.Cause(err) != tt.want {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 32, "generations": 3, "format": "bmp"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 32 || c.Generations != 3 || c.Format != "bmp" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Height != 256 || c.Density != 0.5 {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"width":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestBindParsesFlags(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)

	if err := fs.Parse([]string{"-width", "10", "-seed", "99", "-label", "-format", "tiff"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Width != 10 || c.Seed != 99 || !c.Label || c.Format != "tiff" {
		t.Fatalf("flags not applied: %+v", c)
	}
}
