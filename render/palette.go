package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Palette maps cell states to colors
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Label color.RGBA
}

// DefaultPalette draws living cells green on a purple background
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 139, G: 212, B: 80, A: 255},
		Dead:  color.RGBA{R: 150, G: 95, B: 212, A: 255},
		Label: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// NewPalette builds a palette from hex color strings such as "#8bd450"
func NewPalette(alive, dead string) (Palette, error) {
	p := DefaultPalette()

	var err error
	if p.Alive, err = ParseHexColor(alive); err != nil {
		return p, errors.Wrap(err, "[NewPalette] alive color")
	}
	if p.Dead, err = ParseHexColor(dead); err != nil {
		return p, errors.Wrap(err, "[NewPalette] dead color")
	}
	if p.Alive == p.Dead {
		return p, errors.Errorf("[NewPalette] alive and dead colors are both %s", alive)
	}
	return p, nil
}

// ParseHexColor parses "#rrggbb", "rrggbb" or "#rgb" into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("[ParseHexColor] invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "[ParseHexColor] invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
