package model

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a small rectangle of cells that can be stamped onto a grid
type Pattern struct {
	Name  string
	Width int
	Rows  [][]Cell
}

var (
	// Block is the 2x2 still life
	Block = MustParsePattern("block", "OO\nOO")
	// Blinker is the period 2 horizontal oscillator
	Blinker = MustParsePattern("blinker", "OOO")
	// Glider moves one cell diagonally every four generations
	Glider = MustParsePattern("glider", ".O.\n..O\nOOO")
)

// ParsePattern reads a plaintext pattern: one row per line, 'O' or '*' for
// alive, '.' for dead. Lines starting with '!' are comments.
func ParsePattern(name, text string) (Pattern, error) {
	p := Pattern{Name: name}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}

		row := make([]Cell, 0, len(line))
		for i, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				row = append(row, Alive)
			case '.':
				row = append(row, Dead)
			default:
				return Pattern{}, errors.Errorf("[ParsePattern] %s: unexpected %q in row %d column %d", name, ch, len(p.Rows), i)
			}
		}
		p.Rows = append(p.Rows, row)
		p.Width = max(p.Width, len(row))
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, errors.Wrapf(err, "[ParsePattern] failed to read pattern: %s", name)
	}
	if len(p.Rows) == 0 || p.Width == 0 {
		return Pattern{}, errors.Errorf("[ParsePattern] %s: empty pattern", name)
	}

	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error
func MustParsePattern(name, text string) Pattern {
	p, err := ParsePattern(name, text)
	if err != nil {
		panic(err)
	}
	return p
}

// Height returns the number of rows in the pattern
func (p Pattern) Height() int {
	return len(p.Rows)
}

// Stamp writes the pattern onto the grid with its top-left corner at
// (startX, startY). Cells falling outside the grid are dropped.
func (g *Grid) Stamp(p Pattern, startX, startY int) {
	for y, row := range p.Rows {
		for x, cell := range row {
			if g.InBounds(startX+x, startY+y) {
				g.Set(startX+x, startY+y, cell)
			}
		}
	}
}
