package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sheikhrachel/go-gol-frames/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalSink prints each generation with block characters
type TerminalSink struct {
	w     io.Writer
	clear bool
}

// NewTerminalSink writes to w, clearing the screen before each frame when clear is set
func NewTerminalSink(w io.Writer, clear bool) *TerminalSink {
	return &TerminalSink{w: w, clear: clear}
}

// Emit renders the grid to the terminal
func (s *TerminalSink) Emit(generation int, g *model.Grid) error {
	bw := bufio.NewWriter(s.w)
	if s.clear {
		bw.WriteString(ansiClear)
	}

	fmt.Fprintf(bw, "Gen: %d | Living: %d\n", generation, g.CountLivingCells())
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			if g.Get(x, y).IsAlive() {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
