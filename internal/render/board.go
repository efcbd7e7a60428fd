package render

import (
	"fmt"
	"strings"

	"github.com/mcoot/seabattle/internal/model"
)

const (
	glyphEmpty     = "□"
	glyphShip      = "■"
	glyphMiss      = "•"
	glyphHit       = "●"
	glyphDestroyed = "X"
)

// Glyph returns the styled symbol for a cell. Ships on a hidden board are drawn as water.
func (p Palette) Glyph(state model.CellState, hidden bool) string {
	switch state {
	case model.CellShip:
		if hidden {
			return p.Stylize(glyphEmpty, StyleMuted)
		}
		return p.Stylize(glyphShip, StyleShip)
	case model.CellMiss:
		return p.Stylize(glyphMiss, StyleMiss)
	case model.CellHit:
		return p.Stylize(glyphHit, StyleHit)
	case model.CellDestroyed:
		return p.Stylize(glyphDestroyed, StyleDestroyed)
	default:
		return p.Stylize(glyphEmpty, StyleMuted)
	}
}

// BoardLines renders a board as a header line followed by one line per row.
// Row and column labels are 1-indexed.
func (p Palette) BoardLines(board *model.Board) []string {
	size := board.Size()
	lines := make([]string, 0, size+1)

	var header strings.Builder
	header.WriteString("  |")
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&header, " %d |", col)
	}
	lines = append(lines, header.String())

	grid := board.Grid()
	for row := range grid {
		var line strings.Builder
		fmt.Fprintf(&line, "%d |", row+1)
		for _, state := range grid[row] {
			fmt.Fprintf(&line, " %s |", p.Glyph(state, board.Hidden()))
		}
		lines = append(lines, line.String())
	}
	return lines
}
