package model

import "fmt"

// Coordinate identifies a cell on a board
type Coordinate struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// String renders the coordinate 0-indexed as (row, col)
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Offset returns the coordinate shifted by the given deltas
func (c Coordinate) Offset(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Neighbours returns the 3x3 block centred on c, including c itself.
// Coordinates may lie outside any board.
func (c Coordinate) Neighbours() []Coordinate {
	result := make([]Coordinate, 0, 9)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			result = append(result, c.Offset(dRow, dCol))
		}
	}
	return result
}
