package model

import "fmt"

// CellState is what a single board cell currently shows
type CellState int

const (
	CellEmpty CellState = iota
	CellShip
	CellMiss
	CellHit
	CellDestroyed
)

// String returns a lowercase label for the cell state
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	case CellDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// ShotResult is the outcome of a resolved shot
type ShotResult int

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotDestroyed
)

// String returns a lowercase label for the shot result
func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// GrantsRepeat returns true if the shooter moves again after this result
func (r ShotResult) GrantsRepeat() bool {
	return r == ShotHit || r == ShotDestroyed
}

// Board is one side's grid together with the fleet placed on it.
//
// A coordinate is busy once it has been shot at or reserved by the exclusion
// buffer around a ship. Placement and shooting both reject busy coordinates,
// so Reset must be called between fleet placement and the first shot.
type Board struct {
	size      int
	hidden    bool
	cells     [][]CellState // Row-major: cells[row][col]
	ships     []*Ship
	busy      map[Coordinate]struct{}
	destroyed int
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return &Board{
		size:  size,
		cells: cells,
		busy:  make(map[Coordinate]struct{}),
	}
}

// Size returns the grid dimension
func (b *Board) Size() int {
	return b.size
}

// Hidden returns true if ships should not be shown to the viewer
func (b *Board) Hidden() bool {
	return b.hidden
}

// SetHidden controls whether rendering conceals intact ship cells
func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

// IsOutOfBounds returns true if the coordinate lies outside the grid
func (b *Board) IsOutOfBounds(c Coordinate) bool {
	return !(c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size)
}

// Cell returns the state at the given coordinate, or CellEmpty if out of bounds
func (b *Board) Cell(c Coordinate) CellState {
	if b.IsOutOfBounds(c) {
		return CellEmpty
	}
	return b.cells[c.Row][c.Col]
}

// Grid returns a copy of all cell states
func (b *Board) Grid() [][]CellState {
	result := make([][]CellState, b.size)
	for row := range b.cells {
		result[row] = make([]CellState, b.size)
		copy(result[row], b.cells[row])
	}
	return result
}

// Ships returns the placed ships in placement order
func (b *Board) Ships() []*Ship {
	result := make([]*Ship, len(b.ships))
	copy(result, b.ships)
	return result
}

// IsBusy returns true if the coordinate has been targeted or reserved
func (b *Board) IsBusy(c Coordinate) bool {
	_, ok := b.busy[c]
	return ok
}

// BusyCount returns the number of busy coordinates
func (b *Board) BusyCount() int {
	return len(b.busy)
}

// DestroyedCount returns how many ships have been sunk
func (b *Board) DestroyedCount() int {
	return b.destroyed
}

// FleetDestroyed returns true when every ship of the standard fleet is sunk
func (b *Board) FleetDestroyed() bool {
	return b.destroyed >= FleetShipCount()
}

// PlaceShip adds a ship to the board.
// The board is left untouched if any segment is out of bounds or busy.
func (b *Board) PlaceShip(ship *Ship) error {
	coords := ship.Coordinates()
	for _, c := range coords {
		if b.IsOutOfBounds(c) {
			return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
		}
		if b.IsBusy(c) {
			return fmt.Errorf("%w: %s", ErrOverlap, c)
		}
	}

	for _, c := range coords {
		b.cells[c.Row][c.Col] = CellShip
		b.busy[c] = struct{}{}
	}
	b.ships = append(b.ships, ship)
	b.contour(ship, false)
	return nil
}

// Shoot resolves a shot at the given coordinate
func (b *Board) Shoot(c Coordinate) (ShotResult, error) {
	if b.IsOutOfBounds(c) {
		return ShotMiss, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if b.IsBusy(c) {
		return ShotMiss, fmt.Errorf("%w: %s", ErrAlreadyTargeted, c)
	}

	b.busy[c] = struct{}{}

	for _, ship := range b.ships {
		if !ship.IsHitBy(c) {
			continue
		}

		b.cells[c.Row][c.Col] = CellHit
		if !ship.takeHit() {
			return ShotHit, nil
		}

		b.destroyed++
		b.contour(ship, true)
		for _, seg := range ship.Coordinates() {
			b.cells[seg.Row][seg.Col] = CellDestroyed
		}
		return ShotDestroyed, nil
	}

	b.cells[c.Row][c.Col] = CellMiss
	return ShotMiss, nil
}

// Reset forgets every busy coordinate while keeping ships and cells.
// Called once after fleet placement so buffer reservations do not count as shots.
func (b *Board) Reset() {
	b.busy = make(map[Coordinate]struct{})
}

// contour reserves the one-cell margin around a ship.
// When reveal is set the newly reserved cells are also marked as misses,
// since nothing can occupy the water around a sunk ship.
func (b *Board) contour(ship *Ship, reveal bool) {
	for _, seg := range ship.Coordinates() {
		for _, c := range seg.Neighbours() {
			if b.IsOutOfBounds(c) || b.IsBusy(c) {
				continue
			}
			if reveal {
				b.cells[c.Row][c.Col] = CellMiss
			}
			b.busy[c] = struct{}{}
		}
	}
}
