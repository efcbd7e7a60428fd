package model

// Orientation is the axis a ship extends along from its bow
type Orientation int

const (
	Horizontal Orientation = iota // along the column axis
	Vertical                      // along the row axis
)

// String returns a lowercase label for the orientation
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Ship is a straight line of segments anchored at its bow
type Ship struct {
	Bow         Coordinate
	Length      int
	Orientation Orientation

	remaining int
}

// NewShip creates an undamaged ship
func NewShip(bow Coordinate, length int, orientation Orientation) *Ship {
	return &Ship{
		Bow:         bow,
		Length:      length,
		Orientation: orientation,
		remaining:   length,
	}
}

// Coordinates returns the occupied cells in order from the bow
func (s *Ship) Coordinates() []Coordinate {
	coords := make([]Coordinate, s.Length)
	for i := 0; i < s.Length; i++ {
		if s.Orientation == Vertical {
			coords[i] = s.Bow.Offset(i, 0)
		} else {
			coords[i] = s.Bow.Offset(0, i)
		}
	}
	return coords
}

// IsHitBy returns true if the coordinate is one of the ship's segments
func (s *Ship) IsHitBy(c Coordinate) bool {
	for _, seg := range s.Coordinates() {
		if seg == c {
			return true
		}
	}
	return false
}

// Remaining returns the number of segments not yet hit
func (s *Ship) Remaining() int {
	return s.remaining
}

// IsDestroyed returns true once every segment has been hit
func (s *Ship) IsDestroyed() bool {
	return s.remaining == 0
}

// takeHit records a hit and reports whether the ship is now destroyed
func (s *Ship) takeHit() bool {
	if s.remaining > 0 {
		s.remaining--
	}
	return s.remaining == 0
}
