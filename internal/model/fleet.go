package model

// Board size limits
const (
	DefaultBoardSize = 6
	MinBoardSize     = 6
	MaxBoardSize     = 9 // single-digit coordinate header
)

// FleetLengths are the ship lengths every side places, in placement order
var FleetLengths = []int{3, 2, 2, 1, 1, 1, 1}

// FleetShipCount returns the number of ships in a fleet
func FleetShipCount() int {
	return len(FleetLengths)
}

// FleetSegmentCount returns the total number of segments in a fleet
func FleetSegmentCount() int {
	total := 0
	for _, l := range FleetLengths {
		total += l
	}
	return total
}
