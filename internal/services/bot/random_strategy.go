package bot

import (
	"github.com/mcoot/seabattle/internal/dependencies/random"
	"github.com/mcoot/seabattle/internal/model"
)

// RandomStrategy shoots at uniformly random cells it has not tried yet
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseTarget draws coordinates until one is not busy on the opponent's board.
// Cells revealed around a sunk ship are busy too, so they are never drawn.
// Returns the origin if every cell is busy.
func (s *RandomStrategy) ChooseTarget(opponent *model.Board) model.Coordinate {
	size := opponent.Size()
	if opponent.BusyCount() >= size*size {
		return model.Coordinate{}
	}

	target := s.draw(size)
	for opponent.IsBusy(target) {
		target = s.draw(size)
	}
	return target
}

func (s *RandomStrategy) draw(size int) model.Coordinate {
	return model.Coordinate{Row: s.random.Intn(size), Col: s.random.Intn(size)}
}
