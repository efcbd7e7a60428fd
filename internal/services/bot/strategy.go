package bot

import (
	"fmt"

	"github.com/mcoot/seabattle/internal/dependencies/random"
	"github.com/mcoot/seabattle/internal/model"
)

// Strategy names accepted by Lookup
const (
	StrategyRandom = "random"
)

// Strategy defines how the automated player picks where to shoot
type Strategy interface {
	// ChooseTarget selects a coordinate on the opponent's board
	ChooseTarget(opponent *model.Board) model.Coordinate
}

// Strategies returns the valid strategy names
func Strategies() []string {
	return []string{StrategyRandom}
}

// Lookup builds the named strategy. An empty name selects the random strategy.
func Lookup(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case "", StrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy: %s", name)
	}
}
