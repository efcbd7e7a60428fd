package player

import (
	"context"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/bot"
)

// Automated picks targets with a bot strategy
type Automated struct {
	seat
	strategy bot.Strategy
}

var _ Player = (*Automated)(nil)

// NewAutomated creates a computer-controlled player
func NewAutomated(side model.Side, own, opponent *model.Board, strategy bot.Strategy, notifier Notifier) *Automated {
	return &Automated{
		seat:     newSeat(side, own, opponent, notifier),
		strategy: strategy,
	}
}

// Move announces and fires at the strategy's choice
func (a *Automated) Move(ctx context.Context) (model.ShotResult, error) {
	return a.play(ctx, a.ask, true)
}

func (a *Automated) ask(ctx context.Context) (model.Coordinate, error) {
	size := a.opponent.Size()
	if a.opponent.BusyCount() >= size*size {
		return model.Coordinate{}, model.ErrNoTargetsLeft
	}
	return a.strategy.ChooseTarget(a.opponent), nil
}
