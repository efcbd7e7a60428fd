package player

import (
	"context"

	"github.com/mcoot/seabattle/internal/model"
)

// Human takes targets from an InputSource
type Human struct {
	seat
	input InputSource
}

var _ Player = (*Human)(nil)

// NewHuman creates a player that asks input for every target
func NewHuman(side model.Side, own, opponent *model.Board, input InputSource, notifier Notifier) *Human {
	return &Human{
		seat:  newSeat(side, own, opponent, notifier),
		input: input,
	}
}

// Move asks for targets until one resolves
func (h *Human) Move(ctx context.Context) (model.ShotResult, error) {
	return h.play(ctx, h.input.NextTarget, false)
}
