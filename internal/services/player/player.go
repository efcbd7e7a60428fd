package player

import (
	"context"

	"github.com/mcoot/seabattle/internal/model"
)

// Player is one side of a match
type Player interface {
	// Side identifies which participant this player is
	Side() model.Side
	// Board returns the player's own board
	Board() *model.Board
	// Move keeps choosing targets until one shot resolves against the opponent.
	// Out-of-bounds and repeated targets are reported and retried; any other
	// error aborts the move.
	Move(ctx context.Context) (model.ShotResult, error)
}

// InputSource supplies targets chosen by a person, already 0-indexed
type InputSource interface {
	NextTarget(ctx context.Context) (model.Coordinate, error)
}

// Notifier receives events raised while a move is played
type Notifier interface {
	Notify(event model.Event)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(event model.Event)

// Notify calls f(event)
func (f NotifierFunc) Notify(event model.Event) {
	f(event)
}

// NopNotifier discards every event
var NopNotifier Notifier = NotifierFunc(func(model.Event) {})

// seat holds what both player kinds share
type seat struct {
	side     model.Side
	own      *model.Board
	opponent *model.Board
	notifier Notifier
}

func newSeat(side model.Side, own, opponent *model.Board, notifier Notifier) seat {
	if notifier == nil {
		notifier = NopNotifier
	}
	return seat{side: side, own: own, opponent: opponent, notifier: notifier}
}

func (s *seat) Side() model.Side {
	return s.side
}

func (s *seat) Board() *model.Board {
	return s.own
}

// play runs the shared ask-then-shoot loop
func (s *seat) play(ctx context.Context, ask func(context.Context) (model.Coordinate, error), announce bool) (model.ShotResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.ShotMiss, err
		}

		target, err := ask(ctx)
		if err != nil {
			return model.ShotMiss, err
		}

		if announce {
			s.notify(model.EventTargetChosen, model.TargetChosenPayload{Target: target})
		}

		result, err := s.opponent.Shoot(target)
		if err != nil {
			if model.IsRecoverableShotError(err) {
				s.notify(model.EventShotRejected, model.ShotRejectedPayload{Target: target, Err: err})
				continue
			}
			return model.ShotMiss, err
		}

		s.notify(model.EventShotResolved, model.ShotResolvedPayload{Target: target, Result: result})
		return result, nil
	}
}

func (s *seat) notify(eventType model.EventType, payload any) {
	s.notifier.Notify(model.Event{
		Type:    eventType,
		Side:    s.side,
		Payload: payload,
	})
}

// Broadcast returns a Notifier that forwards every event to each non-nil notifier in order
func Broadcast(notifiers ...Notifier) Notifier {
	targets := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			targets = append(targets, n)
		}
	}
	return NotifierFunc(func(event model.Event) {
		for _, n := range targets {
			n.Notify(event)
		}
	})
}
