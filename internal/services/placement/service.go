package placement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/seabattle/internal/dependencies/random"
	"github.com/mcoot/seabattle/internal/model"
)

// MaxAttempts caps ship placement tries across a whole fleet on one board
const MaxAttempts = 2000

// Service builds boards with randomly placed fleets
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new placement Service
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "placement-service")),
	}
}

// ValidateBoardSize checks the size is one the fleet and renderer support
func ValidateBoardSize(size int) error {
	if size < model.MinBoardSize || size > model.MaxBoardSize {
		return fmt.Errorf("%w: %d (must be %d-%d)", model.ErrInvalidBoardSize, size, model.MinBoardSize, model.MaxBoardSize)
	}
	return nil
}

// PlaceFleet makes a single attempt at placing the standard fleet on a fresh board.
// Returns ErrPlacementExhausted if the attempt budget runs out; the caller
// should discard the board and start again rather than reuse a partial fleet.
func (s *Service) PlaceFleet(size int) (*model.Board, error) {
	board := model.NewBoard(size)
	attempts := 0

	for _, length := range model.FleetLengths {
		for {
			attempts++
			if attempts > MaxAttempts {
				return nil, fmt.Errorf("%w: %d ships placed", model.ErrPlacementExhausted, len(board.Ships()))
			}

			err := board.PlaceShip(s.randomShip(size, length))
			if err == nil {
				break
			}
			if !errors.Is(err, model.ErrOverlap) && !errors.Is(err, model.ErrOutOfBounds) {
				return nil, err
			}
		}
	}

	board.Reset()
	return board, nil
}

// GenerateBoard retries PlaceFleet on fresh boards until one succeeds
func (s *Service) GenerateBoard(ctx context.Context, size int) (*model.Board, error) {
	if err := ValidateBoardSize(size); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		board, err := s.PlaceFleet(size)
		if err == nil {
			s.logger.Debug("fleet placed",
				slog.Int("board_size", size),
				slog.Int("board_attempts", attempt),
			)
			return board, nil
		}
		if !errors.Is(err, model.ErrPlacementExhausted) {
			return nil, err
		}

		s.logger.Debug("discarding board",
			slog.Int("board_attempt", attempt),
			slog.String("reason", err.Error()),
		)
	}
}

// randomShip draws a candidate ship. The bow range deliberately includes size
// itself; those candidates are rejected by the bounds check in PlaceShip.
func (s *Service) randomShip(size, length int) *model.Ship {
	bow := model.Coordinate{
		Row: s.random.Intn(size + 1),
		Col: s.random.Intn(size + 1),
	}
	orientation := model.Vertical
	if s.random.Intn(2) == 1 {
		orientation = model.Horizontal
	}
	return model.NewShip(bow, length, orientation)
}
