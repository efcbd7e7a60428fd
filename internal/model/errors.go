package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrOutOfBounds      = errors.New("coordinate is outside the board")
	ErrOverlap          = errors.New("coordinate collides with another ship")
	ErrAlreadyTargeted  = errors.New("coordinate has already been targeted")
	ErrInvalidBoardSize = errors.New("invalid board size")

	// Placement errors
	ErrPlacementExhausted = errors.New("fleet placement attempts exhausted")

	// Targeting errors
	ErrNoTargetsLeft = errors.New("no untargeted coordinates left")

	// Match errors
	ErrMatchComplete = errors.New("match is already complete")
	ErrMatchNotFound = errors.New("match not found")

	// Input errors
	ErrInputClosed = errors.New("input closed")
)

// IsRecoverableShotError returns true for errors a player answers by choosing
// another target
func IsRecoverableShotError(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}
