package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Side is one of the two participants
type Side string

const (
	SideUser     Side = "user"
	SideComputer Side = "computer"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideUser {
		return SideComputer
	}
	return SideUser
}

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchInProgress  MatchState = "in_progress"
	MatchUserWon     MatchState = "user_won"
	MatchComputerWon MatchState = "computer_won"
)

// IsTerminal returns true once a winner has been decided
func (s MatchState) IsTerminal() bool {
	return s == MatchUserWon || s == MatchComputerWon
}

// Match tracks turn order and statistics for a single game
type Match struct {
	ID        MatchID
	State     MatchState
	BoardSize int

	// Turn is the side that moves next
	Turn  Side
	Moves int // resolved shots by both sides

	Shots map[Side]int
	Hits  map[Side]int // hits and kills

	StartedAt time.Time
	UpdatedAt time.Time
}

// Winner returns the winning side, or empty while in progress
func (m *Match) Winner() Side {
	switch m.State {
	case MatchUserWon:
		return SideUser
	case MatchComputerWon:
		return SideComputer
	default:
		return ""
	}
}

// MatchSummary is a lightweight record of a completed match
type MatchSummary struct {
	ID            MatchID   `json:"id"`
	BoardSize     int       `json:"board_size"`
	Winner        Side      `json:"winner"`
	Moves         int       `json:"moves"`
	UserShots     int       `json:"user_shots"`
	ComputerShots int       `json:"computer_shots"`
	UserHits      int       `json:"user_hits"`
	ComputerHits  int       `json:"computer_hits"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
}
