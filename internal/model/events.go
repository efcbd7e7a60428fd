package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventMatchStarted  EventType = "match_started"
	EventTargetChosen  EventType = "target_chosen"
	EventShotResolved  EventType = "shot_resolved"
	EventShotRejected  EventType = "shot_rejected"
	EventTurnChanged   EventType = "turn_changed"
	EventMatchComplete EventType = "match_complete"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	MatchID   MatchID // Empty for events raised outside a match
	Side      Side    // The side that acted
	Payload   any     // Type-specific data
}

// MatchStartedPayload contains data for match started events
type MatchStartedPayload struct {
	BoardSize int
	FirstTurn Side
}

// TargetChosenPayload contains data for target chosen events
type TargetChosenPayload struct {
	Target Coordinate
}

// ShotResolvedPayload contains data for shot resolved events
type ShotResolvedPayload struct {
	Target Coordinate
	Result ShotResult
}

// ShotRejectedPayload contains data for shot rejected events
type ShotRejectedPayload struct {
	Target Coordinate
	Err    error
}

// TurnChangedPayload contains data for turn changed events
type TurnChangedPayload struct {
	Next Side
}

// MatchCompletePayload contains data for match complete events
type MatchCompletePayload struct {
	Winner Side
	Moves  int
}
