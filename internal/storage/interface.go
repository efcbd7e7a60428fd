package storage

import (
	"context"

	"github.com/mcoot/seabattle/internal/model"
)

// Storage defines the interface for match history persistence.
// Only completed matches are stored; a match in progress is never saved.
type Storage interface {
	SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error
	GetMatchSummary(ctx context.Context, id model.MatchID) (*model.MatchSummary, error)
	// ListMatchSummaries returns up to limit summaries, most recently completed
	// first. A limit of zero or less returns everything.
	ListMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error)
}
