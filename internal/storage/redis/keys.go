package redis

import (
	"fmt"

	"github.com/mcoot/seabattle/internal/model"
)

// Key prefix for all match history data
const keyPrefix = "seabattle"

// matchKey returns the Redis key for a MatchSummary
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesIndexKey returns the Redis key for the ZSET of match ids scored by completion time
func matchesIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}
