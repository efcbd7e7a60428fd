package middleware

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/player"
	"github.com/mcoot/seabattle/internal/testutil"
)

func TestLoggingForwardsAndLogs(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	var forwarded []model.Event
	next := player.NotifierFunc(func(e model.Event) { forwarded = append(forwarded, e) })

	notifier := Logging(logger)(next)
	notifier.Notify(model.Event{
		Type:    model.EventShotResolved,
		MatchID: "m1",
		Side:    model.SideUser,
		Payload: model.ShotResolvedPayload{Target: model.Coordinate{Row: 2, Col: 3}, Result: model.ShotHit},
	})

	require.Len(t, forwarded, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "match event", entry["msg"])
	assert.Equal(t, "shot_resolved", entry["type"])
	assert.Equal(t, "m1", entry["match_id"])
	assert.Equal(t, "user", entry["side"])
	assert.Equal(t, "(2, 3)", entry["target"])
	assert.Equal(t, "hit", entry["result"])
}

func TestLoggingRejectedShot(t *testing.T) {
	logger, buf := testutil.CaptureLogger()

	Logging(logger)(nil).Notify(model.Event{
		Type:    model.EventShotRejected,
		Payload: model.ShotRejectedPayload{Err: errors.New("nope")},
	})

	assert.True(t, strings.Contains(buf.String(), `"error":"nope"`))
	assert.False(t, strings.Contains(buf.String(), `"side"`))
}
