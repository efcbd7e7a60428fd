package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/player"
)

// TraceEvent is the JSON line written for each match event
type TraceEvent struct {
	Time    time.Time      `json:"time"`
	Event   string         `json:"event"`
	MatchID string         `json:"match_id"`
	Side    string         `json:"side,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// newTracer returns a Notifier that writes one line per event to w
func newTracer(w io.Writer, jsonOutput bool) player.Notifier {
	return player.NotifierFunc(func(event model.Event) {
		printEvent(w, event, jsonOutput)
	})
}

func printEvent(w io.Writer, event model.Event, jsonOutput bool) {
	data := eventData(event.Payload)

	if jsonOutput {
		evt := TraceEvent{
			Time:    event.Timestamp,
			Event:   string(event.Type),
			MatchID: string(event.MatchID),
			Side:    string(event.Side),
			Data:    data,
		}
		jsonData, _ := json.Marshal(evt)
		fmt.Fprintln(w, string(jsonData))
		return
	}

	timestamp := event.Timestamp.Format("2006-01-02 15:04:05")
	parts := make([]string, 0, len(data))
	for _, key := range []string{"target", "result", "error", "next", "board_size", "first_turn", "winner", "moves"} {
		if v, ok := data[key]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", key, v))
		}
	}
	side := ""
	if event.Side != "" {
		side = " " + string(event.Side)
	}
	fmt.Fprintf(w, "[%s] %s%s: %s\n", timestamp, event.Type, side, strings.Join(parts, " "))
}

// eventData flattens a payload into JSON-friendly values.
// Targets are reported 1-indexed, matching what the user types.
func eventData(payload any) map[string]any {
	switch p := payload.(type) {
	case model.MatchStartedPayload:
		return map[string]any{"board_size": p.BoardSize, "first_turn": string(p.FirstTurn)}
	case model.TargetChosenPayload:
		return map[string]any{"target": displayTarget(p.Target)}
	case model.ShotResolvedPayload:
		return map[string]any{"target": displayTarget(p.Target), "result": p.Result.String()}
	case model.ShotRejectedPayload:
		return map[string]any{"target": displayTarget(p.Target), "error": p.Err.Error()}
	case model.TurnChangedPayload:
		return map[string]any{"next": string(p.Next)}
	case model.MatchCompletePayload:
		return map[string]any{"winner": string(p.Winner), "moves": p.Moves}
	default:
		return nil
	}
}

func displayTarget(c model.Coordinate) string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}
