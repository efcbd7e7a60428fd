package middleware

import (
	"log/slog"
	"time"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/player"
)

// Logging creates notifier middleware that logs every match event
func Logging(logger *slog.Logger) func(player.Notifier) player.Notifier {
	return func(next player.Notifier) player.Notifier {
		if next == nil {
			next = player.NopNotifier
		}
		return player.NotifierFunc(func(event model.Event) {
			start := time.Now()

			next.Notify(event)

			duration := time.Since(start)

			attrs := []any{
				slog.String("type", string(event.Type)),
				slog.String("match_id", string(event.MatchID)),
				slog.Duration("duration", duration),
			}
			if event.Side != "" {
				attrs = append(attrs, slog.String("side", string(event.Side)))
			}
			switch p := event.Payload.(type) {
			case model.ShotResolvedPayload:
				attrs = append(attrs,
					slog.String("target", p.Target.String()),
					slog.String("result", p.Result.String()),
				)
			case model.ShotRejectedPayload:
				attrs = append(attrs,
					slog.String("target", p.Target.String()),
					slog.String("error", p.Err.Error()),
				)
			}

			logger.Debug("match event", attrs...)
		})
	}
}
