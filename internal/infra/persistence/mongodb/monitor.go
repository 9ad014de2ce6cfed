package mongodb

import (
	"context"
	"log/slog"
	"time"

	"shop/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger reports driver commands through slog: failures at error,
// slow commands at warn, and everything else at debug when debug mode is on.
type commandLogger struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandMonitor(logger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := &commandLogger{
		logger:        logger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	if l.slowThreshold > 0 && evt.Duration > l.slowThreshold {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command",
			slog.String("command", evt.CommandName),
			slog.Int64("requestID", evt.RequestID),
			slog.Duration("elapsed", evt.Duration),
			slog.Duration("slowThreshold", l.slowThreshold),
		)

		return
	}

	if l.debug {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command",
			slog.String("command", evt.CommandName),
			slog.Int64("requestID", evt.RequestID),
			slog.Duration("elapsed", evt.Duration),
		)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed",
		slog.String("command", evt.CommandName),
		slog.Int64("requestID", evt.RequestID),
		slog.Duration("elapsed", evt.Duration),
		slog.Any("failure", evt.Failure),
	)
}

// newPoolMonitor surfaces connection pool trouble: failed check-outs and pool clears.
func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if logger == nil {
				return
			}

			switch evt.Type {
			case event.GetFailed:
				logger.LogAttrs(context.Background(), slog.LevelWarn, "MongoDB connection check-out failed",
					slog.String("address", evt.Address),
					slog.String("reason", evt.Reason),
				)
			case event.PoolCleared:
				logger.LogAttrs(context.Background(), slog.LevelWarn, "MongoDB connection pool cleared",
					slog.String("address", evt.Address),
				)
			}
		},
	}
}
