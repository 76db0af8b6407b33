package async

import (
	"context"
	"log/slog"
	"time"
)

// Go runs fn as a detached background task. The caller never waits on it:
// fn's error is logged, a panic is recovered and logged, and neither ever
// reaches the request path. The task gets its own context so it survives
// the originating request's cancellation.
func Go(name string, fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if p := recover(); p != nil {
				slog.Error("Background task panicked", "name", name, "panic", p)
			}
		}()

		start := time.Now()
		if err := fn(context.Background()); err != nil {
			slog.Error("Background task failed", "name", name, "error", err, "duration", time.Since(start))
			return
		}
		slog.Debug("Background task completed", "name", name, "duration", time.Since(start))
	}()
}
