package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// RunTicker calls fn with clk.Now() once per interval until ctx is cancelled.
// It blocks; callers run it in its own goroutine. Missed ticks are dropped,
// there is no catch-up.
func RunTicker(ctx context.Context, clk Clock, interval time.Duration, fn func(time.Time)) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	if interval <= 0 {
		interval = config.TickInterval
	}

	ticker := clk.NewTicker(interval)
	defer ticker.Stop()

	log.Debug(config.MsgTickerStart, config.LogKeyInterval, interval)

	for {
		select {
		case <-ctx.Done():
			log.Debug(config.MsgTickerStop)
			return
		case <-ticker.Chan():
			fn(clk.Now())
		}
	}
}
