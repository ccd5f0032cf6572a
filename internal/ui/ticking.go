package ui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// ticking owns the once-per-second refresh loop of one clock widget.
// The loop lives from start until stop or until the parent context ends.
type ticking struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	run    uint64 // incremented on every start
}

// start launches the loop unless it is already running. onTick runs on the UI thread.
func (tk *ticking) start(ctx context.Context, clk engine.Clock, component string, onTick func(time.Time)) {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	tk.cancel = cancel
	tk.run++
	run := tk.run

	slog.Debug(config.MsgTickerStart,
		config.LogKeyComponent, component,
		config.LogKeyInterval, config.TickInterval)

	go func() {
		engine.RunTicker(ctx, clk, config.TickInterval, func(t time.Time) {
			fyne.Do(func() { onTick(t) })
		})
		tk.finished(run)
	}()
}

// finished clears the state of a loop that ended with its parent context,
// unless stop or a newer start already replaced it.
func (tk *ticking) finished(run uint64) {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.run == run && tk.cancel != nil {
		tk.cancel()
		tk.cancel = nil
	}
}

// stop cancels the loop. It is safe to call more than once.
func (tk *ticking) stop() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.cancel != nil {
		tk.cancel()
		tk.cancel = nil
	}
}

// running reports whether the loop is active.
func (tk *ticking) running() bool {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.cancel != nil
}
