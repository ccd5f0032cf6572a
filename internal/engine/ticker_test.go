package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/engine"
)

func TestRunTicker_FiresEachInterval(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	fc := clockwork.NewFakeClockAt(start)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan time.Time, 4)
	done := make(chan struct{})
	go func() {
		engine.RunTicker(ctx, fc, time.Second, func(ts time.Time) { got <- ts })
		close(done)
	}()

	waitCtx, waitCancel := context.WithTimeout(ctx, 2*time.Second)
	defer waitCancel()
	require.NoError(t, fc.BlockUntilContext(waitCtx, 1), "ticker should register with the clock")

	for i := 1; i <= 3; i++ {
		fc.Advance(time.Second)
		select {
		case ts := <-got:
			assert.Equal(t, start.Add(time.Duration(i)*time.Second), ts)
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d not delivered", i)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunTicker did not return after cancellation")
	}
}

func TestRunTicker_NoTickBeforeInterval(t *testing.T) {
	fc := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan time.Time, 1)
	go engine.RunTicker(ctx, fc, time.Second, func(ts time.Time) { got <- ts })

	waitCtx, waitCancel := context.WithTimeout(ctx, 2*time.Second)
	defer waitCancel()
	require.NoError(t, fc.BlockUntilContext(waitCtx, 1))

	fc.Advance(500 * time.Millisecond)
	select {
	case <-got:
		t.Fatal("ticked before a full interval elapsed")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRunTicker_ReturnsWhenAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		engine.RunTicker(ctx, clockwork.NewFakeClock(), 0, func(time.Time) {
			t.Error("callback must not run")
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunTicker ignored a cancelled context")
	}
}
