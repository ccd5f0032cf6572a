package engine

import "github.com/jonboulle/clockwork"

// Clock abstracts time.Now() and tickers to allow deterministic testing.
// Tests drive it with clockwork.NewFakeClockAt.
type Clock = clockwork.Clock

// RealClock returns a Clock backed by the standard time package.
func RealClock() Clock {
	return clockwork.NewRealClock()
}
