package engine

import (
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// Reading is the hand position of an analog clock at one instant.
// Hour wraps at 12, so 13:05 and 01:05 produce the same Reading.
type Reading struct {
	Hour   int // 0-11
	Minute int // 0-59
	Second int // 0-59
}

// ReadingAt derives the Reading for t in t's location.
func ReadingAt(t time.Time) Reading {
	return Reading{
		Hour:   t.Hour() % config.HoursOnFace,
		Minute: t.Minute(),
		Second: t.Second(),
	}
}
