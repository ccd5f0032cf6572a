package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// DateNames supplies the abbreviated weekday and month names of the date line.
type DateNames interface {
	Weekday(d time.Weekday) string
	Month(m time.Month) string
}

// EnglishNames is the default DateNames ("Wed", "Jan").
type EnglishNames struct{}

// Weekday returns the three-letter English abbreviation.
func (EnglishNames) Weekday(d time.Weekday) string {
	return d.String()[:3]
}

// Month returns the three-letter English abbreviation.
func (EnglishNames) Month(m time.Month) string {
	return m.String()[:3]
}

// FormatTime renders t as zero-padded 24-hour HH:mm:ss.
func FormatTime(t time.Time) string {
	return t.Format(config.TimeFormat)
}

// FormatDate renders t as "Wed, Jan 05 2022" using names for the abbreviations.
// A nil names falls back to English.
func FormatDate(t time.Time, names DateNames) string {
	if names == nil {
		names = EnglishNames{}
	}
	return fmt.Sprintf(config.DateFormatLayout, names.Weekday(t.Weekday()), names.Month(t.Month()), t.Day(), t.Year())
}
