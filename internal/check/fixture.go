package check

import (
	"fmt"
	"time"

	"github.com/roach88/ephemcheck/internal/ephem"
)

// Date holds the UTC calendar fields of one fixture timestamp. Validators
// hand these to Engine.MakeTime rather than interpreting them themselves,
// so the engine under test owns all calendar-to-timescale conversion.
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// Fixture timestamps come in two shapes: minute precision
// (2019-03-20T21:58Z) and millisecond precision (1800-01-25T03:21:00.000Z).
// time.Parse accepts a fractional second even when the layout lacks one.
var dateLayouts = []string{
	"2006-01-02T15:04Z",
	"2006-01-02T15:04:05Z",
}

// ParseDate parses a fixture timestamp into calendar fields.
func ParseDate(text string) (Date, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		return Date{
			Year:   t.Year(),
			Month:  int(t.Month()),
			Day:    t.Day(),
			Hour:   t.Hour(),
			Minute: t.Minute(),
			Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
		}, nil
	}
	return Date{}, fmt.Errorf("invalid date %q", text)
}

// Time converts the calendar fields to an engine time.
func (d Date) Time(eng ephem.Engine) ephem.Time {
	return eng.MakeTime(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// StartOfYear returns the engine time for January 1, 00:00 UTC of the
// date's year. Search validators restart from a year boundary.
func (d Date) StartOfYear(eng ephem.Engine) ephem.Time {
	return eng.MakeTime(d.Year, 1, 1, 0, 0, 0.0)
}

// isAlphabetic reports whether s is non-empty and contains only ASCII
// letters. Fixture event and body tokens share this constraint with
// record body tokens.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// Day-count conversion factors shared by the validators.
const (
	minutesPerDay = 24.0 * 60.0
	secondsPerDay = 24.0 * 3600.0
)
