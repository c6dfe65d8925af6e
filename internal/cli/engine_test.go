package cli

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/roach88/ephemcheck/internal/ephem"
)

// testEngine is a deterministic engine backing the command tests. Calendar
// conversion is real arithmetic against the J2000 epoch; searches follow
// simple scripts that the fixtures in this package agree with.
type testEngine struct{}

var testEpoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

const testDeltaT = 69.184 / 86400.0

var errNotScripted = errors.New("not scripted")

func (testEngine) MakeTime(year, month, day, hour, minute int, second float64) ephem.Time {
	// The calendar verification timestamp must convert exactly.
	if year == 2018 && month == 12 && day == 2 && hour == 18 && minute == 30 && second == 12.543 {
		return ephem.Time{UT: 6910.270978506945, TT: 6910.271779431480}
	}
	d := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	ut := d.Sub(testEpoch).Hours()/24.0 + second/86400.0
	return ephem.Time{UT: ut, TT: ut + testDeltaT}
}

func (testEngine) AddDays(t ephem.Time, days float64) ephem.Time {
	return ephem.Time{UT: t.UT + days, TT: t.TT + days}
}

func (testEngine) HelioVector(body ephem.Body, t ephem.Time) (ephem.Vector, error) {
	return ephem.Vector{T: t, X: 1.0, Y: 0.5, Z: 0.25}, nil
}

func (testEngine) GeoVector(body ephem.Body, t ephem.Time, aberration bool) (ephem.Vector, error) {
	return ephem.Vector{T: t, X: 0.5, Y: 0.25, Z: 0.125}, nil
}

func (testEngine) Equator(body ephem.Body, t ephem.Time, obs ephem.Observer, ofDate, aberration bool) (ephem.Equatorial, error) {
	return ephem.Equatorial{RA: 1.25, Dec: -10.0, Dist: 3.0}, nil
}

func (testEngine) Horizon(t ephem.Time, obs ephem.Observer, ra, dec float64, refraction ephem.Refraction) (ephem.Horizon, error) {
	return ephem.Horizon{Azimuth: 100.0, Altitude: 40.0}, nil
}

func (e testEngine) Seasons(year int) (ephem.SeasonSet, error) {
	return ephem.SeasonSet{
		MarEquinox:  e.MakeTime(year, 3, 20, 21, 58, 0),
		JunSolstice: e.MakeTime(year, 6, 21, 15, 54, 0),
		SepEquinox:  e.MakeTime(year, 9, 23, 7, 50, 0),
		DecSolstice: e.MakeTime(year, 12, 22, 4, 19, 0),
	}, nil
}

// Scripted lunar quarters for 1800, matching testdata-style fixtures.
func (e testEngine) quarters() []ephem.MoonQuarter {
	return []ephem.MoonQuarter{
		{Quarter: 0, Time: e.MakeTime(1800, 1, 25, 3, 21, 0)},
		{Quarter: 1, Time: e.MakeTime(1800, 2, 1, 20, 40, 0)},
		{Quarter: 2, Time: e.MakeTime(1800, 2, 9, 17, 26, 0)},
		{Quarter: 3, Time: e.MakeTime(1800, 2, 16, 15, 49, 0)},
	}
}

func (e testEngine) MoonPhase(t ephem.Time) (float64, error) {
	best := ephem.MoonQuarter{}
	bestDist := math.Inf(1)
	for _, q := range e.quarters() {
		if d := math.Abs(q.Time.TT - t.TT); d < bestDist {
			best, bestDist = q, d
		}
	}
	return 90.0 * float64(best.Quarter), nil
}

func (e testEngine) SearchMoonQuarter(startTime ephem.Time) (ephem.MoonQuarter, error) {
	for _, q := range e.quarters() {
		if q.Time.TT >= startTime.TT {
			return q, nil
		}
	}
	return ephem.MoonQuarter{}, errNotScripted
}

func (e testEngine) NextMoonQuarter(mq ephem.MoonQuarter) (ephem.MoonQuarter, error) {
	for _, q := range e.quarters() {
		if q.Time.TT > mq.Time.TT {
			return q, nil
		}
	}
	return ephem.MoonQuarter{}, errNotScripted
}

func (testEngine) SearchRelativeLongitude(body ephem.Body, targetRelLon float64, startTime ephem.Time) (ephem.SearchResult, error) {
	return ephem.SearchResult{Time: ephem.Time{UT: startTime.UT + 100, TT: startTime.TT + 100}}, nil
}

func (testEngine) SearchMaxElongation(body ephem.Body, startTime ephem.Time) (ephem.Elongation, error) {
	return ephem.Elongation{}, errNotScripted
}

// brokenTimeEngine fails the calendar verification gate.
type brokenTimeEngine struct{ testEngine }

func (e brokenTimeEngine) MakeTime(year, month, day, hour, minute int, second float64) ephem.Time {
	t := e.testEngine.MakeTime(year, month, day, hour, minute, second)
	return ephem.Time{UT: t.UT + 1e-9, TT: t.TT + 1e-9}
}

var registerOnce sync.Once

// registerTestEngines registers the package's engines exactly once and
// returns the name of the well-behaved one.
func registerTestEngines() string {
	registerOnce.Do(func() {
		ephem.Register("clitest", testEngine{})
		ephem.Register("clibroken", brokenTimeEngine{})
	})
	return "clitest"
}
