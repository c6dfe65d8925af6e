package check

import (
	"errors"
	"math"
	"time"

	"github.com/roach88/ephemcheck/internal/ephem"
)

var errNoMoreQuarters = errors.New("no scripted quarter available")

// stubEngine is a scripted Engine for validator tests. Calendar conversion
// is real arithmetic against the J2000 epoch so fixture timestamps map onto
// consistent day counts; every astronomical computation is a function field
// the test scripts, defaulting to a zero result.
type stubEngine struct {
	makeTime  func(year, month, day, hour, minute int, second float64) ephem.Time
	helio     func(body ephem.Body, t ephem.Time) (ephem.Vector, error)
	geo       func(body ephem.Body, t ephem.Time, aberration bool) (ephem.Vector, error)
	equator   func(body ephem.Body, t ephem.Time, obs ephem.Observer, ofDate, aberration bool) (ephem.Equatorial, error)
	horizon   func(t ephem.Time, obs ephem.Observer, ra, dec float64, refraction ephem.Refraction) (ephem.Horizon, error)
	seasons   func(year int) (ephem.SeasonSet, error)
	moonPhase func(t ephem.Time) (float64, error)
	searchMQ  func(startTime ephem.Time) (ephem.MoonQuarter, error)
	nextMQ    func(mq ephem.MoonQuarter) (ephem.MoonQuarter, error)
	relLon    func(body ephem.Body, targetRelLon float64, startTime ephem.Time) (ephem.SearchResult, error)
	maxElong  func(body ephem.Body, startTime ephem.Time) (ephem.Elongation, error)
}

var j2000Epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// stubDeltaT is the fixed TT-UT offset of the stub, in days.
const stubDeltaT = 69.184 / 86400.0

func makeStubTime(year, month, day, hour, minute int, second float64) ephem.Time {
	d := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	ut := d.Sub(j2000Epoch).Hours()/24.0 + second/86400.0
	return ephem.Time{UT: ut, TT: ut + stubDeltaT}
}

func (e *stubEngine) MakeTime(year, month, day, hour, minute int, second float64) ephem.Time {
	if e.makeTime != nil {
		return e.makeTime(year, month, day, hour, minute, second)
	}
	return makeStubTime(year, month, day, hour, minute, second)
}

func (e *stubEngine) AddDays(t ephem.Time, days float64) ephem.Time {
	return ephem.Time{UT: t.UT + days, TT: t.TT + days}
}

func (e *stubEngine) HelioVector(body ephem.Body, t ephem.Time) (ephem.Vector, error) {
	if e.helio != nil {
		return e.helio(body, t)
	}
	return ephem.Vector{T: t}, nil
}

func (e *stubEngine) GeoVector(body ephem.Body, t ephem.Time, aberration bool) (ephem.Vector, error) {
	if e.geo != nil {
		return e.geo(body, t, aberration)
	}
	return ephem.Vector{T: t}, nil
}

func (e *stubEngine) Equator(body ephem.Body, t ephem.Time, obs ephem.Observer, ofDate, aberration bool) (ephem.Equatorial, error) {
	if e.equator != nil {
		return e.equator(body, t, obs, ofDate, aberration)
	}
	return ephem.Equatorial{}, nil
}

func (e *stubEngine) Horizon(t ephem.Time, obs ephem.Observer, ra, dec float64, refraction ephem.Refraction) (ephem.Horizon, error) {
	if e.horizon != nil {
		return e.horizon(t, obs, ra, dec, refraction)
	}
	return ephem.Horizon{}, nil
}

func (e *stubEngine) Seasons(year int) (ephem.SeasonSet, error) {
	if e.seasons != nil {
		return e.seasons(year)
	}
	return ephem.SeasonSet{}, nil
}

func (e *stubEngine) MoonPhase(t ephem.Time) (float64, error) {
	if e.moonPhase != nil {
		return e.moonPhase(t)
	}
	return 0, nil
}

func (e *stubEngine) SearchMoonQuarter(startTime ephem.Time) (ephem.MoonQuarter, error) {
	if e.searchMQ != nil {
		return e.searchMQ(startTime)
	}
	return ephem.MoonQuarter{}, nil
}

func (e *stubEngine) NextMoonQuarter(mq ephem.MoonQuarter) (ephem.MoonQuarter, error) {
	if e.nextMQ != nil {
		return e.nextMQ(mq)
	}
	return ephem.MoonQuarter{}, nil
}

func (e *stubEngine) SearchRelativeLongitude(body ephem.Body, targetRelLon float64, startTime ephem.Time) (ephem.SearchResult, error) {
	if e.relLon != nil {
		return e.relLon(body, targetRelLon, startTime)
	}
	return ephem.SearchResult{Time: startTime}, nil
}

func (e *stubEngine) SearchMaxElongation(body ephem.Body, startTime ephem.Time) (ephem.Elongation, error) {
	if e.maxElong != nil {
		return e.maxElong(body, startTime)
	}
	return ephem.Elongation{}, nil
}

// quarterScript scripts a consecutive lunar quarter sequence for the stub:
// SearchMoonQuarter finds the first scripted quarter at or after the start,
// NextMoonQuarter the first one after the cursor, and MoonPhase answers the
// nominal elongation of the scripted quarter nearest the queried time.
type quarterScript struct {
	quarters []ephem.MoonQuarter
}

func (s *quarterScript) search(startTime ephem.Time) (ephem.MoonQuarter, error) {
	for _, q := range s.quarters {
		if q.Time.TT >= startTime.TT {
			return q, nil
		}
	}
	return ephem.MoonQuarter{}, errNoMoreQuarters
}

func (s *quarterScript) next(mq ephem.MoonQuarter) (ephem.MoonQuarter, error) {
	for _, q := range s.quarters {
		if q.Time.TT > mq.Time.TT {
			return q, nil
		}
	}
	return ephem.MoonQuarter{}, errNoMoreQuarters
}

func (s *quarterScript) phase(t ephem.Time) (float64, error) {
	best := -1
	bestDist := math.Inf(1)
	for i, q := range s.quarters {
		if d := math.Abs(q.Time.TT - t.TT); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0, errNoMoreQuarters
	}
	return 90.0 * float64(s.quarters[best].Quarter), nil
}
