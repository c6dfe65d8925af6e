package ephem

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Engine is the capability interface the harness consumes. Implementations
// wrap a real ephemeris library; the harness itself never computes any
// astronomical quantity.
//
// Every operation that can fail returns an error. Implementations should
// return errors that wrap the library's own failure status verbatim; the
// harness propagates them without retry (see EngineError).
type Engine interface {
	// MakeTime constructs a Time from UTC calendar fields. Construction is
	// total: any calendar input maps deterministically onto the UT scale,
	// and TT is derived from UT by the engine's delta-T model.
	MakeTime(year, month, day, hour, minute int, second float64) Time

	// AddDays returns the time offset from t by a (possibly fractional)
	// number of days on the UT scale.
	AddDays(t Time, days float64) Time

	// HelioVector computes the heliocentric position of a body.
	HelioVector(body Body, t Time) (Vector, error)

	// GeoVector computes the geocentric position of a body, optionally
	// correcting for light-travel aberration.
	GeoVector(body Body, t Time, aberration bool) (Vector, error)

	// Equator computes equatorial coordinates of a body for an observer.
	// ofDate selects the equator-of-date frame instead of J2000;
	// aberration enables the aberration correction.
	Equator(body Body, t Time, obs Observer, ofDate, aberration bool) (Equatorial, error)

	// Horizon projects of-date equatorial coordinates onto the observer's
	// local horizon, applying the selected refraction model.
	Horizon(t Time, obs Observer, ra, dec float64, refraction Refraction) (Horizon, error)

	// Seasons computes the four seasonal markers for a calendar year.
	Seasons(year int) (SeasonSet, error)

	// MoonPhase returns the Moon's ecliptic longitude relative to the Sun,
	// in degrees [0, 360).
	MoonPhase(t Time) (float64, error)

	// SearchMoonQuarter finds the first lunar quarter after startTime.
	SearchMoonQuarter(startTime Time) (MoonQuarter, error)

	// NextMoonQuarter finds the quarter that follows mq. A correct engine
	// returns quarter (mq.Quarter+1) mod 4; the harness verifies that.
	NextMoonQuarter(mq MoonQuarter) (MoonQuarter, error)

	// SearchRelativeLongitude finds when the body's ecliptic longitude
	// relative to the Sun, as seen from Earth, reaches targetRelLon degrees.
	SearchRelativeLongitude(body Body, targetRelLon float64, startTime Time) (SearchResult, error)

	// SearchMaxElongation finds the next maximum elongation event for
	// Mercury or Venus after startTime.
	SearchMaxElongation(body Body, startTime Time) (Elongation, error)
}

// EngineError wraps a failure reported by the external engine. The harness
// treats every engine failure as fatal for the current run.
type EngineError struct {
	Op   string // engine operation, e.g. "HelioVector"
	Body Body   // affected body, or BodyInvalid when not applicable
	Err  error  // underlying failure from the engine
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if name := e.Body.Name(); name != "" {
		return fmt.Sprintf("engine %s(%s): %v", e.Op, name, e.Err)
	}
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying engine failure.
func (e *EngineError) Unwrap() error { return e.Err }

// NewEngineError wraps err as an engine failure for the given operation.
func NewEngineError(op string, body Body, err error) *EngineError {
	return &EngineError{Op: op, Body: body, Err: err}
}

// IsEngineError reports whether err is (or wraps) an engine failure.
func IsEngineError(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee)
}

// Engine registry. Adapters register themselves at init time, the same way
// database/sql drivers do, so the harness links against a concrete engine
// only through a blank import in the main package.

var (
	registryMu sync.RWMutex
	registry   = map[string]Engine{}
)

// Register makes an engine available under the given name.
// Registering a duplicate name or a nil engine panics.
func Register(name string, eng Engine) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if eng == nil {
		panic("ephem: Register engine is nil")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("ephem: Register called twice for engine %q", name))
	}
	registry[name] = eng
}

// Open returns the engine registered under name. With an empty name, Open
// resolves the sole registered engine, and fails if there are zero or
// several candidates.
func Open(name string) (Engine, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if name != "" {
		eng, ok := registry[name]
		if !ok {
			return nil, NewEngineError("Open", BodyInvalid,
				fmt.Errorf("no ephemeris engine registered as %q (known: %v)", name, engineNamesLocked()))
		}
		return eng, nil
	}

	switch len(registry) {
	case 0:
		return nil, NewEngineError("Open", BodyInvalid,
			errors.New("no ephemeris engine registered; build with an engine adapter"))
	case 1:
		for _, eng := range registry {
			return eng, nil
		}
	}
	return nil, NewEngineError("Open", BodyInvalid,
		fmt.Errorf("multiple engines registered (%v); select one explicitly", engineNamesLocked()))
}

// Engines returns the names of all registered engines, sorted.
func Engines() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return engineNamesLocked()
}

func engineNamesLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unregister removes a registered engine. Only tests use this.
func unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}
