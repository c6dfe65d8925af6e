// Package ephem defines the value types and the capability interface for an
// external astronomical ephemeris engine.
//
// The harness never computes celestial positions itself. Every computation is
// delegated to an Engine implementation, and the types here describe the
// results the harness consumes: day-count times on the UT/TT scales, body
// identifiers, Cartesian vectors, equatorial and horizontal coordinates, and
// the outcomes of the engine's search operations.
package ephem

import "math"

// Time is a moment expressed on two time scales, each as a floating-point
// day count relative to noon UTC on January 1, 2000 (the J2000 epoch).
//
// UT is the calendar-linked Universal Time scale. TT is Terrestrial Time,
// the uniform dynamical scale used by orbital mechanics; the engine derives
// TT from UT with its delta-T model. A Time is immutable once constructed.
type Time struct {
	UT float64
	TT float64
}

// Observer is a geographic location on the Earth's surface.
type Observer struct {
	Latitude  float64 // degrees north of the equator
	Longitude float64 // degrees east of Greenwich
	Height    float64 // meters above sea level
}

// Body identifies one of the solar system bodies tracked by the harness.
type Body int

const (
	BodyInvalid Body = iota - 1
	BodySun
	BodyMercury
	BodyVenus
	BodyEarth
	BodyMars
	BodyJupiter
	BodySaturn
	BodyUranus
	BodyNeptune
	BodyPluto
	BodyMoon
)

// bodyNames holds the canonical display names. Record files round-trip these
// tokens exactly, so they must stay alphabetic and at most 9 characters.
var bodyNames = [...]string{
	BodySun:     "Sun",
	BodyMercury: "Mercury",
	BodyVenus:   "Venus",
	BodyEarth:   "Earth",
	BodyMars:    "Mars",
	BodyJupiter: "Jupiter",
	BodySaturn:  "Saturn",
	BodyUranus:  "Uranus",
	BodyNeptune: "Neptune",
	BodyPluto:   "Pluto",
	BodyMoon:    "Moon",
}

// Name returns the canonical display name of the body, or "" for an
// invalid body code.
func (b Body) Name() string {
	if b < BodySun || int(b) >= len(bodyNames) {
		return ""
	}
	return bodyNames[b]
}

// BodyCode maps a canonical body name back to its Body code.
// Returns BodyInvalid for an unrecognized name.
func BodyCode(name string) Body {
	for b, n := range bodyNames {
		if n == name {
			return Body(b)
		}
	}
	return BodyInvalid
}

// Bodies lists every valid body in canonical order.
func Bodies() []Body {
	out := make([]Body, 0, len(bodyNames))
	for b := range bodyNames {
		out = append(out, Body(b))
	}
	return out
}

// Vector is a Cartesian position in astronomical units, stamped with the
// time at which it was computed.
type Vector struct {
	T Time
	X float64
	Y float64
	Z float64
}

// Length returns the Euclidean magnitude of the vector in AU.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Equatorial holds equatorial coordinates: right ascension in sidereal
// hours, declination in degrees, and distance in AU.
type Equatorial struct {
	RA   float64
	Dec  float64
	Dist float64
}

// Horizon holds horizontal coordinates as seen by a ground observer:
// azimuth and altitude in degrees.
type Horizon struct {
	Azimuth  float64
	Altitude float64
}

// Refraction selects the atmospheric refraction model applied when
// projecting to horizon coordinates. The harness always disables it so
// golden records stay comparable across implementations.
type Refraction int

const (
	RefractionNone Refraction = iota
	RefractionNormal
)

// SeasonSet holds the four seasonal markers for one calendar year.
type SeasonSet struct {
	MarEquinox  Time
	JunSolstice Time
	SepEquinox  Time
	DecSolstice Time
}

// MoonQuarter is one lunar phase milestone found by a quarter search:
// Quarter is 0 for new moon, 1 for first quarter, 2 for full moon,
// 3 for third quarter.
type MoonQuarter struct {
	Quarter int
	Time    Time
}

// SearchResult is the outcome of a root-finding search: the time found and
// the number of iterations the search used to converge.
type SearchResult struct {
	Time Time
	Iter int
}

// Visibility tells whether a maximum elongation event places the body in
// the morning or evening sky.
type Visibility int

const (
	VisibleMorning Visibility = iota
	VisibleEvening
)

// String returns "morning" or "evening".
func (v Visibility) String() string {
	if v == VisibleEvening {
		return "evening"
	}
	return "morning"
}

// Elongation is the outcome of a maximum-elongation search.
type Elongation struct {
	Time       Time
	Visibility Visibility
	Elongation float64 // angular separation from the Sun, degrees
	RelLon     float64 // relative ecliptic longitude at the event, degrees
}
