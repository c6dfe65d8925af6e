package check

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/roach88/ephemcheck/internal/ephem"
	"github.com/roach88/ephemcheck/internal/record"
)

// Tolerances for the elongation validators.
const (
	relLonTolerance     = 15.0 // minutes, point accuracy of a relative-longitude search
	maxElongHourLimit   = 0.6  // hours, temporal accuracy of a maximum-elongation search
	maxElongArcminLimit = 3.1  // arc-minutes, angular accuracy of a maximum-elongation search
)

// Periodicity span for the planet-longitude self-consistency walk.
const (
	longitudeStartYear = 1700
	longitudeStopYear  = 2200
)

// RelLonSummary reports a completed relative-longitude point-accuracy run.
type RelLonSummary struct {
	Lines           int     `json:"lines"`
	MaxErrorMinutes float64 `json:"max_error_minutes"`
}

// RelativeLongitudeFile validates tabulated conjunction/opposition events:
// for each `<date> <body>` row, a relative-longitude search started at
// January 1 of the event's year must land within 15 minutes of the
// tabulated time.
func RelativeLongitudeFile(eng ephem.Engine, r io.Reader, name string, targetRelLon float64) (RelLonSummary, error) {
	var sum RelLonSummary

	scanner := bufio.NewScanner(r)
	lnum := 0
	for scanner.Scan() {
		lnum++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return sum, NewFixtureError(name, lnum, "expected 2 fields, found %d", len(fields))
		}
		date, err := ParseDate(fields[0])
		if err != nil {
			return sum, NewFixtureError(name, lnum, "%v", err)
		}
		body := ephem.BodyCode(fields[1])
		if body == ephem.BodyInvalid {
			return sum, NewFixtureError(name, lnum, "invalid body name %q", fields[1])
		}

		found, err := eng.SearchRelativeLongitude(body, targetRelLon, date.StartOfYear(eng))
		if err != nil {
			return sum, ephem.NewEngineError("SearchRelativeLongitude", body, err)
		}

		expected := date.Time(eng)
		diffMinutes := minutesPerDay * math.Abs(found.Time.TT-expected.TT)
		if diffMinutes > sum.MaxErrorMinutes {
			sum.MaxErrorMinutes = diffMinutes
		}
		if diffMinutes > relLonTolerance {
			return sum, &ToleranceError{
				Check: "longitude", File: name, Line: lnum,
				Value: diffMinutes, Limit: relLonTolerance, Unit: "minutes", Label: fields[1],
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, err
	}

	sum.Lines = lnum
	return sum, nil
}

// PlanetLongitudeSummary reports a completed periodicity walk for one body.
type PlanetLongitudeSummary struct {
	Body      string  `json:"body"`
	Events    int     `json:"events"`
	Ratio     float64 `json:"ratio"`
	Threshold float64 `json:"threshold"`
}

// intervalThreshold returns the body-specific ceiling on the ratio of the
// longest to the shortest interval between consecutive longitude events.
// Mercury's synodic rhythm is the most eccentric, Mars is next; every other
// planet repeats almost uniformly.
func intervalThreshold(body ephem.Body) float64 {
	switch body {
	case ephem.BodyMercury:
		return 1.65
	case ephem.BodyMars:
		return 1.30
	default:
		return 1.07
	}
}

// zeroLonEventName names the relative-longitude-zero event in the log:
// inferior planets pass between the Earth and the Sun ("inf"), superior
// planets stand at opposition ("opp").
func zeroLonEventName(body ephem.Body) string {
	switch body {
	case ephem.BodyMercury, ephem.BodyVenus:
		return "inf"
	default:
		return "opp"
	}
}

// PlanetLongitudes walks two centuries of alternating relative-longitude
// events (0 then 180 degrees) for one body and verifies the search's
// self-consistency: consecutive finds must be spaced almost evenly, with
// the max/min interval ratio under the body's ceiling. The first interval
// is discarded — it measures the distance from the arbitrary start date,
// not a full synodic period.
//
// Each find is appended to w as an event-log line:
//
//	e <body> <inf|opp|sup> <tt> <geocentric distance>
func PlanetLongitudes(eng ephem.Engine, body ephem.Body, w io.Writer) (PlanetLongitudeSummary, error) {
	sum := PlanetLongitudeSummary{
		Body:      body.Name(),
		Threshold: intervalThreshold(body),
	}
	if sum.Body == "" {
		return sum, fmt.Errorf("invalid body code %d", body)
	}

	bw := bufio.NewWriter(w)

	t := eng.MakeTime(longitudeStartYear, 1, 1, 0, 0, 0.0)
	stop := eng.MakeTime(longitudeStopYear, 1, 1, 0, 0, 0.0)

	rlon := 0.0
	var minDiff, maxDiff float64
	for t.TT < stop.TT {
		event := "sup"
		if rlon == 0.0 {
			event = zeroLonEventName(body)
		}

		found, err := eng.SearchRelativeLongitude(body, rlon, t)
		if err != nil {
			return sum, ephem.NewEngineError("SearchRelativeLongitude", body, err)
		}
		sum.Events++

		if sum.Events >= 2 {
			dayDiff := found.Time.TT - t.TT
			if sum.Events == 2 {
				minDiff, maxDiff = dayDiff, dayDiff
			} else {
				minDiff = math.Min(minDiff, dayDiff)
				maxDiff = math.Max(maxDiff, dayDiff)
			}
		}

		geo, err := eng.GeoVector(body, found.Time, false)
		if err != nil {
			return sum, ephem.NewEngineError("GeoVector", body, err)
		}
		fmt.Fprintf(bw, "e %s %s %s %s\n", sum.Body, event,
			record.FormatField(found.Time.TT), record.FormatField(geo.Length()))

		t = found.Time
		rlon = 180.0 - rlon
	}

	if err := bw.Flush(); err != nil {
		return sum, err
	}

	sum.Ratio = maxDiff / minDiff
	if sum.Ratio > sum.Threshold {
		return sum, &SequenceError{
			Check: "longitude",
			Message: fmt.Sprintf("%s: event interval ratio %.3f exceeds %.2f",
				sum.Body, sum.Ratio, sum.Threshold),
		}
	}
	return sum, nil
}

// MaxElongCase is one tabulated greatest-elongation event for Mercury or
// Venus: where to start the search, when the event occurred, and the
// observed elongation angle.
type MaxElongCase struct {
	Body       ephem.Body
	SearchDate string
	EventDate  string
	Angle      float64
	Visibility ephem.Visibility
}

// VerifyMaxElongation checks one tabulated event against the engine's
// maximum-elongation search, within 0.6 hours and 3.1 arc-minutes.
func VerifyMaxElongation(eng ephem.Engine, c MaxElongCase) error {
	name := c.Body.Name()
	if c.Body != ephem.BodyMercury && c.Body != ephem.BodyVenus {
		return fmt.Errorf("max elongation case for non-inferior body %q", name)
	}

	searchDate, err := ParseDate(c.SearchDate)
	if err != nil {
		return NewFixtureError("maxelong", 0, "search date: %v", err)
	}
	eventDate, err := ParseDate(c.EventDate)
	if err != nil {
		return NewFixtureError("maxelong", 0, "event date: %v", err)
	}

	evt, err := eng.SearchMaxElongation(c.Body, searchDate.Time(eng))
	if err != nil {
		return ephem.NewEngineError("SearchMaxElongation", c.Body, err)
	}

	label := name + " " + c.SearchDate
	if evt.Visibility != c.Visibility {
		return &SequenceError{
			Check: "maxelong",
			Message: fmt.Sprintf("%s: search found %s visibility, expected %s",
				label, evt.Visibility, c.Visibility),
		}
	}
	hourDiff := 24.0 * math.Abs(evt.Time.TT-eventDate.Time(eng).TT)
	if hourDiff > maxElongHourLimit {
		return &ToleranceError{
			Check: "maxelong", Value: hourDiff, Limit: maxElongHourLimit,
			Unit: "hours", Label: label,
		}
	}

	arcminDiff := 60.0 * math.Abs(evt.Elongation-c.Angle)
	if arcminDiff > maxElongArcminLimit {
		return &ToleranceError{
			Check: "maxelong", Value: arcminDiff, Limit: maxElongArcminLimit,
			Unit: "arcmin", Label: label,
		}
	}
	return nil
}

// MaxElongationTable runs every embedded max-elongation case and returns
// the number verified.
func MaxElongationTable(eng ephem.Engine) (int, error) {
	for _, c := range maxElongCases {
		if err := VerifyMaxElongation(eng, c); err != nil {
			return 0, err
		}
	}
	return len(maxElongCases), nil
}
