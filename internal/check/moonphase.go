package check

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/ephemcheck/internal/ephem"
)

// Tolerances for the lunar quarter sequencer.
const (
	moonAngleTolerance = 1.0   // arc-minutes against the quarter's nominal elongation
	moonTimeTolerance  = 120.0 // seconds of TT against the tabulated quarter time
)

// MoonPhaseSummary reports a completed lunar quarter validation run.
type MoonPhaseSummary struct {
	Lines          int     `json:"lines"`
	Quarters       int     `json:"quarters"` // rows whose sequencing expectation was checked
	MaxArcmin      float64 `json:"max_arcmin"`
	MaxDiffSeconds float64 `json:"max_diff_seconds"`
}

// moonCursor is the rolling search state of one validation run: the most
// recently found quarter and the calendar year it belongs to. The fixture
// carries one year of quarters per decade, so a year change breaks phase
// continuity and restarts the search with no expectation of which quarter
// comes first.
type moonCursor struct {
	year    int
	quarter ephem.MoonQuarter
	primed  bool
}

// MoonQuarters validates an ordered lunar quarter log against the engine's
// incremental quarter search. Three properties are checked per row:
//
//   - the Moon's elongation at the tabulated time matches the quarter's
//     nominal angle (0, 90, 180, 270 degrees) within one arc-minute,
//     taking the shorter way around the circle;
//   - within one year, each search result is the next consecutive quarter,
//     (prior+1) mod 4, and matches the quarter recorded in the fixture;
//   - the found time matches the tabulated time within 120 seconds of TT.
//
// A sequencing violation is a SequenceError; the validator never
// resynchronizes the cursor to recover.
func MoonQuarters(eng ephem.Engine, r io.Reader, name string) (MoonPhaseSummary, error) {
	var (
		sum    MoonPhaseSummary
		cursor moonCursor
	)

	scanner := bufio.NewScanner(r)
	lnum := 0
	for scanner.Scan() {
		lnum++
		if err := moonQuarterRow(eng, &cursor, scanner.Text(), name, lnum, &sum); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, err
	}

	sum.Lines = lnum
	return sum, nil
}

// moonQuarterRow validates one fixture row and advances the cursor.
func moonQuarterRow(eng ephem.Engine, cursor *moonCursor, line, name string, lnum int, sum *MoonPhaseSummary) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return NewFixtureError(name, lnum, "expected 2 fields, found %d", len(fields))
	}

	quarter, err := strconv.Atoi(fields[0])
	if err != nil || quarter < 0 || quarter > 3 {
		return NewFixtureError(name, lnum, "invalid quarter %q", fields[0])
	}
	date, err := ParseDate(fields[1])
	if err != nil {
		return NewFixtureError(name, lnum, "%v", err)
	}

	expectedTime := date.Time(eng)
	expectedElong := 90.0 * float64(quarter)

	// Angular check against the nominal elongation, independent of the
	// search cursor.
	angle, err := eng.MoonPhase(expectedTime)
	if err != nil {
		return ephem.NewEngineError("MoonPhase", ephem.BodyMoon, err)
	}
	degreeError := math.Abs(angle - expectedElong)
	if degreeError > 180.0 {
		degreeError = 360.0 - degreeError
	}
	arcmin := 60.0 * degreeError
	if arcmin > moonAngleTolerance {
		return &ToleranceError{
			Check: "moonphase", File: name, Line: lnum,
			Value: arcmin, Limit: moonAngleTolerance, Unit: "arcmin",
		}
	}
	if arcmin > sum.MaxArcmin {
		sum.MaxArcmin = arcmin
	}

	// Advance the search cursor. A year change restarts from January 1
	// with no quarter expectation; otherwise advance by exactly one step.
	expectedQuarter := -1
	var mq ephem.MoonQuarter
	if !cursor.primed || date.Year != cursor.year {
		cursor.year = date.Year
		cursor.primed = true
		mq, err = eng.SearchMoonQuarter(date.StartOfYear(eng))
		if err != nil {
			return ephem.NewEngineError("SearchMoonQuarter", ephem.BodyMoon, err)
		}
	} else {
		expectedQuarter = (cursor.quarter.Quarter + 1) % 4
		mq, err = eng.NextMoonQuarter(cursor.quarter)
		if err != nil {
			return ephem.NewEngineError("NextMoonQuarter", ephem.BodyMoon, err)
		}
	}
	cursor.quarter = mq

	if expectedQuarter != -1 {
		if mq.Quarter != expectedQuarter {
			return &SequenceError{
				Check: "moonphase", File: name, Line: lnum,
				Message: "search returned quarter " + strconv.Itoa(mq.Quarter) +
					", expected " + strconv.Itoa(expectedQuarter),
			}
		}
		if quarter != mq.Quarter {
			return &SequenceError{
				Check: "moonphase", File: name, Line: lnum,
				Message: "fixture records quarter " + strconv.Itoa(quarter) +
					", search found " + strconv.Itoa(mq.Quarter),
			}
		}
		sum.Quarters++
	}

	diffSeconds := math.Abs(mq.Time.TT-expectedTime.TT) * secondsPerDay
	if diffSeconds > moonTimeTolerance {
		return &ToleranceError{
			Check: "moonphase", File: name, Line: lnum,
			Value: diffSeconds, Limit: moonTimeTolerance, Unit: "seconds",
		}
	}
	if diffSeconds > sum.MaxDiffSeconds {
		sum.MaxDiffSeconds = diffSeconds
	}
	return nil
}
