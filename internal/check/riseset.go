package check

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/ephemcheck/internal/ephem"
)

// RiseSetRow is one parsed rise/set fixture row.
type RiseSetRow struct {
	Body      ephem.Body
	Longitude float64
	Latitude  float64
	Date      Date
	Direction int // +1 for rise, -1 for set
}

// RiseSetSummary reports a completed rise/set shape validation.
type RiseSetSummary struct {
	Lines int `json:"lines"`
}

// RiseSet validates the shape of a rise/set fixture file:
//
//	<body> <longitude> <latitude> <date> <r|s>
//
// Shape validation is all this check does. The timing comparison against
// the engine's rise/set search is not implemented yet; callers that need a
// correctness result must set strict, which fails the run with
// ErrRiseSetUnimplemented instead of silently passing parsed-but-unchecked
// rows.
func RiseSet(r io.Reader, name string, strict bool) (RiseSetSummary, error) {
	var sum RiseSetSummary

	scanner := bufio.NewScanner(r)
	lnum := 0
	for scanner.Scan() {
		lnum++
		if _, err := parseRiseSetRow(scanner.Text(), name, lnum); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, err
	}

	sum.Lines = lnum
	if strict {
		return sum, ErrRiseSetUnimplemented
	}
	return sum, nil
}

// parseRiseSetRow parses and shape-checks one fixture row.
func parseRiseSetRow(line, name string, lnum int) (RiseSetRow, error) {
	var row RiseSetRow

	fields := strings.Fields(line)
	if len(fields) != 5 {
		return row, NewFixtureError(name, lnum, "expected 5 fields, found %d", len(fields))
	}

	row.Body = ephem.BodyCode(fields[0])
	if row.Body == ephem.BodyInvalid {
		return row, NewFixtureError(name, lnum, "invalid body name %q", fields[0])
	}

	var err error
	if row.Longitude, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return row, NewFixtureError(name, lnum, "invalid longitude %q", fields[1])
	}
	if row.Latitude, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return row, NewFixtureError(name, lnum, "invalid latitude %q", fields[2])
	}
	if row.Date, err = ParseDate(fields[3]); err != nil {
		return row, NewFixtureError(name, lnum, "%v", err)
	}

	switch fields[4] {
	case "r":
		row.Direction = +1
	case "s":
		row.Direction = -1
	default:
		return row, NewFixtureError(name, lnum, "invalid kind %q", fields[4])
	}
	return row, nil
}
