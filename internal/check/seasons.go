package check

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/roach88/ephemcheck/internal/ephem"
)

// seasonsTolerance is the acceptance ceiling for a seasonal marker, in
// minutes of TT.
const seasonsTolerance = 1.7

// SeasonsSummary reports a completed seasons validation run.
type SeasonsSummary struct {
	Lines           int     `json:"lines"`
	MaxErrorMinutes float64 `json:"max_error_minutes"`
	MarCount        int     `json:"mar_count"`
	JunCount        int     `json:"jun_count"`
	SepCount        int     `json:"sep_count"`
	DecCount        int     `json:"dec_count"`
}

// seasonsState is the cross-row state of one validation run: the year whose
// season set is cached, and the set itself. The cache is deliberate — rows
// for an unchanged year must reuse the cached set, which also checks that
// the engine's season computation is idempotent per year.
type seasonsState struct {
	year    int
	seasons ephem.SeasonSet
}

// Seasons validates tabulated seasonal events against the engine's season
// computation. Each fixture row names an event (Equinox, Solstice,
// Aphelion, Perihelion) at a UTC timestamp; the engine's matching marker
// must agree within 1.7 minutes of TT.
//
// Aphelion and Perihelion rows are parsed for shape but excluded from the
// timing check: the engine does not yet compute apsides. The exclusion is
// a documented engine gap, not a validation pass.
func Seasons(eng ephem.Engine, r io.Reader, name string) (SeasonsSummary, error) {
	var (
		sum   SeasonsSummary
		state seasonsState
	)

	scanner := bufio.NewScanner(r)
	lnum := 0
	for scanner.Scan() {
		lnum++
		if err := seasonsRow(eng, &state, scanner.Text(), name, lnum, &sum); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, err
	}

	sum.Lines = lnum
	return sum, nil
}

// seasonsRow validates one fixture row, refreshing the cached season set
// on a year boundary.
func seasonsRow(eng ephem.Engine, state *seasonsState, line, name string, lnum int, sum *SeasonsSummary) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return NewFixtureError(name, lnum, "expected 2 fields, found %d", len(fields))
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return NewFixtureError(name, lnum, "%v", err)
	}
	event := fields[1]
	if !isAlphabetic(event) || len(event) > 10 {
		return NewFixtureError(name, lnum, "invalid event name %q", event)
	}

	if date.Year != state.year {
		seasons, err := eng.Seasons(date.Year)
		if err != nil {
			return ephem.NewEngineError("Seasons", ephem.BodyInvalid, err)
		}
		state.year = date.Year
		state.seasons = seasons
	}

	var calc ephem.Time
	switch event {
	case "Equinox":
		switch date.Month {
		case 3:
			calc = state.seasons.MarEquinox
			sum.MarCount++
		case 9:
			calc = state.seasons.SepEquinox
			sum.SepCount++
		default:
			return NewFixtureError(name, lnum, "equinox in month %d", date.Month)
		}
	case "Solstice":
		switch date.Month {
		case 6:
			calc = state.seasons.JunSolstice
			sum.JunCount++
		case 12:
			calc = state.seasons.DecSolstice
			sum.DecCount++
		default:
			return NewFixtureError(name, lnum, "solstice in month %d", date.Month)
		}
	case "Aphelion", "Perihelion":
		// Shape-validated above; apsides are not computed by the engine.
		return nil
	default:
		return NewFixtureError(name, lnum, "unknown event type %q", event)
	}

	expected := date.Time(eng)
	diffMinutes := minutesPerDay * math.Abs(calc.TT-expected.TT)
	if diffMinutes > sum.MaxErrorMinutes {
		sum.MaxErrorMinutes = diffMinutes
	}
	if diffMinutes > seasonsTolerance {
		return &ToleranceError{
			Check: "seasons", File: name, Line: lnum,
			Value: diffMinutes, Limit: seasonsTolerance, Unit: "minutes", Label: event,
		}
	}
	return nil
}
