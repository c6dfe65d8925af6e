package check

import (
	"bufio"
	"io"
	"math"

	"github.com/roach88/ephemcheck/internal/ephem"
	"github.com/roach88/ephemcheck/internal/record"
)

// MoonToken is the body token used for the geocentric Moon records. It is
// deliberately distinct from the Moon's display name so geocentric lunar
// samples can never be confused with heliocentric body records.
const MoonToken = "GM"

// SampleStep is the time step of the reference walk, in days. The step is
// intentionally irrational so the sample grid can never fall into resonance
// with any periodic phenomenon being sampled; a resonant step would hide
// systematic errors behind aliasing.
const SampleStep = 10.0 + math.Pi/100.0

// primaryBodies is the sampled body set, in wire order. The Moon is handled
// separately as a geocentric special case.
var primaryBodies = []ephem.Body{
	ephem.BodySun, ephem.BodyMercury, ephem.BodyVenus, ephem.BodyEarth, ephem.BodyMars,
	ephem.BodyJupiter, ephem.BodySaturn, ephem.BodyUranus, ephem.BodyNeptune, ephem.BodyPluto,
}

// GenerateConfig configures a reference generation run.
type GenerateConfig struct {
	Observer  ephem.Observer `yaml:"observer"`
	StartYear int            `yaml:"start_year"`
	StopYear  int            `yaml:"stop_year"`
}

// DefaultGenerateConfig returns the canonical generation run: the reference
// observing site walked across five centuries.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Observer:  ephem.Observer{Latitude: 29.0, Longitude: -81.0, Height: 10.0},
		StartYear: 1700,
		StopYear:  2200,
	}
}

// GenerateSummary reports what a completed generation run produced.
type GenerateSummary struct {
	Steps   int `json:"steps"`
	Records int `json:"records"`
}

// Generate walks the configured time range and writes one golden record
// stream to w: the observer site first, then per sample step a heliocentric
// vector for every primary body, a sky coordinate pair for every primary
// except Earth, and a geocentric vector plus sky pair for the Moon.
//
// The sky pair folds two frames into one record: J2000 equatorial
// coordinates without aberration, and of-date coordinates with aberration
// projected onto the refraction-free local horizon.
//
// The first failed sub-computation aborts the run. A truncated stream is
// not a valid golden file; callers must discard partial output on error.
func Generate(eng ephem.Engine, cfg GenerateConfig, w io.Writer) (GenerateSummary, error) {
	var sum GenerateSummary

	bw := bufio.NewWriter(w)
	emit := func(r record.Record) error {
		line, err := record.Encode(r)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		sum.Records++
		return nil
	}

	obs := cfg.Observer
	if err := emit(record.Observer(obs.Latitude, obs.Longitude, obs.Height)); err != nil {
		return sum, err
	}

	t := eng.MakeTime(cfg.StartYear, 1, 1, 0, 0, 0.0)
	stop := eng.MakeTime(cfg.StopYear, 1, 1, 0, 0, 0.0)
	for t.TT < stop.TT {
		for _, body := range primaryBodies {
			if err := sampleBody(eng, body, t, obs, emit); err != nil {
				return sum, err
			}
		}
		if err := sampleMoon(eng, t, obs, emit); err != nil {
			return sum, err
		}
		sum.Steps++
		t = eng.AddDays(t, SampleStep)
	}

	if err := bw.Flush(); err != nil {
		return sum, err
	}
	return sum, nil
}

// sampleBody emits the heliocentric vector record for one primary body,
// plus the sky pair for every body but Earth (the observer's own planet
// has no geocentric sky position).
func sampleBody(eng ephem.Engine, body ephem.Body, t ephem.Time, obs ephem.Observer, emit func(record.Record) error) error {
	pos, err := eng.HelioVector(body, t)
	if err != nil {
		return ephem.NewEngineError("HelioVector", body, err)
	}
	if err := emit(record.Vector(body.Name(), pos.T.TT, pos.X, pos.Y, pos.Z)); err != nil {
		return err
	}

	if body == ephem.BodyEarth {
		return nil
	}
	return emitSkyPair(eng, body, body.Name(), t, obs, emit)
}

// sampleMoon emits the geocentric lunar records under the dedicated token.
func sampleMoon(eng ephem.Engine, t ephem.Time, obs ephem.Observer, emit func(record.Record) error) error {
	pos, err := eng.GeoVector(ephem.BodyMoon, t, false)
	if err != nil {
		return ephem.NewEngineError("GeoVector", ephem.BodyMoon, err)
	}
	if err := emit(record.Vector(MoonToken, pos.T.TT, pos.X, pos.Y, pos.Z)); err != nil {
		return err
	}
	return emitSkyPair(eng, ephem.BodyMoon, MoonToken, t, obs, emit)
}

// emitSkyPair computes both equatorial frames and the horizon projection
// for one body and emits the combined sky record.
func emitSkyPair(eng ephem.Engine, body ephem.Body, token string, t ephem.Time, obs ephem.Observer, emit func(record.Record) error) error {
	j2000, err := eng.Equator(body, t, obs, false, false)
	if err != nil {
		return ephem.NewEngineError("Equator", body, err)
	}
	ofdate, err := eng.Equator(body, t, obs, true, true)
	if err != nil {
		return ephem.NewEngineError("Equator", body, err)
	}
	hor, err := eng.Horizon(t, obs, ofdate.RA, ofdate.Dec, ephem.RefractionNone)
	if err != nil {
		return ephem.NewEngineError("Horizon", body, err)
	}
	return emit(record.SkyPair(token, t.TT, t.UT, j2000.RA, j2000.Dec, j2000.Dist, hor.Azimuth, hor.Altitude))
}

// Reference values for the time-conversion gate: 2018-12-02T18:30:12.543Z
// expressed on both time scales.
const (
	timeGateUT = 6910.270978506945
	timeGateTT = 6910.271779431480
)

// VerifyTimeConversion checks the engine's calendar-to-timescale conversion
// against a fixed reference moment. It gates every self-check run: if the
// engine cannot place a known instant on the UT and TT scales to within
// 1e-12 days, no downstream comparison is meaningful.
func VerifyTimeConversion(eng ephem.Engine) error {
	t := eng.MakeTime(2018, 12, 2, 18, 30, 12.543)

	if d := math.Abs(t.UT - timeGateUT); d > 1.0e-12 {
		return &ToleranceError{
			Check: "timegate", Value: d, Limit: 1.0e-12, Unit: "days", Label: "UT",
		}
	}
	if d := math.Abs(t.TT - timeGateTT); d > 1.0e-12 {
		return &ToleranceError{
			Check: "timegate", Value: d, Limit: 1.0e-12, Unit: "days", Label: "TT",
		}
	}
	return nil
}
