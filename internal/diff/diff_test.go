package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ephemcheck/internal/record"
)

const sampleStream = `o 29.0000000000000000 -81.0000000000000000 10.0000000000000000
v Sun 7317.5000000000000000 0.0012500000000000 -0.5000000000000000 0.0625000000000000
s Mercury 7317.5000000000000000 7317.4990234375000000 11.2500000000000000 -3.5000000000000000 0.4375000000000000 182.5000000000000000 41.7500000000000000
v GM 7317.5000000000000000 -0.0019531250000000 0.0009765625000000 0.2500000000000000
`

func TestStreams_Identical(t *testing.T) {
	rep, err := Streams(strings.NewReader(sampleStream), strings.NewReader(sampleStream))
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.MaxDiff)
	assert.Equal(t, 0, rep.WorstLine)
	assert.Equal(t, 4, rep.Lines)
}

func TestStreams_WithinTolerance(t *testing.T) {
	// Perturb one field by less than the tolerance.
	perturbed := strings.Replace(sampleStream,
		"-0.5000000000000000", "-0.5000000000000010", 1)
	rep, err := Streams(strings.NewReader(sampleStream), strings.NewReader(perturbed))
	require.NoError(t, err)
	assert.Greater(t, rep.MaxDiff, 0.0)
	assert.LessOrEqual(t, rep.MaxDiff, Tolerance)
	assert.Equal(t, 2, rep.WorstLine)
}

func TestStreams_ToleranceExceeded(t *testing.T) {
	// Perturb the azimuth on line 3 by far more than the tolerance.
	perturbed := strings.Replace(sampleStream,
		"182.5000000000000000", "182.5000001000000000", 1)
	rep, err := Streams(strings.NewReader(sampleStream), strings.NewReader(perturbed))
	require.Error(t, err)

	var te *ToleranceError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 3, rep.WorstLine)
	assert.InDelta(t, 1e-7, rep.MaxDiff, 1e-9)
}

func TestStreams_BodyTimeFieldExcluded(t *testing.T) {
	// A large difference in the leading time field of a body-bearing
	// record is identity, not measurement; it must not trip the tolerance.
	perturbed := strings.Replace(sampleStream,
		"v Sun 7317.5000000000000000", "v Sun 7318.5000000000000000", 1)
	rep, err := Streams(strings.NewReader(sampleStream), strings.NewReader(perturbed))
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.MaxDiff)
	assert.Equal(t, 4, rep.Lines)
}

func TestStreams_ObserverFieldsAllCompared(t *testing.T) {
	perturbed := strings.Replace(sampleStream,
		"o 29.0000000000000000", "o 29.1000000000000000", 1)
	_, err := Streams(strings.NewReader(sampleStream), strings.NewReader(perturbed))
	require.Error(t, err)

	var te *ToleranceError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, te.Report.WorstLine)
}

func TestStreams_LineCountMismatch(t *testing.T) {
	truncated := strings.Join(strings.SplitAfter(sampleStream, "\n")[:2], "")
	_, err := Streams(strings.NewReader(sampleStream), strings.NewReader(truncated))
	require.Error(t, err)

	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeLineCount, ce.Code)
	assert.True(t, IsConsistencyError(err))
}

func TestStreams_RecordTypeMismatch(t *testing.T) {
	a := "o 1.0 2.0 3.0\n"
	b := "v Sun 1.0 2.0 3.0 4.0\n"
	_, err := Streams(strings.NewReader(a), strings.NewReader(b))
	require.Error(t, err)

	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeRecordType, ce.Code)
	assert.Equal(t, 1, ce.Line)
}

func TestStreams_BodyMismatch(t *testing.T) {
	a := "v Mars 1.0 2.0 3.0 4.0\n"
	b := "v Venus 1.0 2.0 3.0 4.0\n"
	_, err := Streams(strings.NewReader(a), strings.NewReader(b))
	require.Error(t, err)

	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeBody, ce.Code)
}

func TestStreams_MalformedRecord(t *testing.T) {
	a := "o 1.0 2.0 3.0\n"
	b := "o 1.0 2.0\n"
	_, err := Streams(strings.NewReader(a), strings.NewReader(b))
	require.Error(t, err)

	var fe *record.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Line)
}

func TestStreams_BlankLine(t *testing.T) {
	// A whitespace-only line inside a stream is a format violation, not a
	// crash and not a silent skip.
	a := "o 1.0 2.0 3.0\n   \n"
	b := "o 1.0 2.0 3.0\n   \n"
	_, err := Streams(strings.NewReader(a), strings.NewReader(b))
	require.Error(t, err)

	var fe *record.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Line)
}

func TestStreams_WorstLineTracksMaximum(t *testing.T) {
	a := sampleStream
	// Two perturbations; the larger one is on line 4.
	b := strings.Replace(a, "0.4375000000000000", "0.4375000100000000", 1)
	b = strings.Replace(b, "0.2500000000000000", "0.2500010000000000", 1)

	rep, err := Streams(strings.NewReader(a), strings.NewReader(b))
	require.Error(t, err)
	assert.Equal(t, 4, rep.WorstLine)
	assert.InDelta(t, 1e-6, rep.MaxDiff, 1e-9)
}

func TestStreams_Empty(t *testing.T) {
	rep, err := Streams(strings.NewReader(""), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Lines)
	assert.Equal(t, 0.0, rep.MaxDiff)
}
