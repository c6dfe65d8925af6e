package record

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Observer(t *testing.T) {
	rec, err := Decode("o 29.000000 -81.000000 10.000000", 1)
	require.NoError(t, err)
	assert.Equal(t, byte(TagObserver), rec.Tag)
	assert.Empty(t, rec.Body)
	assert.Equal(t, []float64{29, -81, 10}, rec.Fields)
	assert.False(t, rec.HasBody())
}

func TestDecode_Vector(t *testing.T) {
	rec, err := Decode("v Mars 7317.5 1.25 -0.5 0.0625", 1)
	require.NoError(t, err)
	assert.Equal(t, byte(TagVector), rec.Tag)
	assert.Equal(t, "Mars", rec.Body)
	assert.Equal(t, []float64{7317.5, 1.25, -0.5, 0.0625}, rec.Fields)
	assert.True(t, rec.HasBody())
}

func TestDecode_SkyPair(t *testing.T) {
	rec, err := Decode("s GM 7317.5 7317.4992 11.25 -3.5 0.0025 182.5 41.75", 1)
	require.NoError(t, err)
	assert.Equal(t, byte(TagSkyPair), rec.Tag)
	assert.Equal(t, "GM", rec.Body)
	require.Len(t, rec.Fields, 7)
	assert.Equal(t, 7317.5, rec.Fields[0])
	assert.Equal(t, 41.75, rec.Fields[6])
}

func TestDecode_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{"unknown tag", "x 1.0 2.0 3.0"},
		{"empty line", ""},
		{"blank line", "   "},
		{"tab-only line", "\t"},
		{"whitespace line", " \t \r\n"},
		{"multi-char tag", "ob 1.0 2.0 3.0"},
		{"observer short arity", "o 1.0 2.0"},
		{"observer long arity", "o 1.0 2.0 3.0 4.0"},
		{"vector missing body", "v 1.0 2.0 3.0 4.0"},
		{"vector short arity", "v Mars 1.0 2.0 3.0"},
		{"skypair short arity", "s Mars 1.0 2.0 3.0 4.0 5.0 6.0"},
		{"body too long", "v Brobdingnag 1.0 2.0 3.0 4.0"},
		{"body not alphabetic", "v M4rs 1.0 2.0 3.0 4.0"},
		{"non-numeric field", "o 1.0 two 3.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.line, 7)
			require.Error(t, err)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, 7, fe.Line)
		})
	}
}

func TestDecode_NumericBodyDigitRejected(t *testing.T) {
	// "v 1.0 ..." must not reinterpret the first float as a body token.
	_, err := Decode("v 1.0 2.0 3.0 4.0 5.0", 1)
	require.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	records := []Record{
		Observer(29, -81, 10),
		Vector("Sun", 0, 0.00125, -0.5, 0.0625),
		Vector("Mars", 7317.5, 1.25, -0.5, 0.0625),
		Vector("GM", 7317.5, -0.001953125, 0.0009765625, 0.25),
		SkyPair("Neptune", 7317.5, 7317.4990234375, 22.125, -13.75, 29.90625, 182.5, 41.75),
	}

	for _, rec := range records {
		line, err := Encode(rec)
		require.NoError(t, err)

		got, err := Decode(line, 1)
		require.NoError(t, err)
		assert.Equal(t, rec, got, "decode(encode(r)) must reproduce r for %q", line)
	}
}

func TestEncode_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		rec  Record
	}{
		{"unknown tag", Record{Tag: 'q', Fields: []float64{1}}},
		{"wrong arity", Record{Tag: TagObserver, Fields: []float64{1, 2}}},
		{"missing body", Record{Tag: TagVector, Fields: []float64{1, 2, 3, 4}}},
		{"body on observer", Record{Tag: TagObserver, Body: "Sun", Fields: []float64{1, 2, 3}}},
		{"bad body token", Record{Tag: TagVector, Body: "no body", Fields: []float64{1, 2, 3, 4}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.rec)
			require.Error(t, err)
			var fe *FormatError
			assert.ErrorAs(t, err, &fe)
		})
	}
}

func TestFormatField_Precision(t *testing.T) {
	assert.Equal(t, "29.0000000000000000", FormatField(29))
	assert.Equal(t, "-81.0000000000000000", FormatField(-81))
	assert.Equal(t, "0.0625000000000000", FormatField(0.0625))
}

func TestEncode_GoldenStream(t *testing.T) {
	// A miniature golden file; every value is an exact binary fraction so
	// the formatted output is stable across platforms.
	records := []Record{
		Observer(29, -81, 10),
		Vector("Sun", 7317.5, 0.00125, -0.5, 0.0625),
		SkyPair("Mercury", 7317.5, 7317.4990234375, 11.25, -3.5, 0.4375, 182.5, 41.75),
		Vector("GM", 7317.5, -0.001953125, 0.0009765625, 0.25),
	}

	var b strings.Builder
	for _, rec := range records {
		line, err := Encode(rec)
		require.NoError(t, err)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "record_stream", []byte(b.String()))
}
