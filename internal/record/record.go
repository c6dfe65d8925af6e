// Package record implements the line-oriented golden record protocol.
//
// A golden file is a sequence of newline-terminated ASCII records. Each
// record is a single line whose first character selects the shape:
//
//	o <lat> <lon> <height>                     observer site
//	v <body> <t> <x> <y> <z>                   heliocentric position vector
//	s <body> <tt> <ut> <ra> <dec> <dist> <az> <alt>   sky coordinate pair
//
// Numeric fields are written with 16 decimal digits so that records
// re-ingested by the differ lose no comparison precision. Decoding is
// strict: a wrong type tag, a wrong field count, or a malformed body token
// is always a hard error, never a partial record.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type tags for the three record shapes.
const (
	TagObserver = 'o'
	TagVector   = 'v'
	TagSkyPair  = 's'
)

// Field arities, counting numeric fields only (the body token is separate).
const (
	observerFields = 3
	vectorFields   = 4
	skyPairFields  = 7
)

// maxBodyToken bounds the body token length accepted by the decoder.
const maxBodyToken = 9

// Record is one decoded golden record. Exactly one of the shape
// constructors produces it; Tag discriminates the variant.
type Record struct {
	Tag    byte
	Body   string    // body token; empty for observer records
	Fields []float64 // numeric fields, in wire order
}

// Observer builds an observer record.
func Observer(lat, lon, height float64) Record {
	return Record{Tag: TagObserver, Fields: []float64{lat, lon, height}}
}

// Vector builds a heliocentric vector record for the named body.
func Vector(body string, t, x, y, z float64) Record {
	return Record{Tag: TagVector, Body: body, Fields: []float64{t, x, y, z}}
}

// SkyPair builds a sky coordinate record for the named body.
func SkyPair(body string, tt, ut, ra, dec, dist, az, alt float64) Record {
	return Record{Tag: TagSkyPair, Body: body, Fields: []float64{tt, ut, ra, dec, dist, az, alt}}
}

// HasBody reports whether the record's shape carries a body token.
func (r Record) HasBody() bool {
	return r.Tag == TagVector || r.Tag == TagSkyPair
}

// FormatError reports a malformed record line. It is always fatal: the
// protocol has no tolerance for partial or reinterpreted records.
type FormatError struct {
	Line    int    // 1-based line number, 0 when unknown
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("record format error at line %d: %s", e.Line, e.Message)
	}
	return "record format error: " + e.Message
}

// IsFormatError reports whether err is (or wraps) a format error.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func formatErrorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// requiredFields returns the numeric arity for a type tag, or -1 for an
// unknown tag.
func requiredFields(tag byte) int {
	switch tag {
	case TagObserver:
		return observerFields
	case TagVector:
		return vectorFields
	case TagSkyPair:
		return skyPairFields
	default:
		return -1
	}
}

// validBodyToken reports whether tok is a legal body token: non-empty,
// purely alphabetic, at most maxBodyToken characters.
func validBodyToken(tok string) bool {
	if tok == "" || len(tok) > maxBodyToken {
		return false
	}
	for _, r := range tok {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// Decode parses one record line. lnum is used only for error reporting.
func Decode(line string, lnum int) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Record{}, formatErrorf(lnum, "empty record line")
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Record{}, formatErrorf(lnum, "blank record line")
	}
	tag := tokens[0][0]
	if len(tokens[0]) != 1 || requiredFields(tag) < 0 {
		return Record{}, formatErrorf(lnum, "%q is not a valid record type", tokens[0])
	}

	rec := Record{Tag: tag}
	rest := tokens[1:]

	if rec.HasBody() {
		if len(rest) == 0 {
			return Record{}, formatErrorf(lnum, "record type %q requires a body token", tag)
		}
		if !validBodyToken(rest[0]) {
			return Record{}, formatErrorf(lnum, "invalid body token %q", rest[0])
		}
		rec.Body = rest[0]
		rest = rest[1:]
	}

	want := requiredFields(tag)
	if len(rest) != want {
		return Record{}, formatErrorf(lnum, "record type %q has %d numeric fields, expected %d",
			tag, len(rest), want)
	}

	rec.Fields = make([]float64, want)
	for i, tok := range rest {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Record{}, formatErrorf(lnum, "field %d of record type %q is not numeric: %q",
				i+1, tag, tok)
		}
		rec.Fields[i] = f
	}

	return rec, nil
}

// Encode renders the record as one line, without a trailing newline.
// Encoding a malformed record (bad tag, bad arity, bad body token)
// fails rather than emitting a partial line.
func Encode(r Record) (string, error) {
	want := requiredFields(r.Tag)
	if want < 0 {
		return "", formatErrorf(0, "%q is not a valid record type", r.Tag)
	}
	if len(r.Fields) != want {
		return "", formatErrorf(0, "record type %q has %d numeric fields, expected %d",
			r.Tag, len(r.Fields), want)
	}

	var b strings.Builder
	b.WriteByte(r.Tag)

	if r.HasBody() {
		if !validBodyToken(r.Body) {
			return "", formatErrorf(0, "invalid body token %q", r.Body)
		}
		b.WriteByte(' ')
		b.WriteString(r.Body)
	} else if r.Body != "" {
		return "", formatErrorf(0, "record type %q does not carry a body token", r.Tag)
	}

	for _, f := range r.Fields {
		b.WriteByte(' ')
		b.WriteString(FormatField(f))
	}
	return b.String(), nil
}

// FormatField renders one numeric field with the protocol's fixed
// 16-decimal-digit precision.
func FormatField(f float64) string {
	return strconv.FormatFloat(f, 'f', 16, 64)
}
