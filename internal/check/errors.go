package check

import (
	"errors"
	"fmt"
)

// FixtureError reports a malformed tabulated fixture line. Fixture files
// are trusted reference data; a shape violation means the file is wrong,
// so the error is always fatal.
type FixtureError struct {
	File    string
	Line    int
	Message string
}

// Error implements the error interface.
func (e *FixtureError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.File, e.Line, e.Message)
}

// NewFixtureError creates a FixtureError for the given file position.
func NewFixtureError(file string, line int, format string, args ...any) *FixtureError {
	return &FixtureError{File: file, Line: line, Message: fmt.Sprintf(format, args...)}
}

// IsFixtureError reports whether err is (or wraps) a fixture error.
func IsFixtureError(err error) bool {
	var fe *FixtureError
	return errors.As(err, &fe)
}

// ToleranceError reports a numeric, temporal, or angular deviation beyond
// a check's fixed ceiling. There is no advisory mode: exceeding a ceiling
// fails the run.
type ToleranceError struct {
	Check string  // which validator detected the violation
	File  string  // fixture file, "" for embedded data
	Line  int     // fixture line, 0 for embedded data
	Value float64 // observed magnitude
	Limit float64 // the ceiling that was exceeded
	Unit  string  // "minutes", "seconds", "arcmin", "hours"
	Label string  // extra context: event name, body name
}

// Error implements the error interface.
func (e *ToleranceError) Error() string {
	where := e.File
	if where != "" && e.Line > 0 {
		where = fmt.Sprintf("%s line %d", e.File, e.Line)
	}
	if where == "" {
		where = e.Label
	} else if e.Label != "" {
		where += " (" + e.Label + ")"
	}
	return fmt.Sprintf("%s: %s: excessive error %g %s (limit %g)",
		e.Check, where, e.Value, e.Unit, e.Limit)
}

// IsToleranceError reports whether err is (or wraps) a tolerance error.
func IsToleranceError(err error) bool {
	var te *ToleranceError
	return errors.As(err, &te)
}

// SequenceError reports a violated ordering or periodicity invariant of a
// search sequence: a lunar quarter out of order, or relative-longitude
// events spaced too unevenly.
type SequenceError struct {
	Check   string
	File    string
	Line    int
	Message string
}

// Error implements the error interface.
func (e *SequenceError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s: %s line %d: %s", e.Check, e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Check, e.Message)
}

// IsSequenceError reports whether err is (or wraps) a sequence error.
func IsSequenceError(err error) bool {
	var se *SequenceError
	return errors.As(err, &se)
}

// ErrRiseSetUnimplemented is returned when a caller asks the rise/set
// validator to verify timing. The validator currently checks fixture shape
// only; the rise/set correctness model is an acknowledged gap.
var ErrRiseSetUnimplemented = errors.New("rise/set timing validation is not implemented")
