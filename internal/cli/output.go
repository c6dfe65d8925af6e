package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/ephemcheck/internal/check"
	"github.com/roach88/ephemcheck/internal/diff"
	"github.com/roach88/ephemcheck/internal/ephem"
	"github.com/roach88/ephemcheck/internal/record"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure (tolerance exceeded, bad sequence, mismatched streams)
	ExitCommandError = 2 // Command error (invalid paths, unknown engine, bad flags)
)

// Error codes carried in JSON output and error messages.
const (
	ErrCodeFormat     = "FORMAT"     // malformed record or fixture line
	ErrCodeTolerance  = "TOLERANCE"  // deviation beyond a check's ceiling
	ErrCodeSequence   = "SEQUENCE"   // ordering/periodicity invariant violated
	ErrCodeMismatch   = "MISMATCH"   // structural mismatch between diffed streams
	ErrCodeEngine     = "ENGINE"     // ephemeris engine failure
	ErrCodeIO         = "IO"         // file access failure
	ErrCodeConfig     = "CONFIG"     // bad flag or configuration value
	ErrCodeUnverified = "UNVERIFIED" // check cannot vouch for correctness
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps a validation error onto its output code and exit code.
// Anything outside the known validation errors exits as a command error.
func classify(err error) (string, int) {
	switch {
	case check.IsToleranceError(err), diff.IsToleranceError(err):
		return ErrCodeTolerance, ExitFailure
	case check.IsSequenceError(err):
		return ErrCodeSequence, ExitFailure
	case diff.IsConsistencyError(err):
		return ErrCodeMismatch, ExitFailure
	case check.IsFixtureError(err), record.IsFormatError(err):
		return ErrCodeFormat, ExitFailure
	case ephem.IsEngineError(err):
		return ErrCodeEngine, ExitFailure
	case errors.Is(err, check.ErrRiseSetUnimplemented):
		return ErrCodeUnverified, ExitFailure
	default:
		return ErrCodeIO, ExitCommandError
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "TOLERANCE", "SEQUENCE", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// failValidation reports a validation error through the formatter and
// returns the matching ExitError.
func failValidation(f *OutputFormatter, err error) error {
	code, exit := classify(err)
	f.Error(code, err.Error(), nil)
	return &ExitError{Code: exit, Message: code, Err: err}
}
