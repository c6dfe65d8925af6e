package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/ephemcheck/internal/ephem"
	"github.com/roach88/ephemcheck/internal/results"
)

// runContext bundles what every validation command needs: the resolved
// engine, the output formatter, and the global options.
type runContext struct {
	opts      *RootOptions
	formatter *OutputFormatter
	eng       ephem.Engine
	started   time.Time
}

// newRunContext resolves the engine selected by the global flags and builds
// the formatter for the command's output streams.
func newRunContext(opts *RootOptions, cmd *cobra.Command) (*runContext, error) {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	eng, err := ephem.Open(opts.Engine)
	if err != nil {
		formatter.Error(ErrCodeEngine, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "engine", err)
	}

	return &runContext{
		opts:      opts,
		formatter: formatter,
		eng:       eng,
		started:   time.Now().UTC(),
	}, nil
}

// newOfflineRunContext builds a context for commands that never touch the
// engine, such as pure stream comparison.
func newOfflineRunContext(opts *RootOptions, cmd *cobra.Command) *runContext {
	return &runContext{
		opts: opts,
		formatter: &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		},
		started: time.Now().UTC(),
	}
}

// engineName reports which engine the run resolved to, for the history row.
func (rc *runContext) engineName() string {
	if rc.eng == nil {
		return "none"
	}
	if rc.opts.Engine != "" {
		return rc.opts.Engine
	}
	if names := ephem.Engines(); len(names) == 1 {
		return names[0]
	}
	return "unknown"
}

// record appends the command outcome to the run-history database when one
// is configured. History is best-effort: a storage failure never changes
// the command's own result, it is only surfaced in verbose mode.
func (rc *runContext) record(command, target string, maxError float64, unit string, runErr error) {
	if rc.opts.Results == "" {
		return
	}

	run := results.Run{
		Command:  command,
		Target:   target,
		Engine:   rc.engineName(),
		Status:   results.StatusPass,
		MaxError: maxError,
		Unit:     unit,
		Started:  rc.started,
		Duration: time.Since(rc.started),
	}
	if runErr != nil {
		run.Status = results.StatusFail
		run.Detail = runErr.Error()
	}

	store, err := results.Open(rc.opts.Results)
	if err != nil {
		rc.formatter.VerboseLog("history: %v", err)
		return
	}
	defer store.Close()

	if _, err := store.RecordRun(context.Background(), run); err != nil {
		rc.formatter.VerboseLog("history: %v", err)
	}
}

// openFixture opens a fixture file, mapping a missing path onto a command
// error with IO code output.
func (rc *runContext) openFixture(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		rc.formatter.Error(ErrCodeIO, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "open fixture", err)
	}
	return f, nil
}
