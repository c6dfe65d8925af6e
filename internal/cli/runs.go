package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ephemcheck/internal/results"
)

// NewRunsCommand creates the runs command, which lists recorded history.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded validation runs",
		Long: `List validation runs recorded in the history database, newest
first. Requires --results.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(rootOpts, limit, cmd)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum rows to list (0 for all)")

	return cmd
}

func runRuns(opts *RootOptions, limit int, cmd *cobra.Command) error {
	rc := newOfflineRunContext(opts, cmd)

	if opts.Results == "" {
		err := fmt.Errorf("runs requires --results")
		rc.formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "config", err)
	}

	store, err := results.Open(opts.Results)
	if err != nil {
		rc.formatter.Error(ErrCodeIO, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open history", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		rc.formatter.Error(ErrCodeIO, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list runs", err)
	}

	if opts.Format == "json" {
		return rc.formatter.Success(runs)
	}

	if len(runs) == 0 {
		return rc.formatter.Success("no recorded runs")
	}
	for _, run := range runs {
		status := "✓"
		if run.Status == results.StatusFail {
			status = "✗"
		}
		line := fmt.Sprintf("%s %s  %-10s %-30s engine=%s",
			status, run.Started.Format("2006-01-02 15:04:05"),
			run.Command, run.Target, run.Engine)
		if run.Detail != "" {
			line += "  " + run.Detail
		}
		fmt.Fprintln(rc.formatter.Writer, line)
	}
	return nil
}
