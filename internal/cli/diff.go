package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ephemcheck/internal/diff"
)

// DiffResult is the success payload of the diff command.
type DiffResult struct {
	Lines     int     `json:"lines"`
	MaxDiff   float64 `json:"max_diff"`
	WorstLine int     `json:"worst_line,omitempty"`
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <golden> <candidate>",
		Short: "Compare two record streams within tolerance",
		Long: `Compare two record streams line by line. Streams must agree on line
count, record shapes, and body tokens exactly; numeric fields may deviate
up to the fixed absolute tolerance.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runDiff(opts *RootOptions, goldenPath, candidatePath string, cmd *cobra.Command) error {
	// No engine needed: diffing is pure stream comparison.
	rc := newOfflineRunContext(opts, cmd)
	formatter := rc.formatter

	golden, err := rc.openFixture(goldenPath)
	if err != nil {
		return err
	}
	defer golden.Close()

	candidate, err := rc.openFixture(candidatePath)
	if err != nil {
		return err
	}
	defer candidate.Close()

	target := goldenPath + " vs " + candidatePath
	rep, diffErr := diff.Streams(golden, candidate)
	rc.record("diff", target, rep.MaxDiff, "absolute", diffErr)
	if diffErr != nil {
		return failValidation(formatter, diffErr)
	}

	result := DiffResult{Lines: rep.Lines, MaxDiff: rep.MaxDiff, WorstLine: rep.WorstLine}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("✓ %d lines match, max diff %.3g (line %d)",
		result.Lines, result.MaxDiff, result.WorstLine))
}
