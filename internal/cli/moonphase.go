package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ephemcheck/internal/check"
)

// NewMoonPhaseCommand creates the moonphase command.
func NewMoonPhaseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moonphase <fixture>",
		Short: "Validate the lunar quarter sequence",
		Long: `Validate a tabulated lunar quarter log against the engine's
incremental quarter search: elongation within one arc-minute, consecutive
quarters within each year, and found times within 120 seconds.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMoonPhase(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runMoonPhase(opts *RootOptions, path string, cmd *cobra.Command) error {
	rc, err := newRunContext(opts, cmd)
	if err != nil {
		return err
	}

	f, err := rc.openFixture(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sum, checkErr := check.MoonQuarters(rc.eng, f, path)
	rc.record("moonphase", path, sum.MaxDiffSeconds, "seconds", checkErr)
	if checkErr != nil {
		return failValidation(rc.formatter, checkErr)
	}

	if opts.Format == "json" {
		return rc.formatter.Success(sum)
	}
	return rc.formatter.Success(fmt.Sprintf(
		"✓ %d lines, %d sequenced quarters, max %.2f arcmin / %.1f s",
		sum.Lines, sum.Quarters, sum.MaxArcmin, sum.MaxDiffSeconds))
}
