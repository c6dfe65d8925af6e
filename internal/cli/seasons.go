package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ephemcheck/internal/check"
)

// NewSeasonsCommand creates the seasons command.
func NewSeasonsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seasons <fixture>",
		Short: "Validate equinox and solstice times",
		Long: `Validate tabulated equinox and solstice timestamps against the
engine's seasonal markers, within 1.7 minutes of TT. Perihelion and
aphelion rows are shape-checked and skipped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeasons(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSeasons(opts *RootOptions, path string, cmd *cobra.Command) error {
	rc, err := newRunContext(opts, cmd)
	if err != nil {
		return err
	}

	f, err := rc.openFixture(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sum, checkErr := check.Seasons(rc.eng, f, path)
	rc.record("seasons", path, sum.MaxErrorMinutes, "minutes", checkErr)
	if checkErr != nil {
		return failValidation(rc.formatter, checkErr)
	}

	if opts.Format == "json" {
		return rc.formatter.Success(sum)
	}
	return rc.formatter.Success(fmt.Sprintf(
		"✓ %d lines (%d equinoxes, %d solstices), max error %.3f minutes",
		sum.Lines, sum.MarCount+sum.SepCount, sum.JunCount+sum.DecCount,
		sum.MaxErrorMinutes))
}
