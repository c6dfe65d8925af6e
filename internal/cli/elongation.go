package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/ephemcheck/internal/check"
	"github.com/roach88/ephemcheck/internal/ephem"
)

// longitudeBodies are the planets swept by the periodicity walk.
var longitudeBodies = []ephem.Body{
	ephem.BodyMercury,
	ephem.BodyVenus,
	ephem.BodyMars,
	ephem.BodyJupiter,
	ephem.BodySaturn,
	ephem.BodyUranus,
	ephem.BodyNeptune,
	ephem.BodyPluto,
}

// ElongationResult is the success payload of the elongation command.
type ElongationResult struct {
	Oppositions      *check.RelLonSummary           `json:"oppositions,omitempty"`
	Longitudes       []check.PlanetLongitudeSummary `json:"longitudes"`
	MaxElongVerified int                            `json:"max_elong_verified"`
}

// NewElongationCommand creates the elongation command.
func NewElongationCommand(rootOpts *RootOptions) *cobra.Command {
	var oppositionPath, logPath string

	cmd := &cobra.Command{
		Use:   "elongation",
		Short: "Validate longitude searches and maximum elongations",
		Long: `Validate the engine's relative-longitude and maximum-elongation
searches: a five-century periodicity walk per planet, the embedded
greatest-elongation table for Mercury and Venus, and optionally a
tabulated opposition fixture.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElongation(rootOpts, oppositionPath, logPath, cmd)
		},
	}

	cmd.Flags().StringVar(&oppositionPath, "oppositions", "", "tabulated opposition fixture")
	cmd.Flags().StringVar(&logPath, "log", "", "write longitude event records to this file")

	return cmd
}

func runElongation(opts *RootOptions, oppositionPath, logPath string, cmd *cobra.Command) error {
	rc, err := newRunContext(opts, cmd)
	if err != nil {
		return err
	}

	target := "embedded"
	if oppositionPath != "" {
		target = oppositionPath
	}

	var result ElongationResult
	runErr := func() error {
		if oppositionPath != "" {
			f, err := rc.openFixture(oppositionPath)
			if err != nil {
				return err
			}
			defer f.Close()

			sum, err := check.RelativeLongitudeFile(rc.eng, f, oppositionPath, 0.0)
			if err != nil {
				return err
			}
			result.Oppositions = &sum
			rc.formatter.VerboseLog("Oppositions: %d lines, max %.2f minutes",
				sum.Lines, sum.MaxErrorMinutes)
		}

		var log io.Writer = io.Discard
		if logPath != "" {
			f, err := os.Create(logPath)
			if err != nil {
				rc.formatter.Error(ErrCodeIO, err.Error(), nil)
				return WrapExitError(ExitCommandError, "create log", err)
			}
			defer f.Close()
			log = f
		}

		for _, body := range longitudeBodies {
			sum, err := check.PlanetLongitudes(rc.eng, body, log)
			if err != nil {
				return err
			}
			result.Longitudes = append(result.Longitudes, sum)
			rc.formatter.VerboseLog("%s: %d events, interval ratio %.3f (limit %.2f)",
				sum.Body, sum.Events, sum.Ratio, sum.Threshold)
		}

		n, err := check.MaxElongationTable(rc.eng)
		if err != nil {
			return err
		}
		result.MaxElongVerified = n
		return nil
	}()

	rc.record("elongation", target, 0, "", runErr)
	if runErr != nil {
		var exitErr *ExitError
		if errors.As(runErr, &exitErr) {
			return runErr
		}
		return failValidation(rc.formatter, runErr)
	}

	if opts.Format == "json" {
		return rc.formatter.Success(result)
	}
	return rc.formatter.Success(fmt.Sprintf(
		"✓ %d planets swept, %d max-elongation events verified",
		len(result.Longitudes), result.MaxElongVerified))
}
