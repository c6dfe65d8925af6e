package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Engine  string // registered engine name, "" to auto-resolve
	Results string // run-history database path, "" to disable
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the ephemcheck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ephemcheck",
		Short: "Regression harness for ephemeris engines",
		Long: `ephemcheck validates an ephemeris engine against golden records and
tabulated astronomical events: position samples, seasonal markers, lunar
quarters, planetary longitudes, and maximum elongations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Engine, "engine", "", "registered ephemeris engine name")
	cmd.PersistentFlags().StringVar(&opts.Results, "results", "", "run-history database path")

	// Add subcommands
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewSeasonsCommand(opts))
	cmd.AddCommand(NewMoonPhaseCommand(opts))
	cmd.AddCommand(NewElongationCommand(opts))
	cmd.AddCommand(NewRiseSetCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
