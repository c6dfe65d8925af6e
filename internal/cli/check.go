package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ephemcheck/internal/check"
	"github.com/roach88/ephemcheck/internal/ephem"
)

// CheckConfig is the YAML run configuration for the golden generator.
type CheckConfig struct {
	Observer  ephem.Observer `yaml:"observer"`
	StartYear int            `yaml:"start_year"`
	StopYear  int            `yaml:"stop_year"`
	Output    string         `yaml:"output"`
}

// DefaultCheckConfig returns the sampling run the golden records were
// produced with.
func DefaultCheckConfig() CheckConfig {
	gen := check.DefaultGenerateConfig()
	return CheckConfig{
		Observer:  gen.Observer,
		StartYear: gen.StartYear,
		StopYear:  gen.StopYear,
		Output:    "check.txt",
	}
}

// LoadCheckConfig reads a YAML configuration, filling unset fields from the
// defaults. An empty path returns the defaults unchanged.
func LoadCheckConfig(path string) (CheckConfig, error) {
	cfg := DefaultCheckConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.StartYear >= cfg.StopYear {
		return cfg, fmt.Errorf("config: start_year %d must precede stop_year %d", cfg.StartYear, cfg.StopYear)
	}
	if cfg.Output == "" {
		return cfg, fmt.Errorf("config: output path must not be empty")
	}
	return cfg, nil
}

// CheckResult is the success payload of the check command.
type CheckResult struct {
	Output  string `json:"output"`
	Steps   int    `json:"steps"`
	Records int    `json:"records"`
}

// NewCheckCommand creates the check command: verify the engine's time
// conversion, then sample every body over the configured span and write
// the record stream for later diffing against a golden copy.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath, outputPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Generate a full position sample stream",
		Long: `Generate the position sample stream: an observer header followed by
heliocentric vectors and sky coordinates for every body at every step of
the configured span. The engine's calendar conversion is verified against
a known timestamp before any sampling starts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, configPath, outputPath, cmd)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file (overrides config)")

	return cmd
}

func runCheck(opts *RootOptions, configPath, outputPath string, cmd *cobra.Command) error {
	rc, err := newRunContext(opts, cmd)
	if err != nil {
		return err
	}

	cfg, err := LoadCheckConfig(configPath)
	if err != nil {
		rc.formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "config", err)
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}

	rc.formatter.VerboseLog("Verifying calendar conversion")
	if err := check.VerifyTimeConversion(rc.eng); err != nil {
		rc.record("check", cfg.Output, 0, "", err)
		return failValidation(rc.formatter, err)
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		rc.formatter.Error(ErrCodeIO, err.Error(), nil)
		return WrapExitError(ExitCommandError, "create output", err)
	}

	rc.formatter.VerboseLog("Sampling %d..%d from (%g, %g, %g)",
		cfg.StartYear, cfg.StopYear,
		cfg.Observer.Latitude, cfg.Observer.Longitude, cfg.Observer.Height)

	sum, genErr := check.Generate(rc.eng, check.GenerateConfig{
		Observer:  cfg.Observer,
		StartYear: cfg.StartYear,
		StopYear:  cfg.StopYear,
	}, out)
	if closeErr := out.Close(); genErr == nil && closeErr != nil {
		genErr = closeErr
	}
	rc.record("check", cfg.Output, 0, "", genErr)
	if genErr != nil {
		return failValidation(rc.formatter, genErr)
	}

	result := CheckResult{Output: cfg.Output, Steps: sum.Steps, Records: sum.Records}
	if opts.Format == "json" {
		return rc.formatter.Success(result)
	}
	return rc.formatter.Success(fmt.Sprintf("✓ Wrote %d records (%d steps) to %s",
		result.Records, result.Steps, result.Output))
}
