package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/nhp-simulation/internal/config"
	"github.com/rshade/nhp-simulation/internal/logging"
	"github.com/rshade/nhp-simulation/internal/pricing"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// app is the state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	out    io.Writer
	errOut io.Writer
	now    func() time.Time

	configPath string
	outputDir  string
	chartsDir  string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger zerolog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, now: time.Now}

	root := &cobra.Command{
		Use:   "nhp-sim",
		Short: "NHP smartphone compute scenario simulation",
		Long: `nhp-sim models a network that pools idle smartphone AI accelerators
into a distributed compute grid. It runs every scenario category under four
severity variants and writes CSV, JSON, a bilingual markdown report and charts.

Environment Variables:
  NHP_OUTPUT_DIR   Output directory (default: output)
  NHP_LOG_LEVEL    Log level: debug, info, warn, error (default: info)
  NHP_LOG_FORMAT   Log format: console or json (default: console)
  NHP_CHARTS       Render charts: true or false (default: true)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVarP(&a.outputDir, "output", "o", "", "Output directory (overrides NHP_OUTPUT_DIR)")
	flags.StringVar(&a.chartsDir, "charts-dir", "", "Chart directory (default: <output>/charts)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (overrides NHP_LOG_LEVEL)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: console or json (overrides NHP_LOG_FORMAT)")

	root.AddCommand(
		newRunCmd(a),
		newSummaryCmd(a),
		newExportCmd(a),
		newPhaseCmd(a),
		newPricingCmd(a),
	)
	return root
}

// setup resolves configuration in order: defaults, config file, environment,
// flags. The logger is built last so it reflects the final settings.
func (a *app) setup(cmd *cobra.Command) error {
	bootstrap := logging.New("warn", "console", a.errOut)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(bootstrap)

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = a.outputDir
	}
	if flags.Changed("charts-dir") {
		cfg.ChartsDir = a.chartsDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}

	// An untouched charts dir follows the output dir.
	if cfg.ChartsDir == "" || cfg.ChartsDir == config.Default().ChartsDir {
		cfg.ChartsDir = filepath.Join(cfg.OutputDir, "charts")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.LogLevel, cfg.LogFormat, a.errOut)
	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("output_dir", cfg.OutputDir).
		Str("charts_dir", cfg.ChartsDir).
		Strs("formats", cfg.Formats).
		Msg("configuration resolved")
	return nil
}

// catalog returns the built-in reference catalog, with the configured price
// sheet swapped in when there is one. The result is validated.
func (a *app) catalog() (*refdata.Catalog, error) {
	catalog := refdata.Default()
	if a.cfg.PricingFile != "" {
		data, err := os.ReadFile(a.cfg.PricingFile)
		if err != nil {
			return nil, fmt.Errorf("reading price sheet: %w", err)
		}
		providers, err := pricing.ParsePriceSheet(data)
		if err != nil {
			return nil, fmt.Errorf("price sheet %s: %w", a.cfg.PricingFile, err)
		}
		catalog = catalog.WithCloudProviders(providers)
		a.logger.Info().
			Str("file", a.cfg.PricingFile).
			Int("providers", len(providers)).
			Msg("using custom price sheet")
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("reference catalog: %w", err)
	}
	return catalog, nil
}

// runner builds a scenario runner from the resolved configuration.
func (a *app) runner() (*scenario.Runner, error) {
	variants, err := a.cfg.VariantSet()
	if err != nil {
		return nil, err
	}

	catalog, err := a.catalog()
	if err != nil {
		return nil, err
	}

	client, err := pricing.NewClient(a.logger, catalog.CloudProviders)
	if err != nil {
		return nil, fmt.Errorf("building pricing index: %w", err)
	}
	return scenario.NewRunner(catalog, variants, client, a.logger), nil
}
