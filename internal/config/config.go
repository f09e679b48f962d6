// Package config loads nhp-sim settings from a YAML file and the
// environment. Precedence, lowest to highest: built-in defaults, the config
// file, NHP_* environment variables, then command-line flags (applied by the
// caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// Output formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCharts   = "charts"
)

// Environment variables read by ApplyEnv.
const (
	EnvOutputDir = "NHP_OUTPUT_DIR"
	EnvLogLevel  = "NHP_LOG_LEVEL"
	EnvLogFormat = "NHP_LOG_FORMAT"
	EnvCharts    = "NHP_CHARTS"
)

// Config holds run settings.
type Config struct {
	OutputDir   string          `yaml:"output_dir"`
	ChartsDir   string          `yaml:"charts_dir"`
	Formats     []string        `yaml:"formats"`
	LogLevel    string          `yaml:"log_level"`
	LogFormat   string          `yaml:"log_format"`
	PricingFile string          `yaml:"pricing_file"`
	Variants    *VariantsConfig `yaml:"variants"`
}

// VariantsConfig overrides the built-in variant assumptions. Each list, when
// present, must hold exactly one value per variant in canonical order.
type VariantsConfig struct {
	Uptime     []float64 `yaml:"uptime"`
	Coverage   []float64 `yaml:"coverage"`
	Growth     []float64 `yaml:"growth"`
	TokenPrice []float64 `yaml:"token_price"`
	DCReplaced []float64 `yaml:"dc_replaced"`
	Overhead   []float64 `yaml:"overhead"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir: "output",
		ChartsDir: "output/charts",
		Formats:   []string{FormatCSV, FormatJSON, FormatMarkdown, FormatCharts},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays NHP_* environment variables. Malformed values are logged
// and ignored.
func (c *Config) ApplyEnv(logger zerolog.Logger) {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			c.LogLevel = strings.ToLower(v)
		} else {
			logger.Warn().Str("value", v).Msg("invalid " + EnvLogLevel + ", using " + c.LogLevel)
		}
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		switch f := strings.ToLower(v); f {
		case "console", "json":
			c.LogFormat = f
		default:
			logger.Warn().Str("value", v).Msg("invalid " + EnvLogFormat + ", using " + c.LogFormat)
		}
	}

	if v := os.Getenv(EnvCharts); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn().Str("value", v).Msg("invalid " + EnvCharts + ", ignoring")
		} else {
			c.SetFormat(FormatCharts, enabled)
		}
	}

	logger.Debug().
		Str("output_dir", c.OutputDir).
		Strs("formats", c.Formats).
		Str("log_level", c.LogLevel).
		Msg("configuration applied")
}

// Enabled reports whether format is in the format list.
func (c *Config) Enabled(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// SetFormat adds or removes format from the format list.
func (c *Config) SetFormat(format string, enabled bool) {
	if enabled == c.Enabled(format) {
		return
	}
	if enabled {
		c.Formats = append(c.Formats, format)
		return
	}
	kept := c.Formats[:0:0]
	for _, f := range c.Formats {
		if f != format {
			kept = append(kept, f)
		}
	}
	c.Formats = kept
}

// Validate checks formats, log settings and variant list lengths.
func (c *Config) Validate() error {
	var errs []error
	for _, f := range c.Formats {
		switch f {
		case FormatCSV, FormatJSON, FormatMarkdown, FormatCharts:
		default:
			errs = append(errs, fmt.Errorf("unknown format %q", f))
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format %q: want console or json", c.LogFormat))
	}
	if c.Variants != nil {
		if _, err := c.Variants.Apply(refdata.DefaultVariants()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// VariantSet returns the variant assumptions: the defaults with any
// configured overrides applied.
func (c *Config) VariantSet() (refdata.VariantSet, error) {
	if c.Variants == nil {
		return refdata.DefaultVariants(), nil
	}
	return c.Variants.Apply(refdata.DefaultVariants())
}

// Apply overlays the configured lists on base.
func (v *VariantsConfig) Apply(base refdata.VariantSet) (refdata.VariantSet, error) {
	fields := []struct {
		name string
		src  []float64
		dst  *[refdata.NumVariants]float64
	}{
		{"uptime", v.Uptime, &base.Uptime},
		{"coverage", v.Coverage, &base.Coverage},
		{"growth", v.Growth, &base.Growth},
		{"token_price", v.TokenPrice, &base.TokenPrice},
		{"dc_replaced", v.DCReplaced, &base.DCReplaced},
		{"overhead", v.Overhead, &base.Overhead},
	}

	for _, f := range fields {
		if f.src == nil {
			continue
		}
		if len(f.src) != refdata.NumVariants {
			return refdata.VariantSet{}, fmt.Errorf("variants.%s: want %d values, got %d", f.name, refdata.NumVariants, len(f.src))
		}
		copy(f.dst[:], f.src)
	}
	return base, nil
}
