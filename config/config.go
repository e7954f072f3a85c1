/*
Package config resolves the run configuration once, at process start.

SOURCES:
  - Year: the clock, read exactly once
  - OutputPath: the -f flag, or schedule.csv
  - LogLevel: LOG_LEVEL environment variable, or "info"
  - Rules: payroll.DefaultRules()

The returned Config is a value. Callers pass it down; nothing re-reads the
clock or the environment afterwards, so every month of one run shares the
same year.
*/
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/warp/payroll-schedule/export"
	"github.com/warp/payroll-schedule/generic"
	"github.com/warp/payroll-schedule/payroll"
)

// EnvLogLevel names the environment variable holding the log level.
const EnvLogLevel = "LOG_LEVEL"

// DefaultLogLevel applies when EnvLogLevel is unset.
const DefaultLogLevel = "info"

type Config struct {
	Year       int
	OutputPath string
	LogLevel   string
	Rules      payroll.Rules
}

// Load builds the configuration for one run.
func Load(clock generic.Clock, outputPath string) (Config, error) {
	cfg := Config{
		Year:       payroll.ResolveYear(clock),
		OutputPath: outputPath,
		LogLevel:   strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
		Rules:      payroll.DefaultRules(),
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = export.DefaultFileName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the year and the rules.
func (c Config) Validate() error {
	if err := generic.ValidateYear(c.Year); err != nil {
		return fmt.Errorf("config: year %d: %w", c.Year, err)
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
