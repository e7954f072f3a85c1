/*
main.go - Payroll schedule generator

PURPOSE:
  Writes the current year's payroll calendar to a CSV file: one header line
  and one line per month with the salary date and the bonus date.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Resolve configuration (year read once from the clock)
  3. Build the rule engine
  4. Compute January..December
  5. Write the file (temp file + rename)

COMMAND-LINE FLAGS:
  -f, --file   Output file (default: schedule.csv)

ENVIRONMENT:
  LOG_LEVEL    debug, info, warn or error (default: info)

EXIT CODES:
  0 on success, 1 on any error, bad flags and extra arguments included.
  Every error is logged before exiting. A failed run leaves no partial file.

EXAMPLES:
  ./schedule
  ./schedule -f payroll-2025.csv
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/payroll-schedule/config"
	"github.com/warp/payroll-schedule/export"
	"github.com/warp/payroll-schedule/generic"
	"github.com/warp/payroll-schedule/logging"
	"github.com/warp/payroll-schedule/payroll"
)

func main() {
	os.Exit(execute(newRootCmd(generic.SystemClock{}), logging.Must(os.Getenv(config.EnvLogLevel))))
}

// execute runs cmd and returns the process exit code. Errors cobra raises
// before RunE (unknown flags, missing flag values, extra arguments) are
// logged here too, since the command silences its own error output.
func execute(cmd *cobra.Command, logger *zap.Logger) int {
	defer logger.Sync()
	if err := cmd.Execute(); err != nil {
		logger.Error("schedule generation failed", zap.Error(err))
		return 1
	}
	return 0
}

// newRootCmd builds the command; the clock is injected for tests.
func newRootCmd(clock generic.Clock) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:           "schedule",
		Short:         "Writes this year's salary and bonus dates to a CSV file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(clock, file)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger := logging.Must(cfg.LogLevel)
			defer logger.Sync()
			undo := zap.ReplaceGlobals(logger)
			defer undo()

			return run(cfg, logger)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", export.DefaultFileName, "output CSV file")
	return c
}

func run(cfg config.Config, logger *zap.Logger) error {
	engine, err := payroll.NewEngine(cfg.Rules)
	if err != nil {
		return err
	}

	s, err := engine.Schedule(cfg.Year)
	if err != nil {
		return err
	}
	logger.Debug("schedule computed", zap.Int("year", s.Year), zap.Int("rows", len(s.Rows)))

	if err := export.WriteFile(cfg.OutputPath, s); err != nil {
		return err
	}
	logger.Info("schedule written",
		zap.Int("year", s.Year),
		zap.String("path", cfg.OutputPath),
		zap.Int("rows", len(s.Rows)),
	)
	return nil
}
