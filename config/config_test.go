package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-schedule/config"
	"github.com/warp/payroll-schedule/export"
	"github.com/warp/payroll-schedule/generic"
	"github.com/warp/payroll-schedule/payroll"
)

var clock2024 = generic.FixedClock{At: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	cfg, err := config.Load(clock2024, "")
	require.NoError(t, err)

	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, export.DefaultFileName, cfg.OutputPath)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, payroll.DefaultRules(), cfg.Rules)
}

func TestLoad_OverridesAndEnvironment(t *testing.T) {
	t.Setenv(config.EnvLogLevel, " DEBUG ")

	cfg, err := config.Load(clock2024, "out/payroll.csv")
	require.NoError(t, err)

	assert.Equal(t, "out/payroll.csv", cfg.OutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_YearIsResolvedOnce(t *testing.T) {
	cfg, err := config.Load(clock2024, "")
	require.NoError(t, err)

	// The config is a value; later clock readings cannot reach it.
	later := generic.FixedClock{At: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 2025, payroll.ResolveYear(later))
	assert.Equal(t, 2024, cfg.Year)
}

func TestValidate(t *testing.T) {
	cfg := config.Config{Year: 0, Rules: payroll.DefaultRules()}
	assert.ErrorIs(t, cfg.Validate(), generic.ErrInvalidYear)

	cfg = config.Config{Year: 2024, Rules: payroll.Rules{ForbiddenDays: generic.Weekend}}
	assert.ErrorIs(t, cfg.Validate(), generic.ErrInvalidBonusDay)
}
