package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/warp/payroll-schedule/generic"
)

var clock2024 = generic.FixedClock{At: time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)}

func readLines(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	lines, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return lines
}

func TestRootCmd_FileFlag(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "payroll.csv")

	cmd := newRootCmd(clock2024)
	cmd.SetArgs([]string{"-f", path})
	require.NoError(t, cmd.Execute())

	lines := readLines(t, path)
	require.Len(t, lines, 13)
	assert.Equal(t, []string{"Month", "Salary", "Bonus"}, lines[0])
	assert.Equal(t, []string{"January", "2024-01-31", "2024-01-15"}, lines[1])
	assert.Equal(t, []string{"December", "2024-12-31", "2024-12-18"}, lines[12])
}

func TestRootCmd_DefaultFileName(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cmd := newRootCmd(clock2024)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "schedule.csv"))
	assert.Len(t, readLines(t, filepath.Join(dir, "schedule.csv")), 13)
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd(clock2024)
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_UnwritableDestination(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "missing", "payroll.csv")

	cmd := newRootCmd(clock2024)
	cmd.SetArgs([]string{"-f", path})
	assert.Error(t, cmd.Execute())
	assert.NoFileExists(t, path)
}

func TestExecute_ReportsUsageErrors(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--bogus"}, "unknown flag: --bogus"},
		{[]string{"-f"}, "flag needs an argument"},
		{[]string{"extra"}, "extra"},
	}
	for _, tc := range cases {
		// GIVEN: A command line cobra rejects before running
		core, logs := observer.New(zapcore.ErrorLevel)
		cmd := newRootCmd(clock2024)
		cmd.SetArgs(tc.args)

		// WHEN: Executing it
		code := execute(cmd, zap.New(core))

		// THEN: The process fails and the reason is logged
		assert.Equal(t, 1, code, tc.args)
		require.Equal(t, 1, logs.Len(), tc.args)
		assert.Contains(t, logs.All()[0].ContextMap()["error"], tc.want, tc.args)
	}
}

func TestExecute_ReportsRunErrors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "missing", "payroll.csv")
	core, logs := observer.New(zapcore.ErrorLevel)

	cmd := newRootCmd(clock2024)
	cmd.SetArgs([]string{"-f", path})

	assert.Equal(t, 1, execute(cmd, zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("schedule generation failed").Len())
}

func TestExecute_Success(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "payroll.csv")
	core, logs := observer.New(zapcore.ErrorLevel)

	cmd := newRootCmd(clock2024)
	cmd.SetArgs([]string{"-f", path})

	assert.Equal(t, 0, execute(cmd, zap.New(core)))
	assert.Zero(t, logs.Len())
	assert.FileExists(t, path)
}
