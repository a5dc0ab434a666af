package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDays_WeekdaysOnly(t *testing.T) {
	out, err := execute(t, "days", "--start", "2024-01-01", "--end", "2024-01-07")

	require.NoError(t, err)
	assert.Equal(t, "days=5 weekends_excluded=2 holidays_excluded=0\n", out)
}

func TestDays_HolidayOnWorkingDay(t *testing.T) {
	out, err := execute(t, "days",
		"--start", "2024-01-01", "--end", "2024-01-05",
		"--holiday", "2024-01-03=Founders Day",
		"--json",
	)

	require.NoError(t, err)
	assert.JSONEq(t, `{"days":4,"weekends_excluded":0,"holidays_excluded":1}`, out)
}

func TestDays_CustomWorkingWeek(t *testing.T) {
	out, err := execute(t, "days",
		"--start", "2024-01-05", "--end", "2024-01-07",
		"--working-days", "Saturday,Sunday",
	)

	require.NoError(t, err)
	assert.Equal(t, "days=2 weekends_excluded=1 holidays_excluded=0\n", out)
}

func TestDays_Errors(t *testing.T) {
	_, err := execute(t, "days", "--start", "2024-01-05", "--end", "2024-01-01")
	assert.Error(t, err)

	_, err = execute(t, "days", "--start", "01/01/2024", "--end", "2024-01-02")
	assert.ErrorContains(t, err, "invalid --start")

	_, err = execute(t, "days", "--start", "2024-01-01", "--end", "2024-01-02", "--holiday", "tomorrow")
	assert.ErrorContains(t, err, "invalid --holiday")
}
