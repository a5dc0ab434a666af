package calendar_test

import (
	"testing"

	"go-leave/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func TestCountNetDays(t *testing.T) {
	wd := calendar.DefaultWorkingDays()

	t.Run("full working week", func(t *testing.T) {
		got, err := calendar.CountNetDays(d("2024-01-01"), d("2024-01-05"), wd, nil)
		assert.NoError(t, err)
		assert.Equal(t, calendar.NetDays{Days: 5}, got)
	})

	t.Run("holiday mid week", func(t *testing.T) {
		holidays := []calendar.HolidayEntry{{Date: d("2024-01-03"), Name: "Founders Day"}}
		got, err := calendar.CountNetDays(d("2024-01-01"), d("2024-01-05"), wd, holidays)
		assert.NoError(t, err)
		assert.Equal(t, calendar.NetDays{Days: 4, HolidaysExcluded: 1}, got)
	})

	t.Run("weekend only", func(t *testing.T) {
		got, err := calendar.CountNetDays(d("2024-01-06"), d("2024-01-07"), wd, nil)
		assert.NoError(t, err)
		assert.Equal(t, calendar.NetDays{WeekendsExcluded: 2}, got)
	})

	t.Run("single day", func(t *testing.T) {
		got, err := calendar.CountNetDays(d("2024-01-02"), d("2024-01-02"), wd, nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, got.Days)
	})

	t.Run("multi month range", func(t *testing.T) {
		// 60 calendar days across a leap February.
		got, err := calendar.CountNetDays(d("2024-01-01"), d("2024-02-29"), wd, nil)
		assert.NoError(t, err)
		assert.Equal(t, 44, got.Days)
		assert.Equal(t, 16, got.WeekendsExcluded)
	})

	t.Run("inverted range", func(t *testing.T) {
		got, err := calendar.CountNetDays(d("2024-01-05"), d("2024-01-01"), wd, nil)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
		assert.Equal(t, 0, got.Days)
	})

	t.Run("deterministic", func(t *testing.T) {
		holidays := []calendar.HolidayEntry{{Date: d("2024-03-11")}, {Date: d("2024-03-12")}}
		first, err1 := calendar.CountNetDays(d("2024-03-01"), d("2024-03-31"), wd, holidays)
		second, err2 := calendar.CountNetDays(d("2024-03-01"), d("2024-03-31"), wd, holidays)
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, first, second)
		assert.Equal(t, 31, first.Days+first.WeekendsExcluded+first.HolidaysExcluded)
	})
}
