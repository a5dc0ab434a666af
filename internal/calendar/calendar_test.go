package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-leave/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func d(v string) time.Time {
	t, err := calendar.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassify(t *testing.T) {
	wd := calendar.DefaultWorkingDays()
	holidays := []calendar.HolidayEntry{
		{Date: d("2024-01-03"), Name: "Founders Day", Category: "COMPANY"},
		{Date: d("2024-01-06"), Name: "Saturday Holiday", Category: "PUBLIC"},
	}

	tests := []struct {
		name string
		date string
		want calendar.DayKind
	}{
		{"plain weekday", "2024-01-02", calendar.Working},
		{"holiday on weekday", "2024-01-03", calendar.Holiday},
		{"holiday on weekend stays weekend", "2024-01-06", calendar.Weekend},
		{"sunday", "2024-01-07", calendar.Weekend},
		{"same day next year is not a holiday", "2025-01-03", calendar.Working},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.Classify(d(tt.date), wd, holidays))
		})
	}
}

func TestClassify_CustomWorkingWeek(t *testing.T) {
	wd, err := calendar.ParseWorkingDays([]string{"sunday", "Monday", "TUESDAY", "Wednesday", "Thursday"})
	assert.NoError(t, err)

	assert.Equal(t, calendar.Working, calendar.Classify(d("2024-01-07"), wd, nil))
	assert.Equal(t, calendar.Weekend, calendar.Classify(d("2024-01-05"), wd, nil))
}

func TestParseWorkingDays(t *testing.T) {
	t.Run("unknown name", func(t *testing.T) {
		_, err := calendar.ParseWorkingDays([]string{"Funday"})
		assert.Error(t, err)
	})

	t.Run("names start on monday", func(t *testing.T) {
		wd := calendar.NewWorkingDays(time.Sunday, time.Monday)
		assert.Equal(t, []string{"Monday", "Sunday"}, wd.Names())
	})

	t.Run("json round trip", func(t *testing.T) {
		raw, err := json.Marshal(calendar.DefaultWorkingDays())
		assert.NoError(t, err)
		assert.JSONEq(t, `["Monday","Tuesday","Wednesday","Thursday","Friday"]`, string(raw))

		var wd calendar.WorkingDays
		assert.NoError(t, json.Unmarshal(raw, &wd))
		assert.Equal(t, calendar.DefaultWorkingDays(), wd)
	})
}
