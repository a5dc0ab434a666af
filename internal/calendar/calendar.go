// Package calendar classifies dates as working days, weekends or holidays and
// counts the deductible days in a leave range.
package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type DayKind string

const (
	Working DayKind = "WORKING"
	Weekend DayKind = "WEEKEND"
	Holiday DayKind = "HOLIDAY"
)

// WorkingDays is the set of weekdays counted as working days org-wide.
// The zero value has no working days.
type WorkingDays [7]bool

func NewWorkingDays(days ...time.Weekday) WorkingDays {
	var w WorkingDays
	for _, d := range days {
		w[d] = true
	}
	return w
}

func DefaultWorkingDays() WorkingDays {
	return NewWorkingDays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}

// ParseWorkingDays accepts English weekday names in any case.
func ParseWorkingDays(names []string) (WorkingDays, error) {
	var w WorkingDays
	for _, name := range names {
		d, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return WorkingDays{}, fmt.Errorf("unknown weekday %q", name)
		}
		w[d] = true
	}
	return w, nil
}

var weekdayByName = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		m[strings.ToLower(d.String())] = d
	}
	return m
}()

func (w WorkingDays) Contains(d time.Weekday) bool { return w[d] }

// Names lists the working days starting from Monday.
func (w WorkingDays) Names() []string {
	names := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		d := time.Weekday(i % 7)
		if w[d] {
			names = append(names, d.String())
		}
	}
	return names
}

func (w WorkingDays) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Names())
}

func (w *WorkingDays) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseWorkingDays(names)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// HolidayEntry is a holiday on an exact calendar date. There is no recurrence:
// 2024-12-25 does not match 2025-12-25.
type HolidayEntry struct {
	Date     time.Time
	Name     string
	Category string
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(v string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(v))
}

// HolidaySet indexes holidays by date for constant-time lookup.
type HolidaySet map[string]HolidayEntry

func NewHolidaySet(holidays []HolidayEntry) HolidaySet {
	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[DateOf(h.Date).Format(DateLayout)] = h
	}
	return set
}

func (s HolidaySet) Lookup(date time.Time) (HolidayEntry, bool) {
	h, ok := s[DateOf(date).Format(DateLayout)]
	return h, ok
}

func (s HolidaySet) classify(date time.Time, workingDays WorkingDays) DayKind {
	if !workingDays.Contains(date.Weekday()) {
		return Weekend
	}
	if _, ok := s.Lookup(date); ok {
		return Holiday
	}
	return Working
}

// Classify resolves a single date. A non-working weekday is a WEEKEND even
// when a holiday falls on it.
func Classify(date time.Time, workingDays WorkingDays, holidays []HolidayEntry) DayKind {
	return NewHolidaySet(holidays).classify(date, workingDays)
}
