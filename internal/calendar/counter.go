package calendar

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("end date is before start date")

// NetDays is the deductible day count for a range with its audit breakdown.
type NetDays struct {
	Days             int `json:"days"`
	WeekendsExcluded int `json:"weekends_excluded"`
	HolidaysExcluded int `json:"holidays_excluded"`
}

// CountNetDays walks every date from start to end inclusive. When end is
// before start it returns a zero count with ErrInvalidRange.
func CountNetDays(start, end time.Time, workingDays WorkingDays, holidays []HolidayEntry) (NetDays, error) {
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return NetDays{}, ErrInvalidRange
	}

	set := NewHolidaySet(holidays)
	var out NetDays
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch set.classify(d, workingDays) {
		case Working:
			out.Days++
		case Weekend:
			out.WeekendsExcluded++
		case Holiday:
			out.HolidaysExcluded++
		}
	}
	return out, nil
}
