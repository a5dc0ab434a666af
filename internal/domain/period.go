package domain

import (
	"fmt"
	"strings"
	"time"
)

// PeriodKind selects the window a balance is computed over.
type PeriodKind string

const (
	PeriodAllTime      PeriodKind = "ALL_TIME"
	PeriodCalendarYear PeriodKind = "CALENDAR_YEAR"
	PeriodFiscalYear   PeriodKind = "FISCAL_YEAR"
)

func ParsePeriodKind(v string) (PeriodKind, error) {
	k := PeriodKind(strings.ToUpper(strings.TrimSpace(v)))
	switch k {
	case PeriodAllTime, PeriodCalendarYear, PeriodFiscalYear:
		return k, nil
	default:
		return "", fmt.Errorf("unknown accounting period %q", v)
	}
}

// AccountingPeriod is the organization's entitlement period. FiscalStartMonth
// is only read for FISCAL_YEAR.
type AccountingPeriod struct {
	Kind             PeriodKind `json:"kind"`
	FiscalStartMonth time.Month `json:"fiscal_start_month,omitempty"`
}

func DefaultAccountingPeriod() AccountingPeriod {
	return AccountingPeriod{Kind: PeriodAllTime}
}

func (p AccountingPeriod) Validate() error {
	switch p.Kind {
	case PeriodAllTime, PeriodCalendarYear:
		return nil
	case PeriodFiscalYear:
		if p.FiscalStartMonth < time.January || p.FiscalStartMonth > time.December {
			return fmt.Errorf("fiscal start month must be between 1 and 12, got %d", p.FiscalStartMonth)
		}
		return nil
	default:
		return fmt.Errorf("unknown accounting period %q", p.Kind)
	}
}

// Window is an inclusive date range. An unbounded window contains every date.
type Window struct {
	Start   time.Time
	End     time.Time
	Bounded bool
}

// WindowFor returns the period window containing date.
func (p AccountingPeriod) WindowFor(date time.Time) Window {
	y, m, _ := date.Date()
	switch p.Kind {
	case PeriodCalendarYear:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(1, 0, -1), Bounded: true}
	case PeriodFiscalYear:
		startYear := y
		if m < p.FiscalStartMonth {
			startYear--
		}
		start := time.Date(startYear, p.FiscalStartMonth, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(1, 0, -1), Bounded: true}
	case PeriodAllTime:
		return Window{}
	default:
		return Window{}
	}
}

func (w Window) Contains(date time.Time) bool {
	if !w.Bounded {
		return true
	}
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(w.Start) && !d.After(w.End)
}

func (w Window) String() string {
	if !w.Bounded {
		return "all-time"
	}
	return "[" + w.Start.Format("2006-01-02") + ", " + w.End.Format("2006-01-02") + "]"
}
