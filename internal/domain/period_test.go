package domain_test

import (
	"testing"
	"time"

	"go-leave/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccountingPeriod_WindowFor(t *testing.T) {
	t.Run("all time is unbounded", func(t *testing.T) {
		w := domain.DefaultAccountingPeriod().WindowFor(date(2024, 6, 1))
		assert.False(t, w.Bounded)
		assert.True(t, w.Contains(date(1999, 1, 1)))
		assert.Equal(t, "all-time", w.String())
	})

	t.Run("calendar year", func(t *testing.T) {
		p := domain.AccountingPeriod{Kind: domain.PeriodCalendarYear}
		w := p.WindowFor(date(2024, 6, 1))
		assert.Equal(t, date(2024, 1, 1), w.Start)
		assert.Equal(t, date(2024, 12, 31), w.End)
		assert.True(t, w.Contains(date(2024, 12, 31)))
		assert.False(t, w.Contains(date(2025, 1, 1)))
	})

	t.Run("fiscal year before start month belongs to previous year", func(t *testing.T) {
		p := domain.AccountingPeriod{Kind: domain.PeriodFiscalYear, FiscalStartMonth: time.April}
		w := p.WindowFor(date(2024, 2, 10))
		assert.Equal(t, date(2023, 4, 1), w.Start)
		assert.Equal(t, date(2024, 3, 31), w.End)

		w = p.WindowFor(date(2024, 4, 1))
		assert.Equal(t, date(2024, 4, 1), w.Start)
	})
}

func TestAccountingPeriod_Validate(t *testing.T) {
	assert.NoError(t, domain.AccountingPeriod{Kind: domain.PeriodCalendarYear}.Validate())
	assert.Error(t, domain.AccountingPeriod{Kind: domain.PeriodFiscalYear}.Validate())
	assert.Error(t, domain.AccountingPeriod{Kind: "WEEKLY"}.Validate())
}

func TestLeavePolicy_QuotaFor(t *testing.T) {
	override := domain.Quota{domain.LeaveTypeAnnual: decimal.NewFromInt(20)}
	p := domain.LeavePolicy{
		Defaults:  domain.DefaultQuota(),
		Overrides: map[string]domain.Quota{"emp-1": override},
	}

	t.Run("override replaces the whole record", func(t *testing.T) {
		q := p.QuotaFor("emp-1")
		assert.True(t, q[domain.LeaveTypeAnnual].Equal(decimal.NewFromInt(20)))
		_, hasSick := q[domain.LeaveTypeSick]
		assert.False(t, hasSick)
	})

	t.Run("defaults without override", func(t *testing.T) {
		q := p.QuotaFor("emp-2")
		assert.True(t, q[domain.LeaveTypeSick].Equal(decimal.NewFromInt(10)))
		assert.False(t, p.Override("emp-2").IsSome())
	})
}

func TestWorkflows_ApproverFor(t *testing.T) {
	w := domain.Workflows{"Sales": domain.ApproverHR}
	assert.Equal(t, domain.ApproverHR, w.ApproverFor("Sales"))
	assert.Equal(t, domain.ApproverLineManager, w.ApproverFor("Engineering"))
}

func TestParseEnums(t *testing.T) {
	lt, err := domain.ParseLeaveType("annual")
	assert.NoError(t, err)
	assert.Equal(t, domain.LeaveTypeAnnual, lt)
	_, err = domain.ParseLeaveType("SABBATICAL")
	assert.Error(t, err)

	r, err := domain.ParseRole(" hr ")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleHR, r)

	assert.True(t, domain.StatusApproved.Terminal())
	assert.False(t, domain.StatusPendingHR.Terminal())
	assert.False(t, domain.LeaveTypeUnpaid.Metered())
}
