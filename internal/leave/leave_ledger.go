package leave

import (
	"fmt"
	"time"

	"go-leave/internal/domain"
	leaveerrors "go-leave/internal/leave/errors"

	"github.com/shopspring/decimal"
)

type BalanceEntry struct {
	Quota     decimal.Decimal
	Used      decimal.Decimal
	Available decimal.Decimal
}

// Balance is derived from policy and approved requests, it is never stored.
type Balance struct {
	EmployeeID string
	Period     domain.AccountingPeriod
	Window     domain.Window
	Entries    map[domain.LeaveType]BalanceEntry
}

// Available is zero for a type the resolved quota does not define. Use Limit
// to tell the two apart.
func (b Balance) Available(t domain.LeaveType) decimal.Decimal {
	available, _ := b.Limit(t)
	return available
}

// Limit reports the remaining days for t and whether the quota caps t at all.
func (b Balance) Limit(t domain.LeaveType) (decimal.Decimal, bool) {
	if e, ok := b.Entries[t]; ok {
		return e.Available, true
	}
	return decimal.Zero, false
}

type Ledger struct {
	Policy domain.LeavePolicy
	Period domain.AccountingPeriod
}

// Balance nets the employee's quota against the APPROVED requests whose start
// date falls inside the period window containing asOf.
func (l Ledger) Balance(employeeID string, asOf time.Time, leaves []Leave) Balance {
	quota := l.Policy.QuotaFor(employeeID)
	window := l.Period.WindowFor(asOf)

	used := make(map[domain.LeaveType]decimal.Decimal, len(quota))
	for _, lv := range leaves {
		if lv.Status != domain.StatusApproved || lv.EmployeeID.String() != employeeID {
			continue
		}
		if !window.Contains(lv.StartDate) {
			continue
		}
		used[lv.LeaveType] = used[lv.LeaveType].Add(lv.TotalDays)
	}

	entries := make(map[domain.LeaveType]BalanceEntry, len(quota))
	for t, q := range quota {
		u := used[t]
		entries[t] = BalanceEntry{Quota: q, Used: u, Available: q.Sub(u)}
	}

	return Balance{
		EmployeeID: employeeID,
		Period:     l.Period,
		Window:     window,
		Entries:    entries,
	}
}

// Validate checks a prospective request against a balance. UNPAID leave and
// types the resolved quota does not list are uncapped and only have to cover
// a positive number of days.
func (l Ledger) Validate(t domain.LeaveType, days decimal.Decimal, balance Balance) error {
	if !days.IsPositive() {
		return leaveerrors.ErrZeroDurationRequest
	}
	if !t.Metered() {
		return nil
	}
	available, capped := balance.Limit(t)
	if !capped {
		return nil
	}
	if days.GreaterThan(available) {
		return &InsufficientBalanceError{
			LeaveType: t,
			Requested: days,
			Available: available,
		}
	}
	return nil
}

// InsufficientBalanceError matches leaveerrors.ErrInsufficientBalance with
// errors.Is and carries the shortfall for the response body.
type InsufficientBalanceError struct {
	LeaveType domain.LeaveType
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: requested %s, available %s",
		e.LeaveType, e.Requested.String(), e.Available.String())
}

func (e *InsufficientBalanceError) Unwrap() error {
	return leaveerrors.ErrInsufficientBalance
}

func (e *InsufficientBalanceError) Details() any {
	return map[string]string{
		"leave_type": string(e.LeaveType),
		"requested":  e.Requested.String(),
		"available":  e.Available.String(),
	}
}
