package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quota is a per-type leave entitlement in days.
type Quota map[LeaveType]decimal.Decimal

// DefaultQuota is used when an organization has not stored a policy yet.
func DefaultQuota() Quota {
	return Quota{
		LeaveTypeAnnual: decimal.NewFromInt(15),
		LeaveTypeCasual: decimal.NewFromInt(10),
		LeaveTypeSick:   decimal.NewFromInt(10),
	}
}

func (q Quota) Clone() Quota {
	out := make(Quota, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}

func (q Quota) Validate() error {
	for t, days := range q {
		if _, err := ParseLeaveType(string(t)); err != nil {
			return err
		}
		if days.IsNegative() {
			return fmt.Errorf("quota for %s cannot be negative", t)
		}
	}
	return nil
}

// LeavePolicy holds organization defaults plus per-employee overrides. An
// override replaces the defaults as a whole record, it is never merged.
type LeavePolicy struct {
	Defaults  Quota            `json:"defaults"`
	Overrides map[string]Quota `json:"overrides"`
}

func DefaultLeavePolicy() LeavePolicy {
	return LeavePolicy{Defaults: DefaultQuota(), Overrides: map[string]Quota{}}
}

// Override returns the employee's override record when one exists.
func (p LeavePolicy) Override(employeeID string) Optional[Quota] {
	if q, ok := p.Overrides[employeeID]; ok {
		return Some(q)
	}
	return None[Quota]()
}

// QuotaFor resolves the quota that applies to the employee.
func (p LeavePolicy) QuotaFor(employeeID string) Quota {
	if q, ok := p.Override(employeeID).Get(); ok {
		return q
	}
	return p.Defaults
}

// Workflows maps a department name to its first-tier approver role.
type Workflows map[string]ApproverRole

// ApproverFor returns the configured approver, LINE_MANAGER when the
// department has no entry.
func (w Workflows) ApproverFor(department string) ApproverRole {
	if r, ok := w[department]; ok {
		return r
	}
	return ApproverLineManager
}
