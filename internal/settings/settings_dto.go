package settings

import (
	"time"

	"go-leave/internal/domain"

	"github.com/shopspring/decimal"
)

type UpdatePolicyRequest struct {
	Defaults  map[string]decimal.Decimal            `json:"defaults" binding:"required"`
	Overrides map[string]map[string]decimal.Decimal `json:"overrides"`
}

type SetOverrideRequest struct {
	Quota map[string]decimal.Decimal `json:"quota" binding:"required"`
}

type UpsertWorkflowRequest struct {
	Department   string `json:"department" binding:"required"`
	ApproverRole string `json:"approver_role" binding:"required"`
}

type UpdateWorkingDaysRequest struct {
	WorkingDays []string `json:"working_days" binding:"required,min=1"`
}

type UpdateAccountingPeriodRequest struct {
	Kind             string `json:"kind" binding:"required"`
	FiscalStartMonth int    `json:"fiscal_start_month" binding:"omitempty,min=1,max=12"`
}

type WorkflowResponse struct {
	Department   string `json:"department"`
	ApproverRole string `json:"approver_role"`
}

type SettingsResponse struct {
	Policy      domain.LeavePolicy      `json:"policy"`
	Workflows   []WorkflowResponse      `json:"workflows"`
	WorkingDays []string                `json:"working_days"`
	Period      domain.AccountingPeriod `json:"period"`
	Window      string                  `json:"current_window"`
}

func (s Snapshot) Response(today time.Time) SettingsResponse {
	return SettingsResponse{
		Policy:      s.Policy,
		Workflows:   workflowResponses(s.Workflows),
		WorkingDays: s.WorkingDays.Names(),
		Period:      s.Period,
		Window:      s.Period.WindowFor(today).String(),
	}
}

func parseQuota(raw map[string]decimal.Decimal) (domain.Quota, error) {
	q := make(domain.Quota, len(raw))
	for k, v := range raw {
		t, err := domain.ParseLeaveType(k)
		if err != nil {
			return nil, err
		}
		q[t] = v
	}
	return q, q.Validate()
}
