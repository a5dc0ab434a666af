package leave

import (
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/domain"

	"github.com/shopspring/decimal"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=ANNUAL CASUAL SICK MATERNITY PATERNITY EARNED UNPAID"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}

type PreviewDaysRequest struct {
	LeaveType string `json:"leave_type" binding:"omitempty,oneof=ANNUAL CASUAL SICK MATERNITY PATERNITY EARNED UNPAID"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type ReviewLeaveRequest struct {
	Action  string `json:"action" binding:"required,oneof=approve reject"`
	Remarks string `json:"remarks" binding:"max=1000"`
}

// AdminLeaveRequest sets every field directly. TotalDays is computed from the
// calendar when omitted.
type AdminLeaveRequest struct {
	EmployeeID      string           `json:"employee_id" binding:"required,uuid"`
	LeaveType       string           `json:"leave_type" binding:"required,oneof=ANNUAL CASUAL SICK MATERNITY PATERNITY EARNED UNPAID"`
	StartDate       string           `json:"start_date" binding:"required"`
	EndDate         string           `json:"end_date" binding:"required"`
	TotalDays       *decimal.Decimal `json:"total_days"`
	Reason          string           `json:"reason" binding:"max=1000"`
	Status          string           `json:"status" binding:"required,oneof=PENDING_MANAGER PENDING_HR APPROVED REJECTED"`
	ManagerRemarks  string           `json:"manager_remarks" binding:"max=1000"`
	ApproverRemarks string           `json:"approver_remarks" binding:"max=1000"`
}

type ListLeavesQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING_MANAGER PENDING_HR APPROVED REJECTED"`
	LeaveType  string `form:"leave_type" binding:"omitempty,oneof=ANNUAL CASUAL SICK MATERNITY PATERNITY EARNED UNPAID"`
	Year       int    `form:"year" binding:"omitempty,min=1000,max=9999"`
}

type LeaveResponse struct {
	ID               string          `json:"id"`
	OrganizationID   string          `json:"organization_id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	LeaveType        string          `json:"leave_type"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	TotalDays        decimal.Decimal `json:"total_days"`
	WeekendsExcluded int             `json:"weekends_excluded"`
	HolidaysExcluded int             `json:"holidays_excluded"`
	Reason           string          `json:"reason"`
	Status           string          `json:"status"`
	AppliedDate      string          `json:"applied_date"`
	LineManagerID    *string         `json:"line_manager_id,omitempty"`
	ManagerRemarks   string          `json:"manager_remarks,omitempty"`
	ApproverRemarks  string          `json:"approver_remarks,omitempty"`
	CreatedBy        string          `json:"created_by"`
	ReviewedBy       *string         `json:"reviewed_by,omitempty"`
	ReviewedAt       *string         `json:"reviewed_at,omitempty"`
}

type BalanceEntryResponse struct {
	LeaveType string          `json:"leave_type"`
	Quota     decimal.Decimal `json:"quota"`
	Used      decimal.Decimal `json:"used"`
	Available decimal.Decimal `json:"available"`
}

type BalanceResponse struct {
	EmployeeID string                 `json:"employee_id"`
	Period     string                 `json:"period"`
	Window     string                 `json:"window"`
	Balances   []BalanceEntryResponse `json:"balances"`
}

type PreviewResponse struct {
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	Days             int              `json:"days"`
	WeekendsExcluded int              `json:"weekends_excluded"`
	HolidaysExcluded int              `json:"holidays_excluded"`
	LeaveType        string           `json:"leave_type,omitempty"`
	Available        *decimal.Decimal `json:"available,omitempty"`
	Remaining        *decimal.Decimal `json:"remaining,omitempty"`
	Sufficient       *bool            `json:"sufficient,omitempty"`
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:               l.ID.String(),
		OrganizationID:   l.OrganizationID.String(),
		EmployeeID:       l.EmployeeID.String(),
		EmployeeName:     l.EmployeeName,
		LeaveType:        string(l.LeaveType),
		StartDate:        l.StartDate.Format(calendar.DateLayout),
		EndDate:          l.EndDate.Format(calendar.DateLayout),
		TotalDays:        l.TotalDays,
		WeekendsExcluded: l.WeekendsExcluded,
		HolidaysExcluded: l.HolidaysExcluded,
		Reason:           l.Reason,
		Status:           string(l.Status),
		AppliedDate:      l.AppliedDate.Format(calendar.DateLayout),
		ManagerRemarks:   l.ManagerRemarks,
		ApproverRemarks:  l.ApproverRemarks,
		CreatedBy:        l.CreatedBy.String(),
	}
	if l.LineManagerID.Valid {
		v := l.LineManagerID.UUID.String()
		resp.LineManagerID = &v
	}
	if l.ReviewedBy.Valid {
		v := l.ReviewedBy.UUID.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

// mapToBalanceResponse lists entries in the canonical leave type order.
func mapToBalanceResponse(b Balance) BalanceResponse {
	resp := BalanceResponse{
		EmployeeID: b.EmployeeID,
		Period:     string(b.Period.Kind),
		Window:     b.Window.String(),
		Balances:   make([]BalanceEntryResponse, 0, len(b.Entries)),
	}
	for _, t := range domain.LeaveTypes {
		e, ok := b.Entries[t]
		if !ok {
			continue
		}
		resp.Balances = append(resp.Balances, BalanceEntryResponse{
			LeaveType: string(t),
			Quota:     e.Quota,
			Used:      e.Used,
			Available: e.Available,
		})
	}
	return resp
}
