package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveApplied      = "leave_applied"
	LeaveReviewed     = "leave_reviewed"
	LeaveAdminCreated = "leave_admin_created"
	LeaveAdminUpdated = "leave_admin_updated"
	LeaveAdminDeleted = "leave_admin_deleted"
)

// LeaveEvent is published for every state change of a leave request.
// FromStatus is empty on creation and ToStatus is empty on deletion.
type LeaveEvent struct {
	EventType      string          `json:"event_type"`
	RequestID      string          `json:"request_id,omitempty"`
	LeaveID        string          `json:"leave_id"`
	EmployeeID     string          `json:"employee_id"`
	OrganizationID string          `json:"organization_id"`
	LeaveType      string          `json:"leave_type"`
	FromStatus     string          `json:"from_status,omitempty"`
	ToStatus       string          `json:"to_status,omitempty"`
	TotalDays      decimal.Decimal `json:"total_days"`
	ActorID        string          `json:"actor_id"`
	ActorRole      string          `json:"actor_role"`
	Remarks        string          `json:"remarks,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

func IsLeaveEvent(eventType string) bool {
	switch eventType {
	case LeaveApplied, LeaveReviewed, LeaveAdminCreated, LeaveAdminUpdated, LeaveAdminDeleted:
		return true
	default:
		return false
	}
}
