package domain

import (
	"fmt"
	"strings"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "ANNUAL"
	LeaveTypeCasual    LeaveType = "CASUAL"
	LeaveTypeSick      LeaveType = "SICK"
	LeaveTypeMaternity LeaveType = "MATERNITY"
	LeaveTypePaternity LeaveType = "PATERNITY"
	LeaveTypeEarned    LeaveType = "EARNED"
	LeaveTypeUnpaid    LeaveType = "UNPAID"
)

var LeaveTypes = []LeaveType{
	LeaveTypeAnnual,
	LeaveTypeCasual,
	LeaveTypeSick,
	LeaveTypeMaternity,
	LeaveTypePaternity,
	LeaveTypeEarned,
	LeaveTypeUnpaid,
}

func ParseLeaveType(v string) (LeaveType, error) {
	t := LeaveType(strings.ToUpper(strings.TrimSpace(v)))
	switch t {
	case LeaveTypeAnnual, LeaveTypeCasual, LeaveTypeSick, LeaveTypeMaternity,
		LeaveTypePaternity, LeaveTypeEarned, LeaveTypeUnpaid:
		return t, nil
	default:
		return "", fmt.Errorf("unknown leave type %q", v)
	}
}

// Metered reports whether requests of this type draw down a quota.
func (t LeaveType) Metered() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeCasual, LeaveTypeSick, LeaveTypeMaternity,
		LeaveTypePaternity, LeaveTypeEarned:
		return true
	case LeaveTypeUnpaid:
		return false
	default:
		return true
	}
}

type LeaveStatus string

const (
	StatusPendingManager LeaveStatus = "PENDING_MANAGER"
	StatusPendingHR      LeaveStatus = "PENDING_HR"
	StatusApproved       LeaveStatus = "APPROVED"
	StatusRejected       LeaveStatus = "REJECTED"
)

func ParseLeaveStatus(v string) (LeaveStatus, error) {
	s := LeaveStatus(strings.ToUpper(strings.TrimSpace(v)))
	switch s {
	case StatusPendingManager, StatusPendingHR, StatusApproved, StatusRejected:
		return s, nil
	default:
		return "", fmt.Errorf("unknown leave status %q", v)
	}
}

// Terminal reports whether no standard transition leaves this status.
func (s LeaveStatus) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected:
		return true
	case StatusPendingManager, StatusPendingHR:
		return false
	default:
		return false
	}
}

// ApproverRole is the first-tier approver configured for a department.
type ApproverRole string

const (
	ApproverLineManager ApproverRole = "LINE_MANAGER"
	ApproverHR          ApproverRole = "HR"
	ApproverAdmin       ApproverRole = "ADMIN"
)

func ParseApproverRole(v string) (ApproverRole, error) {
	r := ApproverRole(strings.ToUpper(strings.TrimSpace(v)))
	switch r {
	case ApproverLineManager, ApproverHR, ApproverAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown approver role %q", v)
	}
}

// Action is a reviewer's decision on a pending request.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func ParseAction(v string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(v)))
	switch a {
	case ActionApprove, ActionReject:
		return a, nil
	default:
		return "", fmt.Errorf("unknown review action %q", v)
	}
}
