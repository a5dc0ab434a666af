package leave

import (
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"

	"github.com/google/uuid"
)

// Actor is the authenticated employee acting on a request.
type Actor struct {
	EmployeeID uuid.UUID
	Role       domain.Role
}

type stageAction struct {
	from   domain.LeaveStatus
	action domain.Action
}

var transitions = map[stageAction]domain.LeaveStatus{
	{domain.StatusPendingManager, domain.ActionApprove}: domain.StatusPendingHR,
	{domain.StatusPendingManager, domain.ActionReject}:  domain.StatusRejected,
	{domain.StatusPendingHR, domain.ActionApprove}:      domain.StatusApproved,
	{domain.StatusPendingHR, domain.ActionReject}:       domain.StatusRejected,
}

// Transition is the result of one review step.
type Transition struct {
	From  domain.LeaveStatus
	To    domain.LeaveStatus
	Event events.LeaveEvent
}

// Lifecycle owns the standard review transitions. Administrator edits do not
// go through it.
type Lifecycle struct{}

// Next returns the status reached from `from` by action.
func (Lifecycle) Next(from domain.LeaveStatus, action domain.Action) (domain.LeaveStatus, error) {
	if from.Terminal() {
		return "", leaveerrors.ErrTerminalState
	}
	to, ok := transitions[stageAction{from, action}]
	if !ok {
		return "", leaveerrors.ErrInvalidTransition
	}
	return to, nil
}

// Authorize is the role gate for the request's current stage. At
// PENDING_MANAGER only a MANAGER may act, and only the frozen line manager
// when one was recorded.
func (Lifecycle) Authorize(l Leave, actor Actor) error {
	if !l.Status.Terminal() && l.EmployeeID == actor.EmployeeID {
		return leaveerrors.ErrSelfReview
	}
	switch l.Status {
	case domain.StatusPendingManager:
		if actor.Role != domain.RoleManager {
			return leaveerrors.ErrForbiddenTransition
		}
		if l.LineManagerID.Valid && l.LineManagerID.UUID != actor.EmployeeID {
			return leaveerrors.ErrNotLineManager
		}
		return nil
	case domain.StatusPendingHR:
		if actor.Role == domain.RoleHR || actor.Role == domain.RoleAdmin {
			return nil
		}
		return leaveerrors.ErrForbiddenTransition
	case domain.StatusApproved, domain.StatusRejected:
		return leaveerrors.ErrTerminalState
	default:
		return leaveerrors.ErrInvalidTransition
	}
}

// Transition applies a review to l in place. Manager-stage remarks land in
// ManagerRemarks, HR-stage remarks in ApproverRemarks; the other field is
// left untouched.
func (lc Lifecycle) Transition(l *Leave, actor Actor, action domain.Action, remarks string, at time.Time) (Transition, error) {
	from := l.Status
	to, err := lc.Next(from, action)
	if err != nil {
		return Transition{}, err
	}
	if err := lc.Authorize(*l, actor); err != nil {
		return Transition{}, err
	}

	switch from {
	case domain.StatusPendingManager:
		l.ManagerRemarks = remarks
	case domain.StatusPendingHR:
		l.ApproverRemarks = remarks
	case domain.StatusApproved, domain.StatusRejected:
		return Transition{}, leaveerrors.ErrTerminalState
	}

	l.Status = to
	l.ReviewedBy = uuid.NullUUID{UUID: actor.EmployeeID, Valid: true}
	reviewedAt := at.UTC()
	l.ReviewedAt = &reviewedAt

	ev := newLeaveEvent(events.LeaveReviewed, *l, actor, at)
	ev.FromStatus = string(from)
	ev.Remarks = remarks

	return Transition{From: from, To: to, Event: ev}, nil
}

func newLeaveEvent(eventType string, l Leave, actor Actor, at time.Time) events.LeaveEvent {
	return events.LeaveEvent{
		EventType:      eventType,
		LeaveID:        l.ID.String(),
		EmployeeID:     l.EmployeeID.String(),
		OrganizationID: l.OrganizationID.String(),
		LeaveType:      string(l.LeaveType),
		ToStatus:       string(l.Status),
		TotalDays:      l.TotalDays,
		ActorID:        actor.EmployeeID.String(),
		ActorRole:      string(actor.Role),
		OccurredAt:     at.UTC(),
	}
}
