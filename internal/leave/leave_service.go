package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/domain"
	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EmployeeDirectory interface {
	FindByID(ctx context.Context, organizationID, id string) (employee.Profile, error)
}

type SettingsProvider interface {
	LeavePolicy(ctx context.Context, organizationID string) (domain.LeavePolicy, error)
	Workflows(ctx context.Context, organizationID string) (domain.Workflows, error)
	WorkingDays(ctx context.Context, organizationID string) (calendar.WorkingDays, error)
	AccountingPeriod(ctx context.Context, organizationID string) (domain.AccountingPeriod, error)
}

type HolidayProvider interface {
	ListHolidays(ctx context.Context, organizationID string, start, end time.Time) ([]calendar.HolidayEntry, error)
}

// Dependencies are the collaborators of the leave service. A nil Outbox
// disables event publication; a nil Now uses time.Now.
type Dependencies struct {
	Employees EmployeeDirectory
	Settings  SettingsProvider
	Holidays  HolidayProvider
	Outbox    kafka.OutboxRepository
	Now       func() time.Time
}

type Service interface {
	Apply(ctx context.Context, organizationID string, actor Actor, req ApplyLeaveRequest) (LeaveResponse, error)
	Review(ctx context.Context, organizationID string, actor Actor, id string, req ReviewLeaveRequest) (LeaveResponse, error)
	PreviewDays(ctx context.Context, organizationID string, actor Actor, req PreviewDaysRequest) (PreviewResponse, error)
	GetBalance(ctx context.Context, organizationID string, actor Actor, employeeID string) (BalanceResponse, error)
	GetAll(ctx context.Context, organizationID string, actor Actor, query ListLeavesQuery) ([]LeaveResponse, error)
	GetByID(ctx context.Context, organizationID string, actor Actor, id string) (LeaveResponse, error)

	// Admin operations set status directly and skip routing, balance and
	// transition checks.
	AdminCreate(ctx context.Context, organizationID string, actor Actor, req AdminLeaveRequest) (LeaveResponse, error)
	AdminUpdate(ctx context.Context, organizationID string, actor Actor, id string, req AdminLeaveRequest) (LeaveResponse, error)
	AdminDelete(ctx context.Context, organizationID string, actor Actor, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	settings  SettingsProvider
	holidays  HolidayProvider
	outbox    kafka.OutboxRepository
	lifecycle Lifecycle
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: deps.Employees,
		settings:  deps.Settings,
		holidays:  deps.Holidays,
		outbox:    deps.Outbox,
		now:       now,
		logger:    l,
	}
}

// orgSettings is what one request needs from the settings collaborator.
type orgSettings struct {
	policy      domain.LeavePolicy
	workflows   domain.Workflows
	workingDays calendar.WorkingDays
	period      domain.AccountingPeriod
}

func (s *service) loadSettings(ctx context.Context, organizationID string) (orgSettings, error) {
	var out orgSettings
	var err error
	if out.policy, err = s.settings.LeavePolicy(ctx, organizationID); err != nil {
		return orgSettings{}, err
	}
	if out.workflows, err = s.settings.Workflows(ctx, organizationID); err != nil {
		return orgSettings{}, err
	}
	if out.workingDays, err = s.settings.WorkingDays(ctx, organizationID); err != nil {
		return orgSettings{}, err
	}
	if out.period, err = s.settings.AccountingPeriod(ctx, organizationID); err != nil {
		return orgSettings{}, err
	}
	return out, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := calendar.ParseDate(v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

// countDays runs the day counter for one organization's calendar.
func (s *service) countDays(ctx context.Context, organizationID string, start, end time.Time, workingDays calendar.WorkingDays) (calendar.NetDays, error) {
	holidays, err := s.holidays.ListHolidays(ctx, organizationID, start, end)
	if err != nil {
		return calendar.NetDays{}, err
	}
	net, err := calendar.CountNetDays(start, end, workingDays, holidays)
	if errors.Is(err, calendar.ErrInvalidRange) {
		return calendar.NetDays{}, leaveerrors.ErrInvalidDateRange
	}
	return net, err
}

func (s *service) Apply(ctx context.Context, organizationID string, actor Actor, req ApplyLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("apply leave requested",
		zap.String("organization_id", organizationID),
		zap.String("employee_id", actor.EmployeeID.String()),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType, err := domain.ParseLeaveType(req.LeaveType)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return LeaveResponse{}, apperror.InvalidField("organization_id")
	}

	profile, err := s.employees.FindByID(ctx, organizationID, actor.EmployeeID.String())
	if err != nil {
		return LeaveResponse{}, err
	}
	cfg, err := s.loadSettings(ctx, organizationID)
	if err != nil {
		return LeaveResponse{}, err
	}

	net, err := s.countDays(ctx, organizationID, start, end, cfg.workingDays)
	if err != nil {
		return LeaveResponse{}, err
	}
	days := decimal.NewFromInt(int64(net.Days))
	if !days.IsPositive() {
		log.Warn("apply leave covers no working day",
			zap.Int("weekends_excluded", net.WeekendsExcluded),
			zap.Int("holidays_excluded", net.HolidaysExcluded),
		)
		return LeaveResponse{}, leaveerrors.ErrZeroDurationRequest
	}

	stage, err := DetermineInitialStage(profile.Department, profile.LineManagerID, cfg.workflows)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	employeeID := actor.EmployeeID.String()

	if err := qtx.LockEmployee(ctx, organizationID, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, mapRepositoryError(err)
	}

	overlap, err := qtx.HasOverlap(ctx, organizationID, employeeID, start, end, "")
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if overlap {
		log.Warn("apply leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	// Balance is computed from rows read under the employee lock.
	approved, err := qtx.ListApprovedByEmployee(ctx, organizationID, employeeID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	ledger := Ledger{Policy: cfg.policy, Period: cfg.period}
	balance := ledger.Balance(employeeID, start, approved)
	if err := ledger.Validate(leaveType, days, balance); err != nil {
		log.Warn("apply leave rejected by ledger", zap.Error(err))
		return LeaveResponse{}, err
	}

	now := s.now()
	l := &Leave{
		ID:               uuid.New(),
		OrganizationID:   orgUUID,
		EmployeeID:       actor.EmployeeID,
		EmployeeName:     profile.FullName,
		LeaveType:        leaveType,
		StartDate:        start,
		EndDate:          end,
		TotalDays:        days,
		WeekendsExcluded: net.WeekendsExcluded,
		HolidaysExcluded: net.HolidaysExcluded,
		Reason:           req.Reason,
		Status:           stage,
		AppliedDate:      calendar.DateOf(now),
		CreatedBy:        actor.EmployeeID,
	}
	if id, ok := profile.LineManagerID.Get(); ok {
		l.LineManagerID = uuid.NullUUID{UUID: id, Valid: true}
	}

	if err := qtx.Create(ctx, l); err != nil {
		log.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	ev := newLeaveEvent(events.LeaveApplied, *l, actor, now)
	if err := s.enqueue(ctx, tx, ev); err != nil {
		log.Error("apply leave outbox failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}

	log.Info("leave applied",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("status", string(l.Status)),
		zap.String("total_days", days.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) Review(ctx context.Context, organizationID string, actor Actor, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidAction
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("review leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The status is read again here; an administrator may have resolved the
	// request since the reviewer loaded it.
	l, err := qtx.FindByID(ctx, organizationID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	t, err := s.lifecycle.Transition(l, actor, action, req.Remarks, s.now())
	if err != nil {
		log.Warn("review leave rejected",
			zap.String("leave_id", id),
			zap.String("status", string(l.Status)),
			zap.String("actor_role", string(actor.Role)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	updated, err := qtx.UpdateStatusIf(ctx, l, t.From)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !updated {
		log.Warn("review leave lost race", zap.String("leave_id", id), zap.String("expected_status", string(t.From)))
		return LeaveResponse{}, leaveerrors.ErrConcurrentReview
	}

	if err := s.enqueue(ctx, tx, t.Event); err != nil {
		log.Error("review leave outbox failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("review leave commit failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}

	log.Info("leave reviewed",
		zap.String("leave_id", id),
		zap.String("from_status", string(t.From)),
		zap.String("to_status", string(t.To)),
		zap.String("actor_id", actor.EmployeeID.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) PreviewDays(ctx context.Context, organizationID string, actor Actor, req PreviewDaysRequest) (PreviewResponse, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return PreviewResponse{}, err
	}
	cfg, err := s.loadSettings(ctx, organizationID)
	if err != nil {
		return PreviewResponse{}, err
	}
	net, err := s.countDays(ctx, organizationID, start, end, cfg.workingDays)
	if err != nil {
		return PreviewResponse{}, err
	}

	resp := PreviewResponse{
		StartDate:        start.Format(calendar.DateLayout),
		EndDate:          end.Format(calendar.DateLayout),
		Days:             net.Days,
		WeekendsExcluded: net.WeekendsExcluded,
		HolidaysExcluded: net.HolidaysExcluded,
	}
	if req.LeaveType == "" {
		return resp, nil
	}

	leaveType, err := domain.ParseLeaveType(req.LeaveType)
	if err != nil {
		return PreviewResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	resp.LeaveType = string(leaveType)
	if !leaveType.Metered() {
		return resp, nil
	}

	employeeID := actor.EmployeeID.String()
	approved, err := s.repo.ListApprovedByEmployee(ctx, organizationID, employeeID)
	if err != nil {
		return PreviewResponse{}, mapRepositoryError(err)
	}
	ledger := Ledger{Policy: cfg.policy, Period: cfg.period}
	balance := ledger.Balance(employeeID, start, approved)

	days := decimal.NewFromInt(int64(net.Days))
	sufficient := ledger.Validate(leaveType, days, balance) == nil
	resp.Sufficient = &sufficient
	if available, capped := balance.Limit(leaveType); capped {
		remaining := available.Sub(days)
		resp.Available = &available
		resp.Remaining = &remaining
	}
	return resp, nil
}

// GetBalance is visible to the employee, their line manager, HR and ADMIN.
func (s *service) GetBalance(ctx context.Context, organizationID string, actor Actor, employeeID string) (BalanceResponse, error) {
	parsed, err := uuid.Parse(employeeID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	// Canonical form: the ledger and policy overrides key on uuid.String().
	employeeID = parsed.String()

	profile, err := s.employees.FindByID(ctx, organizationID, employeeID)
	if err != nil {
		return BalanceResponse{}, err
	}
	if !canViewEmployee(actor, profile) {
		return BalanceResponse{}, leaveerrors.ErrForbiddenLeave
	}

	policy, err := s.settings.LeavePolicy(ctx, organizationID)
	if err != nil {
		return BalanceResponse{}, err
	}
	period, err := s.settings.AccountingPeriod(ctx, organizationID)
	if err != nil {
		return BalanceResponse{}, err
	}

	approved, err := s.repo.ListApprovedByEmployee(ctx, organizationID, employeeID)
	if err != nil {
		return BalanceResponse{}, mapRepositoryError(err)
	}

	ledger := Ledger{Policy: policy, Period: period}
	return mapToBalanceResponse(ledger.Balance(employeeID, s.now(), approved)), nil
}

// GetAll restricts employees to their own requests and managers to their own
// plus the ones they review. HR and ADMIN see the whole organization.
func (s *service) GetAll(ctx context.Context, organizationID string, actor Actor, query ListLeavesQuery) ([]LeaveResponse, error) {
	filter := ListFilter{
		EmployeeID: query.EmployeeID,
		Year:       query.Year,
	}
	if query.Status != "" {
		status, err := domain.ParseLeaveStatus(query.Status)
		if err != nil {
			return nil, leaveerrors.ErrInvalidStatus
		}
		filter.Status = status
	}
	if query.LeaveType != "" {
		leaveType, err := domain.ParseLeaveType(query.LeaveType)
		if err != nil {
			return nil, leaveerrors.ErrInvalidLeaveType
		}
		filter.LeaveType = leaveType
	}

	switch actor.Role {
	case domain.RoleEmployee:
		filter.EmployeeID = actor.EmployeeID.String()
	case domain.RoleManager:
		filter.ReviewerID = actor.EmployeeID.String()
	case domain.RoleHR, domain.RoleAdmin:
	default:
		return nil, leaveerrors.ErrForbiddenLeave
	}

	leaves, err := s.repo.FindAll(ctx, organizationID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, organizationID string, actor Actor, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !canViewLeave(actor, *l) {
		return LeaveResponse{}, leaveerrors.ErrForbiddenLeave
	}
	return mapToResponse(*l), nil
}

func canViewLeave(actor Actor, l Leave) bool {
	switch actor.Role {
	case domain.RoleHR, domain.RoleAdmin:
		return true
	case domain.RoleManager:
		return l.EmployeeID == actor.EmployeeID ||
			(l.LineManagerID.Valid && l.LineManagerID.UUID == actor.EmployeeID)
	case domain.RoleEmployee:
		return l.EmployeeID == actor.EmployeeID
	default:
		return false
	}
}

func canViewEmployee(actor Actor, p employee.Profile) bool {
	switch actor.Role {
	case domain.RoleHR, domain.RoleAdmin:
		return true
	case domain.RoleManager:
		if p.ID == actor.EmployeeID {
			return true
		}
		manager, ok := p.LineManagerID.Get()
		return ok && manager == actor.EmployeeID
	case domain.RoleEmployee:
		return p.ID == actor.EmployeeID
	default:
		return false
	}
}

// adminLeave builds the fields an administrator sets directly.
func (s *service) adminLeave(ctx context.Context, organizationID string, req AdminLeaveRequest, l *Leave) error {
	leaveType, err := domain.ParseLeaveType(req.LeaveType)
	if err != nil {
		return leaveerrors.ErrInvalidLeaveType
	}
	status, err := domain.ParseLeaveStatus(req.Status)
	if err != nil {
		return leaveerrors.ErrInvalidStatus
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	profile, err := s.employees.FindByID(ctx, organizationID, req.EmployeeID)
	if err != nil {
		return err
	}

	workingDays, err := s.settings.WorkingDays(ctx, organizationID)
	if err != nil {
		return err
	}
	net, err := s.countDays(ctx, organizationID, start, end, workingDays)
	if err != nil {
		return err
	}

	days := decimal.NewFromInt(int64(net.Days))
	if req.TotalDays != nil {
		if !req.TotalDays.IsPositive() {
			return leaveerrors.ErrInvalidTotalDays
		}
		days = *req.TotalDays
	} else if !days.IsPositive() {
		return leaveerrors.ErrZeroDurationRequest
	}

	if l.EmployeeID != profile.ID {
		l.LineManagerID = uuid.NullUUID{}
		if id, ok := profile.LineManagerID.Get(); ok {
			l.LineManagerID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}
	l.EmployeeID = profile.ID
	l.EmployeeName = profile.FullName
	l.LeaveType = leaveType
	l.StartDate = start
	l.EndDate = end
	l.TotalDays = days
	l.WeekendsExcluded = net.WeekendsExcluded
	l.HolidaysExcluded = net.HolidaysExcluded
	l.Reason = req.Reason
	l.Status = status
	l.ManagerRemarks = req.ManagerRemarks
	l.ApproverRemarks = req.ApproverRemarks
	return nil
}

func (s *service) AdminCreate(ctx context.Context, organizationID string, actor Actor, req AdminLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return LeaveResponse{}, apperror.InvalidField("organization_id")
	}

	now := s.now()
	l := &Leave{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		AppliedDate:    calendar.DateOf(now),
		CreatedBy:      actor.EmployeeID,
	}
	if err := s.adminLeave(ctx, organizationID, req, l); err != nil {
		return LeaveResponse{}, err
	}
	if l.Status.Terminal() {
		l.ReviewedBy = uuid.NullUUID{UUID: actor.EmployeeID, Valid: true}
		reviewedAt := now.UTC()
		l.ReviewedAt = &reviewedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		log.Error("admin create leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, newLeaveEvent(events.LeaveAdminCreated, *l, actor, now)); err != nil {
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}

	log.Info("leave created by administrator",
		zap.String("leave_id", l.ID.String()),
		zap.String("status", string(l.Status)),
		zap.String("actor_id", actor.EmployeeID.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) AdminUpdate(ctx context.Context, organizationID string, actor Actor, id string, req AdminLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByID(ctx, organizationID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	from := l.Status

	if err := s.adminLeave(ctx, organizationID, req, l); err != nil {
		return LeaveResponse{}, err
	}
	now := s.now()
	if l.Status != from {
		l.ReviewedBy = uuid.NullUUID{UUID: actor.EmployeeID, Valid: true}
		reviewedAt := now.UTC()
		l.ReviewedAt = &reviewedAt
	}

	if err := qtx.Update(ctx, l); err != nil {
		log.Error("admin update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	ev := newLeaveEvent(events.LeaveAdminUpdated, *l, actor, now)
	ev.FromStatus = string(from)
	if err := s.enqueue(ctx, tx, ev); err != nil {
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, leaveerrors.ErrPersistence.WithErr(err)
	}

	log.Info("leave updated by administrator",
		zap.String("leave_id", id),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(l.Status)),
	)
	return mapToResponse(*l), nil
}

func (s *service) AdminDelete(ctx context.Context, organizationID string, actor Actor, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return leaveerrors.ErrPersistence.WithErr(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByID(ctx, organizationID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	deleted, err := qtx.Delete(ctx, organizationID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !deleted {
		return leaveerrors.ErrLeaveNotFound
	}

	ev := newLeaveEvent(events.LeaveAdminDeleted, *l, actor, s.now())
	ev.FromStatus = string(l.Status)
	ev.ToStatus = ""
	if err := s.enqueue(ctx, tx, ev); err != nil {
		return leaveerrors.ErrPersistence.WithErr(err)
	}
	if err := tx.Commit(); err != nil {
		return leaveerrors.ErrPersistence.WithErr(err)
	}

	log.Info("leave deleted by administrator", zap.String("leave_id", id))
	return nil
}

// enqueue writes ev to the outbox inside tx so it commits with the change.
func (s *service) enqueue(ctx context.Context, tx *sql.Tx, ev events.LeaveEvent) error {
	if s.outbox == nil {
		return nil
	}
	ev.RequestID = contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     ev.RequestID,
		AggregateType: "leave",
		AggregateID:   ev.LeaveID,
		EventType:     ev.EventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
