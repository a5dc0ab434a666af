package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/domain"
	"go-leave/internal/employee"
	"go-leave/internal/events"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	kafkamock "go-leave/internal/messaging/kafka/mock"
	"go-leave/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeLeaveRepository struct {
	findAllFn        func(ctx context.Context, organizationID string, filter leave.ListFilter) ([]leave.Leave, error)
	findByIDFn       func(ctx context.Context, organizationID, id string) (*leave.Leave, error)
	createFn         func(ctx context.Context, l *leave.Leave) error
	updateStatusIfFn func(ctx context.Context, l *leave.Leave, expected domain.LeaveStatus) (bool, error)
	updateFn         func(ctx context.Context, l *leave.Leave) error
	deleteFn         func(ctx context.Context, organizationID, id string) (bool, error)
	listApprovedFn   func(ctx context.Context, organizationID, employeeID string) ([]leave.Leave, error)
	lockEmployeeFn   func(ctx context.Context, organizationID, employeeID string) error
	hasOverlapFn     func(ctx context.Context, organizationID, employeeID string, start, end time.Time, excludeID string) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }

func (f *fakeLeaveRepository) FindAll(ctx context.Context, organizationID string, filter leave.ListFilter) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, organizationID, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, organizationID, id string) (*leave.Leave, error) {
	return f.findByIDFn(ctx, organizationID, id)
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) UpdateStatusIf(ctx context.Context, l *leave.Leave, expected domain.LeaveStatus) (bool, error) {
	if f.updateStatusIfFn != nil {
		return f.updateStatusIfFn(ctx, l, expected)
	}
	return true, nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, organizationID, id string) (bool, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, organizationID, id)
	}
	return true, nil
}

func (f *fakeLeaveRepository) ListApprovedByEmployee(ctx context.Context, organizationID, employeeID string) ([]leave.Leave, error) {
	if f.listApprovedFn != nil {
		return f.listApprovedFn(ctx, organizationID, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) LockEmployee(ctx context.Context, organizationID, employeeID string) error {
	if f.lockEmployeeFn != nil {
		return f.lockEmployeeFn(ctx, organizationID, employeeID)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlap(ctx context.Context, organizationID, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	if f.hasOverlapFn != nil {
		return f.hasOverlapFn(ctx, organizationID, employeeID, start, end, excludeID)
	}
	return false, nil
}

type fakeDirectory struct {
	profiles map[string]employee.Profile
}

func (f *fakeDirectory) FindByID(ctx context.Context, organizationID, id string) (employee.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return employee.Profile{}, leaveerrors.ErrInvalidEmployeeID
	}
	return p, nil
}

type fakeSettings struct {
	policy      domain.LeavePolicy
	workflows   domain.Workflows
	workingDays calendar.WorkingDays
	period      domain.AccountingPeriod
}

func (f *fakeSettings) LeavePolicy(ctx context.Context, organizationID string) (domain.LeavePolicy, error) {
	return f.policy, nil
}

func (f *fakeSettings) Workflows(ctx context.Context, organizationID string) (domain.Workflows, error) {
	return f.workflows, nil
}

func (f *fakeSettings) WorkingDays(ctx context.Context, organizationID string) (calendar.WorkingDays, error) {
	return f.workingDays, nil
}

func (f *fakeSettings) AccountingPeriod(ctx context.Context, organizationID string) (domain.AccountingPeriod, error) {
	return f.period, nil
}

type fakeHolidays struct {
	entries []calendar.HolidayEntry
}

func (f *fakeHolidays) ListHolidays(ctx context.Context, organizationID string, start, end time.Time) ([]calendar.HolidayEntry, error) {
	return f.entries, nil
}

type leaveServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	outbox    *kafkamock.MockOutboxRepository
	repo      *fakeLeaveRepository
	directory *fakeDirectory
	settings  *fakeSettings
	holidays  *fakeHolidays
	service   leave.Service
}

var fixedNow = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	deps := &leaveServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		outbox:    kafkamock.NewMockOutboxRepository(ctrl),
		repo:      &fakeLeaveRepository{},
		directory: &fakeDirectory{profiles: map[string]employee.Profile{}},
		settings: &fakeSettings{
			policy:      domain.DefaultLeavePolicy(),
			workflows:   domain.Workflows{},
			workingDays: calendar.DefaultWorkingDays(),
			period:      domain.DefaultAccountingPeriod(),
		},
		holidays: &fakeHolidays{},
	}
	deps.service = leave.NewService(db, deps.repo, leave.Dependencies{
		Employees: deps.directory,
		Settings:  deps.settings,
		Holidays:  deps.holidays,
		Outbox:    deps.outbox,
		Now:       func() time.Time { return fixedNow },
	}, zap.NewNop())
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// expectEvent captures the payload written to the outbox.
func expectEvent(deps *leaveServiceDeps, got *events.LeaveEvent) {
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
		if got != nil {
			_ = json.Unmarshal(e.Payload, got)
		}
		if e.Topic != events.LeaveLifecycleTopic || e.Status != kafka.OutboxStatusPending {
			return assert.AnError
		}
		return nil
	})
}

func TestLeaveService_Apply(t *testing.T) {
	orgID := uuid.New().String()
	employeeID := uuid.New()
	managerID := uuid.New()
	actor := leave.Actor{EmployeeID: employeeID, Role: domain.RoleEmployee}

	withProfile := func(deps *leaveServiceDeps, department string, manager domain.Optional[uuid.UUID]) {
		deps.directory.profiles[employeeID.String()] = employee.Profile{
			ID: employeeID, FullName: "Rina Sari", Department: department, LineManagerID: manager,
		}
	}

	t.Run("full week routes to line manager", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		withProfile(deps, "Engineering", domain.Some(managerID))
		expectTx(t, deps.sqlMock, true)

		var created *leave.Leave
		deps.repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			created = l
			return nil
		}
		var ev events.LeaveEvent
		expectEvent(deps, &ev)

		ctx := contextutil.WithRequestID(context.Background(), "req-1")
		resp, err := deps.service.Apply(ctx, orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "ANNUAL", StartDate: "2024-01-01", EndDate: "2024-01-05", Reason: "Family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, "PENDING_MANAGER", resp.Status)
		assert.True(t, resp.TotalDays.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, 0, resp.WeekendsExcluded)
		assert.Equal(t, "Rina Sari", resp.EmployeeName)
		assert.Equal(t, managerID, created.LineManagerID.UUID)
		assert.Equal(t, "2024-01-02", resp.AppliedDate)
		assert.Equal(t, events.LeaveApplied, ev.EventType)
		assert.Equal(t, "req-1", ev.RequestID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("holiday is excluded and hr workflow skips manager", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		withProfile(deps, "Sales", domain.Some(managerID))
		deps.settings.workflows = domain.Workflows{"Sales": domain.ApproverHR}
		deps.holidays.entries = []calendar.HolidayEntry{{Date: day(2024, 1, 3), Name: "Company Day"}}
		expectTx(t, deps.sqlMock, true)
		expectEvent(deps, nil)

		resp, err := deps.service.Apply(context.Background(), orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "ANNUAL", StartDate: "2024-01-01", EndDate: "2024-01-05",
		})

		assert.NoError(t, err)
		assert.Equal(t, "PENDING_HR", resp.Status)
		assert.True(t, resp.TotalDays.Equal(decimal.NewFromInt(4)))
		assert.Equal(t, 1, resp.HolidaysExcluded)
	})

	t.Run("weekend only request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		withProfile(deps, "Engineering", domain.Some(managerID))

		_, err := deps.service.Apply(context.Background(), orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "ANNUAL", StartDate: "2024-01-06", EndDate: "2024-01-07",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrZeroDurationRequest)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("insufficient balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		withProfile(deps, "Engineering", domain.Some(managerID))
		expectTx(t, deps.sqlMock, false)

		locked := false
		deps.repo.lockEmployeeFn = func(ctx context.Context, org, eid string) error {
			locked = true
			return nil
		}
		deps.repo.listApprovedFn = func(ctx context.Context, org, eid string) ([]leave.Leave, error) {
			assert.True(t, locked)
			return []leave.Leave{
				approvedLeave(employeeID, domain.LeaveTypeAnnual, day(2023, 3, 6), 3),
				approvedLeave(employeeID, domain.LeaveTypeAnnual, day(2023, 6, 5), 4),
				approvedLeave(employeeID, domain.LeaveTypeAnnual, day(2023, 9, 4), 3),
			}, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			t.Fatal("create must not run")
			return nil
		}

		_, err := deps.service.Apply(context.Background(), orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "ANNUAL", StartDate: "2024-01-08", EndDate: "2024-01-15",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("overlap", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		withProfile(deps, "Engineering", domain.None[uuid.UUID]())
		expectTx(t, deps.sqlMock, false)
		deps.repo.hasOverlapFn = func(ctx context.Context, org, eid string, start, end time.Time, excludeID string) (bool, error) {
			assert.Equal(t, day(2024, 1, 1), start)
			assert.Equal(t, "", excludeID)
			return true, nil
		}

		_, err := deps.service.Apply(context.Background(), orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "SICK", StartDate: "2024-01-01", EndDate: "2024-01-02",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("inverted range", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		_, err := deps.service.Apply(context.Background(), orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "ANNUAL", StartDate: "2024-01-05", EndDate: "2024-01-01",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("unpaid ignores balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		withProfile(deps, "Engineering", domain.None[uuid.UUID]())
		deps.settings.policy = domain.LeavePolicy{Defaults: domain.Quota{}}
		expectTx(t, deps.sqlMock, true)
		expectEvent(deps, nil)

		resp, err := deps.service.Apply(context.Background(), orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "UNPAID", StartDate: "2024-01-01", EndDate: "2024-01-31",
		})
		assert.NoError(t, err)
		assert.True(t, resp.TotalDays.Equal(decimal.NewFromInt(23)))
		assert.Equal(t, "PENDING_HR", resp.Status)
	})

	t.Run("maternity is uncapped under the default policy", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		withProfile(deps, "Engineering", domain.Some(managerID))
		expectTx(t, deps.sqlMock, true)
		expectEvent(deps, nil)

		resp, err := deps.service.Apply(context.Background(), orgID, actor, leave.ApplyLeaveRequest{
			LeaveType: "MATERNITY", StartDate: "2024-01-01", EndDate: "2024-03-29",
		})
		assert.NoError(t, err)
		assert.Equal(t, "MATERNITY", resp.LeaveType)
		assert.Equal(t, "PENDING_MANAGER", resp.Status)
	})
}

func TestLeaveService_Review(t *testing.T) {
	orgID := uuid.New()
	managerID := uuid.New()
	employeeID := uuid.New()
	manager := leave.Actor{EmployeeID: managerID, Role: domain.RoleManager}
	hr := leave.Actor{EmployeeID: uuid.New(), Role: domain.RoleHR}

	stored := func(status domain.LeaveStatus) *leave.Leave {
		return &leave.Leave{
			ID:             uuid.New(),
			OrganizationID: orgID,
			EmployeeID:     employeeID,
			LeaveType:      domain.LeaveTypeAnnual,
			TotalDays:      decimal.NewFromInt(2),
			Status:         status,
			LineManagerID:  uuid.NullUUID{UUID: managerID, Valid: true},
		}
	}

	t.Run("manager approves then hr rejects", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		row := stored(domain.StatusPendingManager)
		deps.repo.findByIDFn = func(ctx context.Context, org, id string) (*leave.Leave, error) {
			cp := *row
			return &cp, nil
		}
		deps.repo.updateStatusIfFn = func(ctx context.Context, l *leave.Leave, expected domain.LeaveStatus) (bool, error) {
			assert.Equal(t, row.Status, expected)
			*row = *l
			return true, nil
		}

		expectTx(t, deps.sqlMock, true)
		var ev events.LeaveEvent
		expectEvent(deps, &ev)
		resp, err := deps.service.Review(context.Background(), orgID.String(), manager, row.ID.String(), leave.ReviewLeaveRequest{Action: "approve", Remarks: "ok"})
		assert.NoError(t, err)
		assert.Equal(t, "PENDING_HR", resp.Status)
		assert.Equal(t, "ok", resp.ManagerRemarks)
		assert.Equal(t, "PENDING_MANAGER", ev.FromStatus)

		expectTx(t, deps.sqlMock, true)
		expectEvent(deps, &ev)
		resp, err = deps.service.Review(context.Background(), orgID.String(), hr, row.ID.String(), leave.ReviewLeaveRequest{Action: "reject", Remarks: "policy violation"})
		assert.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Equal(t, "policy violation", resp.ApproverRemarks)
		assert.Equal(t, "ok", resp.ManagerRemarks)
		assert.Equal(t, "policy violation", ev.Remarks)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("terminal request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		row := stored(domain.StatusApproved)
		deps.repo.findByIDFn = func(ctx context.Context, org, id string) (*leave.Leave, error) { return row, nil }
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Review(context.Background(), orgID.String(), hr, row.ID.String(), leave.ReviewLeaveRequest{Action: "reject"})
		assert.ErrorIs(t, err, leaveerrors.ErrTerminalState)
	})

	t.Run("concurrent reviewer wins", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		row := stored(domain.StatusPendingHR)
		deps.repo.findByIDFn = func(ctx context.Context, org, id string) (*leave.Leave, error) { return row, nil }
		deps.repo.updateStatusIfFn = func(ctx context.Context, l *leave.Leave, expected domain.LeaveStatus) (bool, error) {
			assert.Equal(t, domain.StatusPendingHR, expected)
			return false, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Review(context.Background(), orgID.String(), hr, row.ID.String(), leave.ReviewLeaveRequest{Action: "approve"})
		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentReview)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not the line manager", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		row := stored(domain.StatusPendingManager)
		deps.repo.findByIDFn = func(ctx context.Context, org, id string) (*leave.Leave, error) { return row, nil }
		expectTx(t, deps.sqlMock, false)

		other := leave.Actor{EmployeeID: uuid.New(), Role: domain.RoleManager}
		_, err := deps.service.Review(context.Background(), orgID.String(), other, row.ID.String(), leave.ReviewLeaveRequest{Action: "approve"})
		assert.ErrorIs(t, err, leaveerrors.ErrNotLineManager)
	})
}

func TestLeaveService_GetBalance(t *testing.T) {
	orgID := uuid.New().String()
	employeeID := uuid.New()
	self := leave.Actor{EmployeeID: employeeID, Role: domain.RoleEmployee}

	newDeps := func(t *testing.T, approved []leave.Leave) *leaveServiceDeps {
		deps := setupLeaveServiceTest(t)
		deps.directory.profiles[employeeID.String()] = employee.Profile{ID: employeeID, Department: "Ops"}
		deps.repo.listApprovedFn = func(ctx context.Context, org, eid string) ([]leave.Leave, error) {
			return approved, nil
		}
		return deps
	}

	t.Run("approval reduces balance by total days", func(t *testing.T) {
		before, err := newDeps(t, nil).service.GetBalance(context.Background(), orgID, self, employeeID.String())
		assert.NoError(t, err)

		approved := []leave.Leave{approvedLeave(employeeID, domain.LeaveTypeAnnual, day(2024, 1, 1), 4)}
		after, err := newDeps(t, approved).service.GetBalance(context.Background(), orgID, self, employeeID.String())
		assert.NoError(t, err)

		assert.Equal(t, "ANNUAL", before.Balances[0].LeaveType)
		diff := before.Balances[0].Available.Sub(after.Balances[0].Available)
		assert.True(t, diff.Equal(decimal.NewFromInt(4)))
		assert.Equal(t, "ALL_TIME", after.Period)
	})

	t.Run("upper-case id still nets approved requests", func(t *testing.T) {
		approved := []leave.Leave{approvedLeave(employeeID, domain.LeaveTypeAnnual, day(2024, 1, 1), 10)}
		res, err := newDeps(t, approved).service.GetBalance(context.Background(), orgID, self, strings.ToUpper(employeeID.String()))
		assert.NoError(t, err)

		assert.Equal(t, employeeID.String(), res.EmployeeID)
		assert.Equal(t, "ANNUAL", res.Balances[0].LeaveType)
		assert.True(t, res.Balances[0].Available.Equal(decimal.NewFromInt(5)))
	})

	t.Run("other employee is forbidden", func(t *testing.T) {
		deps := newDeps(t, nil)
		stranger := leave.Actor{EmployeeID: uuid.New(), Role: domain.RoleEmployee}
		_, err := deps.service.GetBalance(context.Background(), orgID, stranger, employeeID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrForbiddenLeave)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	orgID := uuid.New().String()
	actorID := uuid.New()

	tests := []struct {
		role  domain.Role
		check func(t *testing.T, f leave.ListFilter)
	}{
		{domain.RoleEmployee, func(t *testing.T, f leave.ListFilter) {
			assert.Equal(t, actorID.String(), f.EmployeeID)
		}},
		{domain.RoleManager, func(t *testing.T, f leave.ListFilter) {
			assert.Equal(t, actorID.String(), f.ReviewerID)
		}},
		{domain.RoleHR, func(t *testing.T, f leave.ListFilter) {
			assert.Empty(t, f.EmployeeID)
			assert.Empty(t, f.ReviewerID)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			deps := setupLeaveServiceTest(t)
			deps.repo.findAllFn = func(ctx context.Context, org string, f leave.ListFilter) ([]leave.Leave, error) {
				tt.check(t, f)
				assert.Equal(t, domain.StatusPendingHR, f.Status)
				return []leave.Leave{{ID: uuid.New(), Status: domain.StatusPendingHR}}, nil
			}

			got, err := deps.service.GetAll(context.Background(), orgID, leave.Actor{EmployeeID: actorID, Role: tt.role}, leave.ListLeavesQuery{Status: "PENDING_HR"})
			assert.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestLeaveService_Admin(t *testing.T) {
	orgID := uuid.New().String()
	employeeID := uuid.New()
	admin := leave.Actor{EmployeeID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("create sets status directly", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.directory.profiles[employeeID.String()] = employee.Profile{ID: employeeID, FullName: "Budi", Department: "Ops"}
		deps.settings.policy = domain.LeavePolicy{Defaults: domain.Quota{}}
		deps.repo.listApprovedFn = func(ctx context.Context, org, eid string) ([]leave.Leave, error) {
			t.Fatal("admin create must not consult the ledger")
			return nil, nil
		}
		expectTx(t, deps.sqlMock, true)
		var ev events.LeaveEvent
		expectEvent(deps, &ev)

		resp, err := deps.service.AdminCreate(context.Background(), orgID, admin, leave.AdminLeaveRequest{
			EmployeeID: employeeID.String(), LeaveType: "ANNUAL",
			StartDate: "2024-01-06", EndDate: "2024-01-07",
			TotalDays: func() *decimal.Decimal { d := decimal.NewFromFloat(1.5); return &d }(),
			Status:    "APPROVED",
		})

		assert.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Equal(t, "1.5", resp.TotalDays.String())
		assert.NotNil(t, resp.ReviewedBy)
		assert.Equal(t, events.LeaveAdminCreated, ev.EventType)
	})

	t.Run("update may leave a terminal state", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.directory.profiles[employeeID.String()] = employee.Profile{ID: employeeID, FullName: "Budi"}
		row := &leave.Leave{ID: uuid.New(), EmployeeID: employeeID, Status: domain.StatusRejected, TotalDays: decimal.NewFromInt(1)}
		deps.repo.findByIDFn = func(ctx context.Context, org, id string) (*leave.Leave, error) { return row, nil }
		expectTx(t, deps.sqlMock, true)
		var ev events.LeaveEvent
		expectEvent(deps, &ev)

		resp, err := deps.service.AdminUpdate(context.Background(), orgID, admin, row.ID.String(), leave.AdminLeaveRequest{
			EmployeeID: employeeID.String(), LeaveType: "SICK",
			StartDate: "2024-01-01", EndDate: "2024-01-02", Status: "PENDING_HR",
		})

		assert.NoError(t, err)
		assert.Equal(t, "PENDING_HR", resp.Status)
		assert.True(t, resp.TotalDays.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, "REJECTED", ev.FromStatus)
		assert.Equal(t, "PENDING_HR", ev.ToStatus)
	})

	t.Run("delete missing leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		row := &leave.Leave{ID: uuid.New(), Status: domain.StatusApproved}
		deps.repo.findByIDFn = func(ctx context.Context, org, id string) (*leave.Leave, error) { return row, nil }
		deps.repo.deleteFn = func(ctx context.Context, org, id string) (bool, error) { return false, nil }
		expectTx(t, deps.sqlMock, false)

		err := deps.service.AdminDelete(context.Background(), orgID, admin, row.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_PreviewDays(t *testing.T) {
	deps := setupLeaveServiceTest(t)
	employeeID := uuid.New()
	deps.repo.listApprovedFn = func(ctx context.Context, org, eid string) ([]leave.Leave, error) {
		return []leave.Leave{approvedLeave(employeeID, domain.LeaveTypeCasual, day(2023, 5, 1), 8)}, nil
	}

	resp, err := deps.service.PreviewDays(context.Background(), uuid.New().String(),
		leave.Actor{EmployeeID: employeeID, Role: domain.RoleEmployee},
		leave.PreviewDaysRequest{LeaveType: "CASUAL", StartDate: "2024-01-05", EndDate: "2024-01-09"},
	)

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, 2, resp.WeekendsExcluded)
	assert.Equal(t, "2", resp.Available.String())
	assert.Equal(t, "-1", resp.Remaining.String())
	assert.False(t, *resp.Sufficient)
}
