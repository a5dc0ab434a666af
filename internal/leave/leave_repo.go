package leave

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows FindAll. Zero fields are ignored. ReviewerID keeps the
// reviewer's own requests plus those where they are the frozen line manager.
type ListFilter struct {
	EmployeeID string
	ReviewerID string
	Status     domain.LeaveStatus
	LeaveType  domain.LeaveType
	Year       int
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, organizationID string, filter ListFilter) ([]Leave, error)
	FindByID(ctx context.Context, organizationID, id string) (*Leave, error)
	Create(ctx context.Context, l *Leave) error
	UpdateStatusIf(ctx context.Context, l *Leave, expected domain.LeaveStatus) (bool, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, organizationID, id string) (bool, error)
	ListApprovedByEmployee(ctx context.Context, organizationID, employeeID string) ([]Leave, error)
	LockEmployee(ctx context.Context, organizationID, employeeID string) error
	HasOverlap(ctx context.Context, organizationID, employeeID string, start, end time.Time, excludeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn runs statements on the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindAll(ctx context.Context, organizationID string, filter ListFilter) ([]Leave, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(organizationID))
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ReviewerID != "" {
		q = q.Where("(employee_id = ? OR line_manager_id = ?)", filter.ReviewerID, filter.ReviewerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.LeaveType != "" {
		q = q.Where("leave_type = ?", filter.LeaveType)
	}
	if filter.Year > 0 {
		q = q.Where("EXTRACT(YEAR FROM start_date) = ?", filter.Year)
	}

	var leaves []Leave
	err := q.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Create(l).Error
}

// UpdateStatusIf writes the review fields only while the row still has the
// expected status. It reports false when another writer got there first.
func (r *repository) UpdateStatusIf(ctx context.Context, l *Leave, expected domain.LeaveStatus) (bool, error) {
	res := r.conn(ctx).
		Model(&Leave{}).
		Where("id = ? AND organization_id = ? AND status = ?", l.ID, l.OrganizationID, expected).
		Updates(map[string]any{
			"status":           l.Status,
			"manager_remarks":  l.ManagerRemarks,
			"approver_remarks": l.ApproverRemarks,
			"reviewed_by":      l.ReviewedBy,
			"reviewed_at":      l.ReviewedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) (bool, error) {
	res := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", id).
		Delete(&Leave{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) ListApprovedByEmployee(ctx context.Context, organizationID, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("employee_id = ? AND status = ?", employeeID, domain.StatusApproved).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

// LockEmployee takes a row lock on the employee until the transaction ends,
// serializing concurrent applications by the same employee.
func (r *repository) LockEmployee(ctx context.Context, organizationID, employeeID string) error {
	var row struct {
		ID string
	}
	return r.conn(ctx).
		Table("employees").
		Select("id").
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", employeeID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&row).Error
}

func (r *repository) HasOverlap(ctx context.Context, organizationID, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := r.conn(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(organizationID)).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", domain.StatusRejected).
		Where("NOT (end_date < ? OR start_date > ?)", start, end)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
