package settings

import (
	"context"

	"go-leave/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	FindPolicy(ctx context.Context, organizationID string) (*LeavePolicyRecord, error)
	UpsertPolicy(ctx context.Context, rec *LeavePolicyRecord) error
	FindWorkflows(ctx context.Context, organizationID string) ([]LeaveWorkflowRecord, error)
	UpsertWorkflow(ctx context.Context, rec *LeaveWorkflowRecord) error
	DeleteWorkflow(ctx context.Context, organizationID, department string) (bool, error)
	FindAppConfig(ctx context.Context, organizationID string) (*AppConfigRecord, error)
	UpsertAppConfig(ctx context.Context, rec *AppConfigRecord) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindPolicy(ctx context.Context, organizationID string) (*LeavePolicyRecord, error) {
	var rec LeavePolicyRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) UpsertPolicy(ctx context.Context, rec *LeavePolicyRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"defaults", "overrides", "updated_by", "updated_at"}),
		}).
		Create(rec).Error
}

func (r *repository) FindWorkflows(ctx context.Context, organizationID string) ([]LeaveWorkflowRecord, error) {
	var out []LeaveWorkflowRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("department ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) UpsertWorkflow(ctx context.Context, rec *LeaveWorkflowRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}, {Name: "department"}},
			DoUpdates: clause.AssignmentColumns([]string{"approver_role", "updated_at"}),
		}).
		Create(rec).Error
}

func (r *repository) DeleteWorkflow(ctx context.Context, organizationID, department string) (bool, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("department = ?", department).
		Delete(&LeaveWorkflowRecord{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindAppConfig(ctx context.Context, organizationID string) (*AppConfigRecord, error) {
	var rec AppConfigRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) UpsertAppConfig(ctx context.Context, rec *AppConfigRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"working_days", "period_kind", "fiscal_start_month", "updated_at"}),
		}).
		Create(rec).Error
}
