package employee

import (
	"context"

	"go-leave/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Employee, error)
	FindDirectReports(ctx context.Context, organizationID, managerID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindDirectReports(ctx context.Context, organizationID, managerID string) ([]Employee, error) {
	var out []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("line_manager_id = ?", managerID).
		Order("full_name ASC").
		Find(&out).Error
	return out, err
}
