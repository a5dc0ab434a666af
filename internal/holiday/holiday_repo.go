package holiday

import (
	"context"
	"time"

	"go-leave/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	FindBetween(ctx context.Context, organizationID string, start, end time.Time) ([]Holiday, error)
	Delete(ctx context.Context, organizationID, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// FindBetween returns holidays with start <= date <= end ordered by date.
func (r *repository) FindBetween(ctx context.Context, organizationID string, start, end time.Time) ([]Holiday, error) {
	var out []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Holiday{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
