package employee

import (
	"context"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	FindByID(ctx context.Context, organizationID, id string) (Profile, error)
	DirectReports(ctx context.Context, organizationID, managerID string) ([]Profile, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) FindByID(ctx context.Context, organizationID, id string) (Profile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Profile{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		contextutil.GetLogger(ctx, s.logger).Debug("employee lookup failed",
			zap.String("employee_id", id),
			zap.Error(mapped),
		)
		return Profile{}, mapped
	}
	return toProfile(e), nil
}

func (s *service) DirectReports(ctx context.Context, organizationID, managerID string) ([]Profile, error) {
	rows, err := s.repo.FindDirectReports(ctx, organizationID, managerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]Profile, 0, len(rows))
	for i := range rows {
		out = append(out, toProfile(&rows[i]))
	}
	return out, nil
}
