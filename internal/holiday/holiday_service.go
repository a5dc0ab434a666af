package holiday

import (
	"context"
	"strings"
	"time"

	"go-leave/internal/calendar"
	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID, actorID string, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context, organizationID string, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
	ListHolidays(ctx context.Context, organizationID string, start, end time.Time) ([]calendar.HolidayEntry, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, logger: l}
}

func parseCategory(v string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(v)))
	switch c {
	case "":
		return CategoryPublic, nil
	case CategoryPublic, CategoryCompany, CategoryReligion:
		return c, nil
	default:
		return "", holidayerrors.ErrInvalidCategory
	}
}

func (s *service) Create(ctx context.Context, organizationID, actorID string, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDate
	}
	category, err := parseCategory(req.Category)
	if err != nil {
		return HolidayResponse{}, err
	}
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return HolidayResponse{}, apperror.InvalidField("organization_id")
	}

	h := &Holiday{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Date:           date,
		Name:           strings.TrimSpace(req.Name),
		Category:       category,
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		h.CreatedBy = uuid.NullUUID{UUID: actor, Valid: true}
	}

	if err := s.repo.Create(ctx, h); err != nil {
		mapped := mapRepositoryError(err)
		contextutil.GetLogger(ctx, s.logger).Warn("create holiday failed",
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return HolidayResponse{}, mapped
	}

	contextutil.GetLogger(ctx, s.logger).Info("holiday created",
		zap.String("holiday_id", h.ID.String()),
		zap.String("date", req.Date),
	)
	return mapToResponse(*h), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string, year int) ([]HolidayResponse, error) {
	if year < 1000 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	rows, err := s.repo.FindBetween(ctx, organizationID, start, end)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	out := make([]HolidayResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, mapToResponse(h))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.InvalidField("id")
	}
	deleted, err := s.repo.Delete(ctx, organizationID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !deleted {
		return holidayerrors.ErrHolidayNotFound
	}
	return nil
}

// ListHolidays feeds the day counter with the holidays inside [start, end].
func (s *service) ListHolidays(ctx context.Context, organizationID string, start, end time.Time) ([]calendar.HolidayEntry, error) {
	rows, err := s.repo.FindBetween(ctx, organizationID, calendar.DateOf(start), calendar.DateOf(end))
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]calendar.HolidayEntry, 0, len(rows))
	for _, h := range rows {
		out = append(out, mapToEntry(h))
	}
	return out, nil
}
