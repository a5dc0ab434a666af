package holiday

import (
	"errors"

	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return holidayerrors.ErrHolidayNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_holiday_org_date" {
		return holidayerrors.ErrHolidayExists
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return holidayerrors.ErrHolidayExists
	}

	return apperror.ErrInternal.WithErr(err)
}
