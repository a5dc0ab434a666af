package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryPublic   Category = "PUBLIC"
	CategoryCompany  Category = "COMPANY"
	CategoryReligion Category = "RELIGIOUS"
)

// Holiday falls on one exact date; it does not repeat in later years.
type Holiday struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_holiday_org_date,priority:1"`
	Date           time.Time     `gorm:"type:date;not null;uniqueIndex:uq_holiday_org_date,priority:2"`
	Name           string        `gorm:"not null"`
	Category       Category      `gorm:"type:varchar(20);not null"`
	CreatedBy      uuid.NullUUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}
