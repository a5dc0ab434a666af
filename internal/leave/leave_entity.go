package leave

import (
	"time"

	"go-leave/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Leave rows are hard deleted; there is no soft delete column.
type Leave struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_org_status"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`
	EmployeeName   string    `gorm:"type:varchar(150);not null"`

	LeaveType        domain.LeaveType `gorm:"type:varchar(20);not null"`
	StartDate        time.Time        `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate          time.Time        `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays        decimal.Decimal  `gorm:"type:numeric(6,2);not null"`
	WeekendsExcluded int              `gorm:"not null;default:0"`
	HolidaysExcluded int              `gorm:"not null;default:0"`
	Reason           string           `gorm:"type:text"`

	Status          domain.LeaveStatus `gorm:"type:varchar(20);not null;index:idx_leaves_org_status"`
	AppliedDate     time.Time          `gorm:"type:date;not null"`
	LineManagerID   uuid.NullUUID      `gorm:"type:uuid"`
	ManagerRemarks  string             `gorm:"type:text"`
	ApproverRemarks string             `gorm:"type:text"`

	CreatedBy  uuid.UUID     `gorm:"type:uuid;not null"`
	ReviewedBy uuid.NullUUID `gorm:"type:uuid"`
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leave) TableName() string { return "leaves" }
