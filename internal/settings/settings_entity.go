package settings

import (
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/domain"

	"github.com/google/uuid"
)

type LeavePolicyRecord struct {
	OrganizationID uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Defaults       domain.Quota            `gorm:"type:jsonb;serializer:json;not null"`
	Overrides      map[string]domain.Quota `gorm:"type:jsonb;serializer:json;not null"`
	UpdatedBy      uuid.NullUUID           `gorm:"type:uuid"`
	UpdatedAt      time.Time
}

func (LeavePolicyRecord) TableName() string { return "leave_policies" }

type LeaveWorkflowRecord struct {
	OrganizationID uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Department     string              `gorm:"primaryKey"`
	ApproverRole   domain.ApproverRole `gorm:"type:varchar(20);not null"`
	UpdatedAt      time.Time
}

func (LeaveWorkflowRecord) TableName() string { return "leave_workflows" }

type AppConfigRecord struct {
	OrganizationID   uuid.UUID            `gorm:"type:uuid;primaryKey"`
	WorkingDays      calendar.WorkingDays `gorm:"type:jsonb;serializer:json;not null"`
	PeriodKind       domain.PeriodKind    `gorm:"type:varchar(20);not null;default:ALL_TIME"`
	FiscalStartMonth int                  `gorm:"not null;default:1"`
	UpdatedAt        time.Time
}

func (AppConfigRecord) TableName() string { return "app_configs" }

func (r AppConfigRecord) Period() domain.AccountingPeriod {
	return domain.AccountingPeriod{Kind: r.PeriodKind, FiscalStartMonth: time.Month(r.FiscalStartMonth)}
}

// Snapshot is one consistent read of an organization's leave settings.
type Snapshot struct {
	Policy      domain.LeavePolicy      `json:"policy"`
	Workflows   domain.Workflows        `json:"workflows"`
	WorkingDays calendar.WorkingDays    `json:"working_days"`
	Period      domain.AccountingPeriod `json:"period"`
}

// DefaultSnapshot applies when an organization has stored nothing yet.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Policy:      domain.DefaultLeavePolicy(),
		Workflows:   domain.Workflows{},
		WorkingDays: calendar.DefaultWorkingDays(),
		Period:      domain.DefaultAccountingPeriod(),
	}
}
