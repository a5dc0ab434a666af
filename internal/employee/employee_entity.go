package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the directory record the leave engine reads for routing.
type Employee struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;index"`
	FullName       string        `gorm:"not null"`
	Email          string        `gorm:"uniqueIndex"`
	Department     string        `gorm:"index"`
	LineManagerID  uuid.NullUUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
