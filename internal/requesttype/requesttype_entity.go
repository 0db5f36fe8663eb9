package requesttype

import (
	"time"

	"github.com/google/uuid"
)

// Category groups request types that share a payload shape and workflow.
type Category string

const (
	CategoryTimeOff   Category = "time-off"
	CategoryTimesheet Category = "timesheet"
	CategoryProfile   Category = "profile"
	CategoryOther     Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTimeOff, CategoryTimesheet, CategoryProfile, CategoryOther:
		return true
	default:
		return false
	}
}

type RequestType struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code             string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_request_types_code"`
	Name             string    `gorm:"type:varchar(128);not null"`
	Category         Category  `gorm:"type:varchar(32);not null;index"`
	RequiresApproval bool      `gorm:"not null"`
	IsActive         bool      `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (RequestType) TableName() string {
	return "request_types"
}
