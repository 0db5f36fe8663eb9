package request

import (
	"time"

	"go-hrms/internal/requesttype"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus accepts any casing of the four status names.
func ParseStatus(v string) (Status, bool) {
	switch s := Status(upper(v)); s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return s, true
	default:
		return "", false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type Request struct {
	ID                  uuid.UUID                `gorm:"type:uuid;primaryKey"`
	RequestTypeID       uuid.UUID                `gorm:"type:uuid;not null;index"`
	RequestType         *requesttype.RequestType `gorm:"foreignKey:RequestTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	RequesterEmployeeID uuid.UUID                `gorm:"type:uuid;not null;index:idx_requests_requester_created,priority:1"`
	ApproverEmployeeID  *uuid.UUID               `gorm:"type:uuid"`
	Status              Status                   `gorm:"type:varchar(16);not null;index"`
	RequestedAt         time.Time                `gorm:"not null"`
	EffectiveFrom       *time.Time               `gorm:"type:date"`
	EffectiveTo         *time.Time               `gorm:"type:date"`
	Reason              string                   `gorm:"type:text;not null"`
	Payload             datatypes.JSON           `gorm:"type:jsonb"`
	ApprovalComment     *string                  `gorm:"type:text"`
	RejectionReason     *string                  `gorm:"type:text"`
	CreatedAt           time.Time                `gorm:"index:idx_requests_requester_created,priority:2"`
	UpdatedAt           time.Time
}

func (Request) TableName() string {
	return "requests"
}

// Category returns the category of the preloaded request type, or "" when it was not loaded.
func (r *Request) Category() requesttype.Category {
	if r.RequestType == nil {
		return ""
	}
	return r.RequestType.Category
}

func (r *Request) TypeCode() string {
	if r.RequestType == nil {
		return ""
	}
	return r.RequestType.Code
}
