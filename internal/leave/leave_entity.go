package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveBalance holds the yearly entitlement of one bucket. Used days are derived from
// approved requests on every read and never stored.
type LeaveBalance struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_key,priority:1"`
	BalanceType string          `gorm:"type:varchar(32);not null;uniqueIndex:uq_leave_balances_key,priority:2"`
	Year        int             `gorm:"not null;uniqueIndex:uq_leave_balances_key,priority:3"`
	Total       decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// ApprovedWindow is the date window of one approved time-off request.
type ApprovedWindow struct {
	Code          string    `gorm:"column:code"`
	EffectiveFrom time.Time `gorm:"column:effective_from"`
	EffectiveTo   time.Time `gorm:"column:effective_to"`
}
