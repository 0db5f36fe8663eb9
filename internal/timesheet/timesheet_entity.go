package timesheet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TaskType string

const (
	TaskTypeProject TaskType = "project"
	TaskTypeLeave   TaskType = "leave"
)

type Task struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskCode  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(150);not null"`
	TaskType  TaskType  `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Task) TableName() string {
	return "timesheet_tasks"
}

// Entry is one task line of a weekly timesheet. EntryType copies the task type at
// submission so later task edits do not rewrite history.
type Entry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RequestID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_timesheet_entries_week,priority:1"`
	TaskID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_timesheet_entries_week,priority:2"`
	Task          *Task           `gorm:"foreignKey:TaskID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	EntryType     TaskType        `gorm:"type:varchar(16);not null"`
	WeekStartDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_timesheet_entries_week,priority:3"`
	WeekEndDate   time.Time       `gorm:"type:date;not null"`
	Hours         decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Entry) TableName() string {
	return "timesheet_entries"
}

// Week is the claim a timesheet request holds on (employee, week). Its primary key
// keeps concurrent submissions for the same week from both succeeding.
type Week struct {
	EmployeeID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeekStartDate time.Time `gorm:"type:date;primaryKey"`
	RequestID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt     time.Time
}

func (Week) TableName() string {
	return "timesheet_weeks"
}
