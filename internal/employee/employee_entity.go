package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the directory projection the workflow reads for approval scoping.
// Profile data lives in the employee service; only reporting lines are kept here.
type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName     string     `gorm:"type:varchar(200);not null"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}
