package events

import "time"

const (
	EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"
	EmployeeCreatedType    = "employee_created"
)

// EmployeeCreatedEvent is published by the employee service when a hire is recorded.
// Manager and department are optional; the directory projection stores what it gets.
type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	EmployeeID   string    `json:"employee_id"`
	FullName     string    `json:"full_name"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	DepartmentID *string   `json:"department_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
