package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Role is the capability tier carried in the access token.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole normalizes a claim value; unknown values return false.
func ParseRole(v string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(v))); r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// CanApprove reports whether the role may decide on other employees' requests.
func (r Role) CanApprove() bool {
	return r == RoleManager || r == RoleAdmin
}

// Actor is the authenticated caller of a workflow operation.
type Actor struct {
	EmployeeID uuid.UUID
	Role       Role
}

func NewActor(employeeID string, role string) (Actor, bool) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return Actor{}, false
	}
	r, ok := ParseRole(role)
	if !ok {
		return Actor{}, false
	}
	return Actor{EmployeeID: id, Role: r}, true
}

// IsPrivileged reports whether the actor may read beyond their own records.
func (a Actor) IsPrivileged() bool {
	return a.Role.CanApprove()
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
