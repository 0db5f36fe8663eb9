package rbac

import "go-hrms/internal/domain"

type permission struct {
	Resource string
	Action   string
}

// policies lists what each role adds on top of the roles it inherits.
var policies = map[domain.Role][]permission{
	domain.RoleEmployee: {
		{"request_type", "read"},
		{"request", "create"},
		{"request", "read"},
		{"request", "update"},
		{"request", "cancel"},
		{"timesheet", "submit"},
		{"timesheet", "read"},
		{"timesheet", "adjust"},
		{"timesheet", "cancel"},
		{"leave", "read"},
		{"leave", "submit"},
		{"leave", "cancel"},
	},
	domain.RoleManager: {
		{"request", "approve"},
		{"timesheet", "approve"},
		{"employee", "read"},
		{"employee", "read_reports"},
	},
	domain.RoleAdmin: {
		{"request_type", "manage"},
		{"leave", "manage"},
	},
}

// inheritance is child -> parent: ADMIN inherits MANAGER inherits EMPLOYEE.
var inheritance = [][2]domain.Role{
	{domain.RoleAdmin, domain.RoleManager},
	{domain.RoleManager, domain.RoleEmployee},
}
