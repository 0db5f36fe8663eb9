package timesheet

import (
	"go-hrms/internal/request"
	"go-hrms/internal/shared/dateutil"

	"github.com/shopspring/decimal"
)

type EntryInput struct {
	TaskID string `json:"task_id" binding:"required,uuid"`
	Hours  string `json:"hours" binding:"required"`
}

type SubmitTimesheetRequest struct {
	WeekStartDate string       `json:"week_start_date" binding:"required"`
	Reason        string       `json:"reason" binding:"max=2000"`
	Entries       []EntryInput `json:"entries" binding:"required,min=1,dive"`
}

type AdjustTimesheetRequest struct {
	Reason  *string      `json:"reason" binding:"omitempty,max=2000"`
	Entries []EntryInput `json:"entries" binding:"required,min=1,dive"`
}

type ApproveTimesheetRequest struct {
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

type RejectTimesheetRequest struct {
	Reason string `json:"reason" binding:"required,min=10,max=1000"`
}

type ListQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// PendingQuery narrows the approval queue. Only admins may pass ApproverID or
// DepartmentID; managers always see their direct reports.
type PendingQuery struct {
	ApproverID   string `form:"approver_id"`
	DepartmentID string `form:"department_id"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
}

type MonthlyHoursQuery struct {
	EmployeeID string `form:"employee_id"`
	Month      string `form:"month" binding:"required"`
}

type EntryResponse struct {
	ID        string          `json:"id"`
	TaskID    string          `json:"task_id"`
	TaskCode  string          `json:"task_code,omitempty"`
	TaskName  string          `json:"task_name,omitempty"`
	EntryType string          `json:"entry_type"`
	Hours     decimal.Decimal `json:"hours"`
}

type TimesheetResponse struct {
	request.RequestResponse
	WeekStartDate string          `json:"week_start_date"`
	WeekEndDate   string          `json:"week_end_date"`
	TotalHours    string          `json:"total_hours"`
	Entries       []EntryResponse `json:"entries,omitempty"`
}

type TaskResponse struct {
	ID       string `json:"id"`
	TaskCode string `json:"task_code"`
	Name     string `json:"name"`
	TaskType string `json:"task_type"`
}

type MonthlyHoursResponse struct {
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

func mapToTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:       t.ID.String(),
		TaskCode: t.TaskCode,
		Name:     t.Name,
		TaskType: string(t.TaskType),
	}
}

func mapToEntryResponse(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:        e.ID.String(),
		TaskID:    e.TaskID.String(),
		EntryType: string(e.EntryType),
		Hours:     e.Hours,
	}
	if e.Task != nil {
		resp.TaskCode = e.Task.TaskCode
		resp.TaskName = e.Task.Name
	}
	return resp
}

// mapToResponse builds the timesheet view of r; the week and total come from the payload
// so listings need no entry lookups.
func mapToResponse(r request.Request, entries []Entry) TimesheetResponse {
	resp := TimesheetResponse{RequestResponse: request.ToResponse(r)}

	if p, err := request.DecodePayload(r.Category(), r.Payload); err == nil {
		if tp, ok := p.(request.TimesheetPayload); ok {
			resp.TotalHours = tp.TotalHours
		}
	}
	if r.EffectiveFrom != nil {
		resp.WeekStartDate = dateutil.FormatDate(*r.EffectiveFrom)
	}
	if r.EffectiveTo != nil {
		resp.WeekEndDate = dateutil.FormatDate(*r.EffectiveTo)
	}

	if len(entries) > 0 {
		resp.Entries = make([]EntryResponse, 0, len(entries))
		for _, e := range entries {
			resp.Entries = append(resp.Entries, mapToEntryResponse(e))
		}
	}
	return resp
}
