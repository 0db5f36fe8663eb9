package timesheeterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"timesheet not found",
		http.StatusNotFound,
	)
	ErrInvalidTimesheetID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid timesheet id",
		http.StatusBadRequest,
	)
	ErrInvalidWeekStart = apperror.New(
		apperror.CodeInvalidInput,
		"week_start_date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrWeekStartNotMonday = apperror.New(
		apperror.CodeInvalidInput,
		"week_start_date must be a Monday",
		http.StatusBadRequest,
	)
	ErrEntriesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"at least one entry is required",
		http.StatusBadRequest,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid task id",
		http.StatusBadRequest,
	)
	ErrDuplicateTask = apperror.New(
		apperror.CodeInvalidInput,
		"each task may appear only once per week",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"hours must be between 0 and 168 with at most two decimals",
		http.StatusBadRequest,
	)
	ErrUnknownTask = apperror.New(
		apperror.CodeInvalidInput,
		"task does not exist or is inactive",
		http.StatusBadRequest,
	)
	ErrTimesheetTypeUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"timesheet request type is not configured",
		http.StatusServiceUnavailable,
	)
	ErrWeekAlreadySubmitted = apperror.New(
		apperror.CodeConflict,
		"a timesheet already exists for this week",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"only the submitter may change this timesheet",
		http.StatusForbidden,
	)
	ErrNotAdjustable = apperror.New(
		apperror.CodeInvalidState,
		"only pending or rejected timesheets can be adjusted",
		http.StatusBadRequest,
	)
	ErrNotResubmittable = apperror.New(
		apperror.CodeInvalidState,
		"only rejected timesheets can be resubmitted",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver id",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
)
