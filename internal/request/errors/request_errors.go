package requesterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrIncompleteDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"effective_from and effective_to must be given together",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"effective_from must be before or equal effective_to",
		http.StatusBadRequest,
	)
	ErrDatesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"time-off requests need effective_from and effective_to",
		http.StatusBadRequest,
	)
	ErrEffectiveDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"time-off cannot start before today",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"requested days exceed the remaining leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrTimesheetWorkflow = apperror.New(
		apperror.CodeInvalidInput,
		"timesheet requests are managed through the timesheet endpoints",
		http.StatusBadRequest,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"only the requester can change this request",
		http.StatusForbidden,
	)
	ErrNotVisible = apperror.New(
		apperror.CodeForbidden,
		"you cannot view this request",
		http.StatusForbidden,
	)
	ErrListScope = apperror.New(
		apperror.CodeForbidden,
		"employees can only view their own requests",
		http.StatusForbidden,
	)
	ErrApproverRoleRequired = apperror.New(
		apperror.CodeForbidden,
		"only managers and admins can decide on requests",
		http.StatusForbidden,
	)
	ErrSelfDecision = apperror.New(
		apperror.CodeForbidden,
		"you cannot decide on your own request",
		http.StatusForbidden,
	)
	ErrNotDirectManager = apperror.New(
		apperror.CodeForbidden,
		"managers can only decide on requests of their direct reports",
		http.StatusForbidden,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"request is no longer pending",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid status",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"invalid category",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrRequestConflict = apperror.New(
		apperror.CodeConflict,
		"request conflicts with an existing record",
		http.StatusConflict,
	)
)

// InvalidPayload reports a payload that does not match its category schema.
func InvalidPayload(err error) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidInput, "invalid payload: "+err.Error(), http.StatusBadRequest)
}
