package leaveerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidBalanceType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid balance type",
		http.StatusBadRequest,
	)
	ErrInvalidEntitlement = apperror.New(
		apperror.CodeInvalidInput,
		"total must be a non-negative number with at most two decimals",
		http.StatusBadRequest,
	)
	ErrBalanceScope = apperror.New(
		apperror.CodeForbidden,
		"employees can only view their own balances",
		http.StatusForbidden,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only admins can adjust entitlements",
		http.StatusForbidden,
	)
	ErrNotTimeOffType = apperror.New(
		apperror.CodeInvalidInput,
		"request type is not a time-off type",
		http.StatusBadRequest,
	)
	ErrNotTimeOffRequest = apperror.New(
		apperror.CodeNotFound,
		"time-off request not found",
		http.StatusNotFound,
	)
	ErrTooManyAttachments = apperror.New(
		apperror.CodeInvalidInput,
		"at most 10 attachments are allowed",
		http.StatusBadRequest,
	)
	ErrAttachmentsUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"attachment storage is unavailable",
		http.StatusServiceUnavailable,
	)
)
