package requesttypeerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRequestTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"request type not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request type",
		http.StatusBadRequest,
	)
	ErrRequestTypeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"request type is not active",
		http.StatusBadRequest,
	)
	ErrRequestTypeCodeExists = apperror.New(
		apperror.CodeConflict,
		"request type code already exists",
		http.StatusConflict,
	)
)
