package leave

import (
	"go-hrms/internal/request"

	"github.com/shopspring/decimal"
)

type BalanceResponse struct {
	BalanceType string          `json:"balance_type"`
	Year        int             `json:"year"`
	Total       decimal.Decimal `json:"total"`
	Used        decimal.Decimal `json:"used"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type BalancesResponse struct {
	EmployeeID string            `json:"employee_id"`
	Year       int               `json:"year"`
	Balances   []BalanceResponse `json:"balances"`
}

type BalancesQuery struct {
	EmployeeID string `form:"employee_id"`
	Year       int    `form:"year"`
}

type SetEntitlementRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	BalanceType string `json:"balance_type" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	Total       string `json:"total" binding:"required"`
}

// SubmitTimeOffRequest is bound from JSON or from multipart form fields.
type SubmitTimeOffRequest struct {
	TypeCode      string `json:"type_code" form:"type_code" binding:"required,max=50"`
	EffectiveFrom string `json:"effective_from" form:"effective_from" binding:"required"`
	EffectiveTo   string `json:"effective_to" form:"effective_to" binding:"required"`
	Reason        string `json:"reason" form:"reason" binding:"required,max=2000"`
}

type HistoryQuery struct {
	EmployeeID string `form:"employee_id"`
	Status     string `form:"status"`
	TypeCode   string `form:"type_code"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

func (q HistoryQuery) toListQuery() request.ListQuery {
	return request.ListQuery{
		EmployeeID: q.EmployeeID,
		Status:     q.Status,
		TypeCode:   q.TypeCode,
		Category:   "time-off",
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		Page:       q.Page,
		Limit:      q.Limit,
	}
}

func mapToBalanceResponse(b LeaveBalance, used decimal.Decimal) BalanceResponse {
	return BalanceResponse{
		BalanceType: b.BalanceType,
		Year:        b.Year,
		Total:       b.Total,
		Used:        used,
		Remaining:   b.Total.Sub(used),
	}
}
