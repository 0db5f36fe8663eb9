package request

import (
	"encoding/json"
	"time"

	"go-hrms/internal/shared/dateutil"
)

type CreateRequest struct {
	TypeCode      string          `json:"type_code" binding:"required,max=50"`
	EffectiveFrom *string         `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to"`
	Reason        string          `json:"reason" binding:"required,max=2000"`
	Payload       json.RawMessage `json:"payload"`
}

// UpdateRequest patches a pending request. Nil fields stay unchanged.
type UpdateRequest struct {
	EffectiveFrom *string         `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to"`
	Reason        *string         `json:"reason" binding:"omitempty,max=2000"`
	Payload       json.RawMessage `json:"payload"`
}

type ApproveRequest struct {
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required,min=10,max=1000"`
}

type ListQuery struct {
	EmployeeID string `form:"employee_id"`
	Status     string `form:"status"`
	TypeCode   string `form:"type_code"`
	Category   string `form:"category"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type SummaryQuery struct {
	EmployeeID string `form:"employee_id"`
	Month      string `form:"month" binding:"omitempty,yearmonth"`
	TypeCode   string `form:"type_code"`
}

type RequestResponse struct {
	ID                  string          `json:"id"`
	TypeCode            string          `json:"type_code"`
	TypeName            string          `json:"type_name"`
	Category            string          `json:"category"`
	RequesterEmployeeID string          `json:"requester_employee_id"`
	ApproverEmployeeID  *string         `json:"approver_employee_id"`
	Status              string          `json:"status"`
	RequestedAt         string          `json:"requested_at"`
	EffectiveFrom       *string         `json:"effective_from"`
	EffectiveTo         *string         `json:"effective_to"`
	Reason              string          `json:"reason"`
	Payload             json.RawMessage `json:"payload,omitempty"`
	ApprovalComment     *string         `json:"approval_comment,omitempty"`
	RejectionReason     *string         `json:"rejection_reason,omitempty"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
}

type StatusCounts struct {
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Cancelled int64 `json:"cancelled"`
}

type SummaryResponse struct {
	Total    int64            `json:"total"`
	ByStatus StatusCounts     `json:"by_status"`
	ByType   map[string]int64 `json:"by_type"`
}

func ToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:                  r.ID.String(),
		RequesterEmployeeID: r.RequesterEmployeeID.String(),
		Status:              string(r.Status),
		RequestedAt:         r.RequestedAt.UTC().Format(time.RFC3339),
		Reason:              r.Reason,
		ApprovalComment:     r.ApprovalComment,
		RejectionReason:     r.RejectionReason,
		CreatedAt:           r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.RequestType != nil {
		resp.TypeCode = r.RequestType.Code
		resp.TypeName = r.RequestType.Name
		resp.Category = string(r.RequestType.Category)
	}
	if r.ApproverEmployeeID != nil {
		id := r.ApproverEmployeeID.String()
		resp.ApproverEmployeeID = &id
	}
	if r.EffectiveFrom != nil {
		v := dateutil.FormatDate(*r.EffectiveFrom)
		resp.EffectiveFrom = &v
	}
	if r.EffectiveTo != nil {
		v := dateutil.FormatDate(*r.EffectiveTo)
		resp.EffectiveTo = &v
	}
	if len(r.Payload) > 0 {
		resp.Payload = json.RawMessage(r.Payload)
	}
	return resp
}

func ToListResponse(items []Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, ToResponse(r))
	}
	return out
}
