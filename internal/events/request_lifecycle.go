package events

import "time"

const RequestLifecycleTopic = "hr.request.lifecycle.v1"

const (
	RequestSubmittedType     = "request_submitted"
	RequestUpdatedType       = "request_updated"
	RequestApprovedType      = "request_approved"
	RequestRejectedType      = "request_rejected"
	RequestCancelledType     = "request_cancelled"
	TimesheetAdjustedType    = "timesheet_adjusted"
	TimesheetResubmittedType = "timesheet_resubmitted"
)

// RequestLifecycleEvent is enqueued in the outbox with every request write.
// Notification dispatch consumes it downstream.
type RequestLifecycleEvent struct {
	EventType           string    `json:"event_type"`
	RequestID           string    `json:"request_id"`
	RequestTypeCode     string    `json:"request_type_code"`
	Category            string    `json:"category"`
	RequesterEmployeeID string    `json:"requester_employee_id"`
	ApproverEmployeeID  *string   `json:"approver_employee_id,omitempty"`
	Status              string    `json:"status"`
	EffectiveFrom       *string   `json:"effective_from,omitempty"`
	EffectiveTo         *string   `json:"effective_to,omitempty"`
	CorrelationID       string    `json:"correlation_id,omitempty"`
	OccurredAt          time.Time `json:"occurred_at"`
}
