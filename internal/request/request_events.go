package request

import (
	"context"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"
)

const aggregateType = "request"

func eventTypeFor(status Status) string {
	switch status {
	case StatusApproved:
		return events.RequestApprovedType
	case StatusRejected:
		return events.RequestRejectedType
	case StatusCancelled:
		return events.RequestCancelledType
	default:
		return events.RequestSubmittedType
	}
}

// EnqueueLifecycleEvent writes a request lifecycle event through outbox, which should be
// bound to the transaction that wrote r. A nil outbox is a no-op.
func EnqueueLifecycleEvent(ctx context.Context, outbox kafka.OutboxRepository, r *Request, eventType string) error {
	if outbox == nil {
		return nil
	}

	payload := events.RequestLifecycleEvent{
		EventType:           eventType,
		RequestID:           r.ID.String(),
		RequestTypeCode:     r.TypeCode(),
		Category:            string(r.Category()),
		RequesterEmployeeID: r.RequesterEmployeeID.String(),
		Status:              string(r.Status),
		CorrelationID:       contextutil.GetRequestID(ctx),
		OccurredAt:          time.Now().UTC(),
	}
	if r.ApproverEmployeeID != nil {
		v := r.ApproverEmployeeID.String()
		payload.ApproverEmployeeID = &v
	}
	if r.EffectiveFrom != nil {
		v := dateutil.FormatDate(*r.EffectiveFrom)
		payload.EffectiveFrom = &v
	}
	if r.EffectiveTo != nil {
		v := dateutil.FormatDate(*r.EffectiveTo)
		payload.EffectiveTo = &v
	}

	event, err := kafka.NewOutboxEvent(ctx, aggregateType, r.ID.String(), eventType, events.RequestLifecycleTopic, payload)
	if err != nil {
		return err
	}
	return outbox.Create(ctx, event)
}
