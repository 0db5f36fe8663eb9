package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type EmployeeDirectory interface {
	Upsert(ctx context.Context, req employee.UpsertEmployeeRequest) error
}

type BalanceInitializer interface {
	EnsureYear(ctx context.Context, employeeID uuid.UUID, year int) error
}

// ConsumeEmployeeLifecycle projects employee_created events into the directory and
// materializes the hire's leave balances for the current year. Replays are harmless:
// both writes are upserts.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	directory EmployeeDirectory,
	balances BalanceInitializer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if err := HandleEmployeeEvent(ctx, msg.Value, directory, balances, time.Now()); err != nil {
			if !IsPoison(err) {
				log.Error("handle employee lifecycle message failed",
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
			log.Warn("skipping unusable employee lifecycle message",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}
	}
}

var errPoisonMessage = errors.New("poison message")

// HandleEmployeeEvent applies one lifecycle message. Malformed or invalid messages return
// an error wrapping errPoisonMessage so the caller commits past them; anything else is
// retried.
func HandleEmployeeEvent(
	ctx context.Context,
	value []byte,
	directory EmployeeDirectory,
	balances BalanceInitializer,
	now time.Time,
) error {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return errors.Join(errPoisonMessage, err)
	}
	if event.EventType != "" && event.EventType != events.EmployeeCreatedType {
		return nil
	}

	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return errors.Join(errPoisonMessage, err)
	}

	err = directory.Upsert(ctx, employee.UpsertEmployeeRequest{
		ID:           event.EmployeeID,
		FullName:     event.FullName,
		ManagerID:    event.ManagerID,
		DepartmentID: event.DepartmentID,
	})
	if err != nil {
		if apperror.HasCode(err, apperror.CodeInvalidInput) {
			return errors.Join(errPoisonMessage, err)
		}
		return err
	}

	year := now.UTC().Year()
	if !event.OccurredAt.IsZero() {
		year = event.OccurredAt.UTC().Year()
	}
	return balances.EnsureYear(ctx, employeeID, year)
}

// IsPoison reports whether err marks a message that will never apply.
func IsPoison(err error) bool {
	return errors.Is(err, errPoisonMessage)
}
