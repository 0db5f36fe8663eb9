package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-42")

	evt, err := kafka.NewOutboxEvent(ctx, "request", "req-1", events.RequestSubmittedType, events.RequestLifecycleTopic,
		events.RequestLifecycleEvent{EventType: events.RequestSubmittedType, RequestID: "req-1"})

	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "rid-42", evt.CorrelationID)
	assert.Equal(t, kafka.OutboxStatusPending, evt.Status)
	assert.Contains(t, string(evt.Payload), `"request_id":"req-1"`)
	assert.NoError(t, kafka.ValidateOutboxEvent(evt))
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	evt, err := kafka.NewOutboxEvent(context.Background(), "request", "req-1", "request_submitted", events.RequestLifecycleTopic, map[string]string{"a": "b"})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(evt.ID, evt.CorrelationID, "request", "req-1", "request_submitted", events.RequestLifecycleTopic, evt.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	require.NoError(t, repo.Create(context.Background(), evt))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = kafka.NewOutboxRepository(db).Create(context.Background(), kafka.OutboxEvent{ID: "x", Topic: "t", Status: "weird", Payload: []byte("{}")})
	assert.Error(t, err)
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	older := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)
	rows := sqlmock.NewRows([]string{"id", "correlation_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "created_at"}).
		AddRow("evt-2", "", "request", "req-2", "request_approved", events.RequestLifecycleTopic, []byte(`{}`), kafka.OutboxStatusFailed, 2, newer).
		AddRow("evt-1", "rid-1", "request", "req-1", "request_submitted", events.RequestLifecycleTopic, []byte(`{}`), kafka.OutboxStatusPending, 0, older)

	mock.ExpectQuery("UPDATE outbox_events AS o").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, float64(60), 50).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).ClaimPending(context.Background(), 50, time.Minute)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "evt-1", got[0].ID)
	assert.Equal(t, "rid-1", got[0].CorrelationID)
	assert.Equal(t, 2, got[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedAndPurge(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusFailed, "broker unavailable", 10, kafka.OutboxStatusDead).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkFailed(context.Background(), "evt-1", "broker unavailable", 10))

	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM outbox_events").
		WithArgs(kafka.OutboxStatusSent, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))
	n, err := repo.PurgeSent(context.Background(), cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
