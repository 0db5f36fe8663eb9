package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor map[string]bool
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		for _, h := range m.Headers {
			if h.Key == "outbox_id" && w.failFor[string(h.Value)] {
				return errors.New("broker unavailable")
			}
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]bool{"evt-2": true}}

		repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return([]kafka.OutboxEvent{
			{ID: "evt-1", AggregateID: "req-1", EventType: "request_submitted", Topic: "hr.request.lifecycle.v1", Payload: []byte(`{}`), CorrelationID: "rid-1"},
			{ID: "evt-2", AggregateID: "req-2", EventType: "request_approved", Topic: "hr.request.lifecycle.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "evt-1").Return(nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "evt-2", "broker unavailable", 10).Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)
		assert.Equal(t, []byte("req-1"), writer.written[0].Key)

		var correlation string
		for _, h := range writer.written[0].Headers {
			if h.Key == "correlation_id" {
				correlation = string(h.Value)
			}
		}
		assert.Equal(t, "rid-1", correlation)
	})

	t.Run("last attempt still reports to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]bool{"evt-9": true}}

		repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return([]kafka.OutboxEvent{
			{ID: "evt-9", AggregateID: "req-9", Topic: "hr.request.lifecycle.v1", Payload: []byte(`{}`), RetryCount: 9},
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "evt-9", "broker unavailable", 10).Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("mark sent failure is not counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return([]kafka.OutboxEvent{
			{ID: "evt-3", AggregateID: "req-3", Topic: "hr.request.lifecycle.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "evt-3").Return(errors.New("db down"))

		sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("claim error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return(nil, errors.New("db down"))

		sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.Error(t, err)
		assert.Zero(t, sent)
	})
}

func TestProcessOutboxEventsStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		producer.ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), producer.WorkerOptions{PollInterval: 5 * time.Millisecond})
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
