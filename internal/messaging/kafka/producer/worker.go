package producer

import (
	"context"
	"time"

	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/metrics"

	"go.uber.org/zap"
)

const (
	batchSize   = 50
	claimLease  = time.Minute
	maxAttempts = 10
	purgeEvery  = time.Hour
)

type WorkerOptions struct {
	PollInterval time.Duration
	// Retention is how long sent events are kept. Zero disables purging.
	Retention time.Duration
}

// ProcessOutboxEvents polls the outbox until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	opts WorkerOptions,
) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()
	purge := time.NewTicker(purgeEvery)
	defer purge.Stop()

	log.Info("outbox worker started",
		zap.Duration("poll_interval", opts.PollInterval),
		zap.Duration("retention", opts.Retention),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := ProcessPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		case now := <-purge.C:
			if opts.Retention <= 0 {
				continue
			}
			n, err := repo.PurgeSent(ctx, now.Add(-opts.Retention))
			if err != nil {
				log.Error("purge sent outbox events failed", zap.Error(err))
				continue
			}
			log.Info("purged sent outbox events", zap.Int64("count", n))
		}
	}
}

// ProcessPendingEvents publishes one claimed batch and returns how many events were sent.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ClaimPending(ctx, batchSize, claimLease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("processing claimed outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			attempt := event.RetryCount + 1
			fields := []zap.Field{
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("attempt", attempt),
				zap.Error(err),
			}
			if attempt >= maxAttempts {
				logger.Error("outbox event exhausted its attempts", fields...)
				metrics.RecordOutboxPublished(event.Topic, "dead")
			} else {
				logger.Warn("publish outbox event failed", fields...)
				metrics.RecordOutboxPublished(event.Topic, "failed")
			}
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error(), maxAttempts); markErr != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// The lease expires and the event is sent again; consumers dedupe on outbox_id.
			logger.Error("mark outbox sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}

		sent++
		metrics.RecordOutboxPublished(event.Topic, "sent")
		logger.Debug("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	logger.Info("outbox batch published", zap.Int("claimed", len(events)), zap.Int("sent", sent))
	return sent, nil
}
