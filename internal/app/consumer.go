package app

import (
	"context"

	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer projects employee lifecycle events into the directory and opens the
// current leave year for new hires, until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger = logger.Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries, logger); err != nil {
		return err
	}

	directory := employee.NewDirectory(employee.NewRepository(gormDB), logger)
	ledger := leave.NewLedger(leave.NewRepository(gormDB), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, directory, ledger, logger)

	logger.Info("consumer shutting down")
	return nil
}
