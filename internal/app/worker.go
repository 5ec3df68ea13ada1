package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go-attendo/internal/config"
	"go-attendo/internal/messaging/kafka"
	"go-attendo/internal/messaging/kafka/producer"
	"go-attendo/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays attendance and employee outbox events to Kafka until
// SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, producer.WorkerConfig{
		PollInterval:  3 * time.Second,
		BatchSize:     50,
		SentRetention: 7 * 24 * time.Hour,
	})

	logger.Info("worker shutting down")
	return nil
}

