package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"pengelola-cuti/internal/accrual"
	"pengelola-cuti/internal/config"
	"pengelola-cuti/internal/leavebalance"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/messaging/kafka/producer"
	"pengelola-cuti/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker runs the outbox publisher and the accrual reconciler until
// SIGINT/SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	policy, err := leavebalance.ParseNegativePolicy(cfg.NegativeBalancePolicy)
	if err != nil {
		return err
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

	if cfg.Kafka == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka, cfg.Database.MaxRetries, false)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)
	ledger := leavebalance.NewLedger(gormDB, leavebalance.NewRepository(gormDB), policy, logger)
	reconciler := accrual.NewReconciler(gormDB, accrual.NewRepository(gormDB), ledger, cfg.AccrualCheckInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)
	}()
	go func() {
		defer wg.Done()
		reconciler.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	wg.Wait()

	return nil
}
