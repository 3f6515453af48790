package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pengelola-cuti/internal/config"
	"pengelola-cuti/internal/events"
	"pengelola-cuti/internal/messaging/kafka/consumer"
	"pengelola-cuti/internal/notification"
	"pengelola-cuti/internal/shared/connection"

	"go.uber.org/zap"
)

const notificationGroupID = "pengelola-cuti-notification"

// RunConsumer renders requested notifications and delivers them over SMTP.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.SMTP.Host == "" {
		return fmt.Errorf("SMTP_HOST is required")
	}

	renderer, err := notification.NewRenderer()
	if err != nil {
		return err
	}
	dispatcher := notification.NewDispatcher(renderer, notification.NewSMTPMailer(cfg.SMTP), logger)

	reader := connection.NewKafkaReader(cfg.Kafka, events.NotificationRequestedTopic, notificationGroupID)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeNotificationRequested(ctx, reader, dispatcher, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
