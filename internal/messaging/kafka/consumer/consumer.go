package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pengelola-cuti/internal/events"
	"pengelola-cuti/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const maxDeliveryAttempts = 3

// RetryDelay is the base wait between delivery attempts; attempt n waits n*RetryDelay.
var RetryDelay = 2 * time.Second

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type NotificationHandler interface {
	Handle(ctx context.Context, event events.NotificationRequestedEvent) error
}

func ConsumeNotificationRequested(
	ctx context.Context,
	reader MessageReader,
	handler NotificationHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		HandleNotificationMessage(ctx, reader, handler, msg, log)
	}
}

// HandleNotificationMessage processes one message. Undeliverable payloads are
// committed and dropped. Delivery failures are retried in place a few times;
// group offsets are cumulative, so once the next message is committed a
// skipped one is never redelivered. After the last attempt the message is
// committed and logged as lost. Only a shutdown mid-retry leaves it uncommitted.
func HandleNotificationMessage(
	ctx context.Context,
	reader MessageReader,
	handler NotificationHandler,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.NotificationRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode notification event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	var err error
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		if err = handler.Handle(ctx, event); err == nil || isPermanent(err) {
			break
		}
		log.Warn("handle notification failed",
			zap.String("template", event.Template),
			zap.String("email", event.Email),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == maxDeliveryAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * RetryDelay):
		}
	}

	switch {
	case err == nil:
	case isPermanent(err):
		log.Warn("dropping undeliverable notification",
			zap.String("template", event.Template),
			zap.Error(err),
		)
	default:
		log.Error("notification lost after retries",
			zap.String("template", event.Template),
			zap.String("email", event.Email),
			zap.Int("attempts", maxDeliveryAttempts),
			zap.Error(err),
		)
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit notification message failed", zap.Error(err))
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, notification.ErrUnknownTemplate) || errors.Is(err, notification.ErrNoRecipient)
}
