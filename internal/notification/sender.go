package notification

import (
	"context"
	"encoding/json"
	"time"

	"pengelola-cuti/internal/events"
	"pengelola-cuti/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type kafkaSender struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaSender publishes NotificationRequestedEvent; rendering and SMTP
// delivery happen in the consumer process.
func NewKafkaSender(writer MessageWriter) Sender {
	return &kafkaSender{writer: writer, now: time.Now}
}

func (s *kafkaSender) Send(ctx context.Context, msg Message) error {
	if _, ok := builtinTemplates[msg.Template]; !ok {
		return ErrUnknownTemplate
	}

	payload, err := json.Marshal(events.NotificationRequestedEvent{
		Template:    msg.Template,
		Email:       msg.Recipient.Email,
		Name:        msg.Recipient.Name,
		Fields:      msg.Fields,
		RequestID:   contextutil.GetRequestID(ctx),
		RequestedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.NotificationRequestedTopic,
		Key:   []byte(msg.Recipient.Email),
		Value: payload,
	})
}

type logSender struct {
	logger *zap.Logger
}

// NewLogSender is used when no broker is configured: messages are only logged.
func NewLogSender(logger ...*zap.Logger) Sender {
	l := zap.L().Named("notification.log_sender")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log_sender")
	}
	return &logSender{logger: l}
}

func (s *logSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("notification skipped, no broker configured",
		zap.String("template", msg.Template),
		zap.String("email", msg.Recipient.Email),
	)
	return nil
}
