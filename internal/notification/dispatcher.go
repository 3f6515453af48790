package notification

import (
	"context"

	"pengelola-cuti/internal/events"

	"go.uber.org/zap"
)

// Dispatcher renders a requested notification and hands it to the mailer.
type Dispatcher struct {
	renderer *Renderer
	mailer   Mailer
	logger   *zap.Logger
}

func NewDispatcher(renderer *Renderer, mailer Mailer, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &Dispatcher{renderer: renderer, mailer: mailer, logger: l}
}

func (d *Dispatcher) Handle(ctx context.Context, event events.NotificationRequestedEvent) error {
	recipient := Recipient{Email: event.Email, Name: event.Name}
	if recipient.Email == "" {
		return ErrNoRecipient
	}

	subject, body, err := d.renderer.Render(event.Template, recipient, event.Fields)
	if err != nil {
		return err
	}

	if err := d.mailer.Deliver(ctx, recipient, subject, body); err != nil {
		d.logger.Error("deliver notification failed",
			zap.String("template", event.Template),
			zap.String("email", event.Email),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return err
	}

	d.logger.Info("notification delivered",
		zap.String("template", event.Template),
		zap.String("email", event.Email),
	)
	return nil
}
