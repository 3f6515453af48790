package notification

import (
	"context"

	"pengelola-cuti/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type notifier struct {
	directory Directory
	sender    Sender
	logger    *zap.Logger
}

func NewNotifier(directory Directory, sender Sender, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification.notifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.notifier")
	}
	return &notifier{directory: directory, sender: sender, logger: l}
}

func (n *notifier) Notify(ctx context.Context, employeeID uuid.UUID, template string, fields map[string]string) {
	log := contextutil.GetLogger(ctx, n.logger).With(
		zap.String("employee_id", employeeID.String()),
		zap.String("template", template),
	)

	recipient, err := n.directory.Lookup(ctx, employeeID)
	if err != nil {
		log.Warn("notification recipient lookup failed", zap.Error(err))
		return
	}

	if err := n.sender.Send(ctx, Message{Template: template, Recipient: recipient, Fields: fields}); err != nil {
		log.Warn("notification send failed", zap.Error(err))
		return
	}
	log.Debug("notification queued")
}
