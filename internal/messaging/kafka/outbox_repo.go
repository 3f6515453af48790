package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxErrorMessageLen = 500
	retryStep          = 15 * time.Second
	maxRetryMultiplier = 10
)

type OutboxRepository interface {
	WithTx(tx *gorm.DB) OutboxRepository
	Create(ctx context.Context, event *OutboxEvent) error
	ListPending(ctx context.Context, now time.Time, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *gorm.DB) OutboxRepository {
	return &outboxRepository{db: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event *OutboxEvent) error {
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(*event); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *outboxRepository) ListPending(ctx context.Context, now time.Time, limit int) ([]OutboxEvent, error) {
	var events []OutboxEvent
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("(next_retry_at IS NULL OR next_retry_at <= ?)", now).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  at,
			"error_message": nil,
			"updated_at":    at,
		}).Error
}

// MarkFailed schedules a retry with linear backoff capped at maxRetryMultiplier steps.
func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	var event OutboxEvent
	if err := r.db.WithContext(ctx).Select("retry_count").First(&event, "id = ?", id).Error; err != nil {
		return err
	}

	if len(reason) > maxErrorMessageLen {
		reason = reason[:maxErrorMessageLen]
	}
	next := at.Add(RetryDelay(event.RetryCount + 1))

	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusFailed,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"error_message": reason,
			"next_retry_at": next,
			"updated_at":    at,
		}).Error
}

func RetryDelay(attempt int) time.Duration {
	return time.Duration(min(attempt, maxRetryMultiplier)) * retryStep
}

// NewOutboxEvent marshals payload into a pending event.
func NewOutboxEvent(aggregateType, aggregateID, eventType, topic, requestID string, payload any) (*OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &OutboxEvent{
		ID:            uuid.New(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        OutboxStatusPending,
	}, nil
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == uuid.Nil {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
