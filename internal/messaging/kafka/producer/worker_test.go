package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/messaging/kafka/producer"
	"pengelola-cuti/internal/shared/testdb"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	msgs []kafkago.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func seed(t *testing.T, repo kafka.OutboxRepository) *kafka.OutboxEvent {
	t.Helper()
	event, err := kafka.NewOutboxEvent("leave", "leave-1", "leave.decided", "hr.leave.decision.v1", "rid-1", map[string]string{"status": "APPROVE"})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), event))
	return event
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	t.Run("publishes and marks sent", func(t *testing.T) {
		db := testdb.Open(t, &kafka.OutboxEvent{})
		repo := kafka.NewOutboxRepository(db)
		event := seed(t, repo)
		writer := &fakeWriter{}

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), now)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.msgs, 1)
		assert.Equal(t, "hr.leave.decision.v1", writer.msgs[0].Topic)
		assert.Equal(t, []byte("leave-1"), writer.msgs[0].Key)

		var stored kafka.OutboxEvent
		require.NoError(t, db.First(&stored, "id = ?", event.ID).Error)
		assert.Equal(t, kafka.OutboxStatusSent, stored.Status)

		sent, err = producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), now)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("negative publish failure schedules retry", func(t *testing.T) {
		db := testdb.Open(t, &kafka.OutboxEvent{})
		repo := kafka.NewOutboxRepository(db)
		event := seed(t, repo)
		writer := &fakeWriter{err: errors.New("broker down")}

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), now)

		require.NoError(t, err)
		assert.Equal(t, 0, sent)

		var stored kafka.OutboxEvent
		require.NoError(t, db.First(&stored, "id = ?", event.ID).Error)
		assert.Equal(t, kafka.OutboxStatusFailed, stored.Status)
		assert.Equal(t, 1, stored.RetryCount)
		require.NotNil(t, stored.NextRetryAt)
		assert.True(t, stored.NextRetryAt.Equal(now.Add(15*time.Second)))

		// Not retried before the backoff elapses.
		pending, err := repo.ListPending(ctx, now.Add(time.Second), 10)
		require.NoError(t, err)
		assert.Empty(t, pending)

		writer.err = nil
		sent, err = producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 15*time.Second, kafka.RetryDelay(1))
	assert.Equal(t, 150*time.Second, kafka.RetryDelay(10))
	assert.Equal(t, 150*time.Second, kafka.RetryDelay(42))
}
