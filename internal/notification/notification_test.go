package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pengelola-cuti/internal/events"
	"pengelola-cuti/internal/notification"
	"pengelola-cuti/internal/notification/mock"
	"pengelola-cuti/internal/shared/testdb"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestRenderer_Render(t *testing.T) {
	r, err := notification.NewRenderer()
	require.NoError(t, err)

	t.Run("approved", func(t *testing.T) {
		subject, body, err := r.Render(notification.TemplateLeaveApproved, notification.Recipient{Name: "Ani"}, map[string]string{
			"start_date": "2026-03-02",
			"end_date":   "2026-03-04",
			"days":       "3",
			"year":       "2026",
			"balance":    "9",
		})

		require.NoError(t, err)
		assert.Equal(t, "Pengajuan cuti disetujui", subject)
		assert.Contains(t, body, "Halo Ani")
		assert.Contains(t, body, "(3 hari)")
		assert.Contains(t, body, "2026: 9 hari")
	})

	t.Run("negative missing field", func(t *testing.T) {
		_, _, err := r.Render(notification.TemplateLeaveRejected, notification.Recipient{Name: "Ani"}, map[string]string{
			"start_date": "2026-03-02",
		})

		assert.Error(t, err)
	})

	t.Run("negative unknown template", func(t *testing.T) {
		_, _, err := r.Render("payslip", notification.Recipient{}, nil)

		assert.True(t, errors.Is(err, notification.ErrUnknownTemplate))
	})
}

func TestNotifier_Notify(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	fields := map[string]string{"note": "kuota penuh"}

	t.Run("sends to resolved recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mock.NewMockDirectory(ctrl)
		sender := mock.NewMockSender(ctrl)
		recipient := notification.Recipient{Email: "ani@example.com", Name: "Ani"}

		dir.EXPECT().Lookup(gomock.Any(), employeeID).Return(recipient, nil)
		sender.EXPECT().
			Send(gomock.Any(), notification.Message{Template: notification.TemplateLeaveRejected, Recipient: recipient, Fields: fields}).
			Return(nil)

		notification.NewNotifier(dir, sender, zap.NewNop()).Notify(ctx, employeeID, notification.TemplateLeaveRejected, fields)
	})

	t.Run("negative lookup failure skips send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mock.NewMockDirectory(ctrl)
		sender := mock.NewMockSender(ctrl)

		dir.EXPECT().Lookup(gomock.Any(), employeeID).Return(notification.Recipient{}, notification.ErrNoRecipient)

		notification.NewNotifier(dir, sender, zap.NewNop()).Notify(ctx, employeeID, notification.TemplateLeaveRejected, fields)
	})

	t.Run("negative send failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mock.NewMockDirectory(ctrl)
		sender := mock.NewMockSender(ctrl)

		dir.EXPECT().Lookup(gomock.Any(), employeeID).Return(notification.Recipient{Email: "a@b.c"}, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			notification.NewNotifier(dir, sender, zap.NewNop()).Notify(ctx, employeeID, notification.TemplateLeaveRejected, fields)
		})
	})
}

type fakeWriter struct {
	msgs []kafkago.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func TestKafkaSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes request event", func(t *testing.T) {
		w := &fakeWriter{}
		sender := notification.NewKafkaSender(w)

		err := sender.Send(ctx, notification.Message{
			Template:  notification.TemplateLeaveApproved,
			Recipient: notification.Recipient{Email: "ani@example.com", Name: "Ani"},
			Fields:    map[string]string{"days": "2"},
		})

		require.NoError(t, err)
		require.Len(t, w.msgs, 1)
		assert.Equal(t, events.NotificationRequestedTopic, w.msgs[0].Topic)

		var got events.NotificationRequestedEvent
		require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
		assert.Equal(t, "ani@example.com", got.Email)
		assert.Equal(t, "2", got.Fields["days"])
	})

	t.Run("negative unknown template", func(t *testing.T) {
		w := &fakeWriter{}

		err := notification.NewKafkaSender(w).Send(ctx, notification.Message{Template: "nope"})

		assert.True(t, errors.Is(err, notification.ErrUnknownTemplate))
		assert.Empty(t, w.msgs)
	})
}

type fakeMailer struct {
	to      notification.Recipient
	subject string
	body    string
	err     error
}

func (f *fakeMailer) Deliver(ctx context.Context, to notification.Recipient, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func TestDispatcher_Handle(t *testing.T) {
	r, err := notification.NewRenderer()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("renders and delivers", func(t *testing.T) {
		m := &fakeMailer{}
		d := notification.NewDispatcher(r, m, zap.NewNop())

		err := d.Handle(ctx, events.NotificationRequestedEvent{
			Template: notification.TemplateSpecialLeaveApproved,
			Email:    "budi@example.com",
			Name:     "Budi",
			Fields:   map[string]string{"title": "Cuti Menikah", "start_date": "2026-05-01", "end_date": "2026-05-03"},
		})

		require.NoError(t, err)
		assert.Equal(t, "budi@example.com", m.to.Email)
		assert.Equal(t, "Cuti khusus disetujui", m.subject)
		assert.Contains(t, m.body, "Cuti Menikah")
	})

	t.Run("negative empty email", func(t *testing.T) {
		d := notification.NewDispatcher(r, &fakeMailer{}, zap.NewNop())

		err := d.Handle(ctx, events.NotificationRequestedEvent{Template: notification.TemplateLeaveApproved})

		assert.True(t, errors.Is(err, notification.ErrNoRecipient))
	})

	t.Run("negative mailer error", func(t *testing.T) {
		d := notification.NewDispatcher(r, &fakeMailer{err: errors.New("smtp down")}, zap.NewNop())

		err := d.Handle(ctx, events.NotificationRequestedEvent{
			Template: notification.TemplateLeaveCollective,
			Email:    "a@b.c",
			Fields:   map[string]string{"title": "Idul Fitri", "start_date": "2026-03-19", "end_date": "2026-03-20", "days": "2"},
		})

		assert.Error(t, err)
	})
}

type employeeRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	DeletedAt gorm.DeletedAt
}

func (employeeRow) TableName() string { return "employees" }

type userRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string
	EmployeeID *uuid.UUID `gorm:"type:uuid"`
	IsActive   bool
	CreatedAt  time.Time
}

func (userRow) TableName() string { return "users" }

func TestDirectory_Lookup(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &employeeRow{}, &userRow{})

	withEmail := uuid.New()
	withoutEmail := uuid.New()
	require.NoError(t, db.Create(&employeeRow{ID: withEmail, Name: "Ani"}).Error)
	require.NoError(t, db.Create(&employeeRow{ID: withoutEmail, Name: "Budi"}).Error)
	require.NoError(t, db.Create(&userRow{ID: uuid.New(), Email: "ani@example.com", EmployeeID: &withEmail, IsActive: true}).Error)

	dir := notification.NewDirectory(db)

	got, err := dir.Lookup(ctx, withEmail)
	require.NoError(t, err)
	assert.Equal(t, notification.Recipient{Email: "ani@example.com", Name: "Ani"}, got)

	_, err = dir.Lookup(ctx, withoutEmail)
	assert.True(t, errors.Is(err, notification.ErrNoRecipient))

	_, err = dir.Lookup(ctx, uuid.New())
	assert.True(t, errors.Is(err, notification.ErrNoRecipient))
}
