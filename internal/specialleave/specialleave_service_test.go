package specialleave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pengelola-cuti/internal/approval"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/notification"
	notificationmock "pengelola-cuti/internal/notification/mock"
	"pengelola-cuti/internal/shared/testdb"
	"pengelola-cuti/internal/specialleave"
	specialleaveerrors "pengelola-cuti/internal/specialleave/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type employeeRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Gender    string
	IsWorking bool
	DeletedAt gorm.DeletedAt
}

func (employeeRow) TableName() string { return "employees" }

type leaveRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid"`
	StartDate  time.Time `gorm:"type:date"`
	EndDate    time.Time `gorm:"type:date"`
	Status     approval.Status
	DeletedAt  gorm.DeletedAt
}

func (leaveRow) TableName() string { return "leaves" }

type fixture struct {
	db       *gorm.DB
	repo     specialleave.Repository
	notifier *notificationmock.MockNotifier
	service  specialleave.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testdb.Open(t,
		&specialleave.SpecialLeave{}, &specialleave.EmployeeSpecialLeave{},
		&kafka.OutboxEvent{}, &employeeRow{}, &leaveRow{},
	)
	repo := specialleave.NewRepository(db)
	notifier := notificationmock.NewMockNotifier(gomock.NewController(t))
	return fixture{
		db:       db,
		repo:     repo,
		notifier: notifier,
		service:  specialleave.NewService(db, repo, kafka.NewOutboxRepository(db), notifier),
	}
}

func (f fixture) employee(t *testing.T, gender string, working bool) uuid.UUID {
	t.Helper()
	row := employeeRow{ID: uuid.New(), Gender: gender, IsWorking: working}
	require.NoError(t, f.db.Create(&row).Error)
	return row.ID
}

func (f fixture) catalog(t *testing.T, gender specialleave.Gender, amount int, dayType specialleave.DayType) *specialleave.SpecialLeave {
	t.Helper()
	item := &specialleave.SpecialLeave{
		Title:     "SL-" + uuid.NewString()[:8],
		Gender:    gender,
		Amount:    amount,
		TypeOfDay: dayType,
	}
	require.NoError(t, f.repo.CreateCatalog(context.Background(), item))
	return item
}

func TestDayType_Count(t *testing.T) {
	// 2026-03-06 is a Friday.
	fri := time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)
	mon := fri.AddDate(0, 0, 3)

	assert.Equal(t, 4, specialleave.DayTypeCalendar.Count(fri, mon))
	assert.Equal(t, 2, specialleave.DayTypeWorkday.Count(fri, mon))
	assert.Equal(t, 0, specialleave.DayTypeWorkday.Count(fri.AddDate(0, 0, 1), fri.AddDate(0, 0, 2)))
}

func TestGender_Allows(t *testing.T) {
	assert.True(t, specialleave.GenderAll.Allows("MALE"))
	assert.True(t, specialleave.GenderFemale.Allows("FEMALE"))
	assert.False(t, specialleave.GenderFemale.Allows("MALE"))
}

func TestSpecialLeaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success counts workdays", func(t *testing.T) {
		f := newFixture(t)
		employeeID := f.employee(t, "MALE", true)
		item := f.catalog(t, specialleave.GenderAll, 3, specialleave.DayTypeWorkday)

		resp, err := f.service.Create(ctx, uuid.NewString(), employeeID.String(), specialleave.CreateEmployeeSpecialLeaveRequest{
			SpecialLeaveID: item.ID.String(),
			StartDate:      "2026-03-06",
			EndDate:        "2026-03-10",
			Reason:         "wedding",
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Days)
		assert.Equal(t, "WAITING", resp.Status)
	})

	t.Run("negative gender not eligible", func(t *testing.T) {
		f := newFixture(t)
		employeeID := f.employee(t, "MALE", true)
		item := f.catalog(t, specialleave.GenderFemale, 90, specialleave.DayTypeCalendar)

		_, err := f.service.Create(ctx, uuid.NewString(), employeeID.String(), specialleave.CreateEmployeeSpecialLeaveRequest{
			SpecialLeaveID: item.ID.String(),
			StartDate:      "2026-03-02",
			EndDate:        "2026-03-02",
		})

		assert.True(t, errors.Is(err, specialleaveerrors.ErrGenderNotEligible))
	})

	t.Run("negative span exceeds amount", func(t *testing.T) {
		f := newFixture(t)
		employeeID := f.employee(t, "FEMALE", true)
		item := f.catalog(t, specialleave.GenderAll, 2, specialleave.DayTypeCalendar)

		_, err := f.service.Create(ctx, uuid.NewString(), employeeID.String(), specialleave.CreateEmployeeSpecialLeaveRequest{
			SpecialLeaveID: item.ID.String(),
			StartDate:      "2026-03-02",
			EndDate:        "2026-03-04",
		})

		assert.True(t, errors.Is(err, specialleaveerrors.ErrExceedsEntitlement))
	})

	t.Run("negative overlaps regular leave", func(t *testing.T) {
		f := newFixture(t)
		employeeID := f.employee(t, "MALE", true)
		item := f.catalog(t, specialleave.GenderAll, 3, specialleave.DayTypeCalendar)
		start := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
		require.NoError(t, f.db.Create(&leaveRow{
			ID: uuid.New(), EmployeeID: employeeID,
			StartDate: start, EndDate: start.AddDate(0, 0, 1),
			Status: approval.StatusApprove,
		}).Error)

		_, err := f.service.Create(ctx, uuid.NewString(), employeeID.String(), specialleave.CreateEmployeeSpecialLeaveRequest{
			SpecialLeaveID: item.ID.String(),
			StartDate:      "2026-03-10",
			EndDate:        "2026-03-11",
			Reason:         "wedding",
		})

		assert.True(t, errors.Is(err, specialleaveerrors.ErrOverlap))
	})

	t.Run("negative inactive employee", func(t *testing.T) {
		f := newFixture(t)
		employeeID := f.employee(t, "FEMALE", false)
		item := f.catalog(t, specialleave.GenderAll, 2, specialleave.DayTypeCalendar)

		_, err := f.service.Create(ctx, uuid.NewString(), employeeID.String(), specialleave.CreateEmployeeSpecialLeaveRequest{
			SpecialLeaveID: item.ID.String(),
			StartDate:      "2026-03-02",
			EndDate:        "2026-03-02",
		})

		assert.True(t, errors.Is(err, specialleaveerrors.ErrEmployeeInactive))
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		f := newFixture(t)
		item := f.catalog(t, specialleave.GenderAll, 2, specialleave.DayTypeCalendar)

		_, err := f.service.Create(ctx, uuid.NewString(), uuid.NewString(), specialleave.CreateEmployeeSpecialLeaveRequest{
			SpecialLeaveID: item.ID.String(),
			StartDate:      "2026-03-02",
			EndDate:        "2026-03-02",
		})

		assert.True(t, errors.Is(err, specialleaveerrors.ErrEmployeeNotFound))
	})
}

func TestSpecialLeaveService_Decide(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (fixture, specialleave.EmployeeSpecialLeaveResponse) {
		f := newFixture(t)
		employeeID := f.employee(t, "FEMALE", true)
		item := f.catalog(t, specialleave.GenderAll, 5, specialleave.DayTypeCalendar)
		created, err := f.service.Create(ctx, uuid.NewString(), employeeID.String(), specialleave.CreateEmployeeSpecialLeaveRequest{
			SpecialLeaveID: item.ID.String(),
			StartDate:      "2026-03-02",
			EndDate:        "2026-03-03",
		})
		require.NoError(t, err)
		return f, created
	}

	t.Run("approve then approve again conflicts", func(t *testing.T) {
		f, created := setup(t)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), notification.TemplateSpecialLeaveApproved, gomock.Any())

		resp, err := f.service.Approve(ctx, uuid.NewString(), created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "APPROVE", resp.Status)

		_, err = f.service.Approve(ctx, uuid.NewString(), created.ID)
		assert.True(t, errors.Is(err, approval.ErrInvalidTransition))

		var outbox int64
		require.NoError(t, f.db.Model(&kafka.OutboxEvent{}).Count(&outbox).Error)
		assert.Equal(t, int64(1), outbox)
	})

	t.Run("reject stores note", func(t *testing.T) {
		f, created := setup(t)
		f.notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), notification.TemplateSpecialLeaveRejected, gomock.Any()).
			Do(func(_ context.Context, _ uuid.UUID, _ string, fields map[string]string) {
				assert.Equal(t, "missing document", fields["note"])
			})

		resp, err := f.service.Reject(ctx, uuid.NewString(), created.ID, "missing document")

		assert.NoError(t, err)
		assert.Equal(t, "REJECT", resp.Status)
	})

	t.Run("negative reject without note", func(t *testing.T) {
		f, created := setup(t)

		_, err := f.service.Reject(ctx, uuid.NewString(), created.ID, "")

		assert.True(t, errors.Is(err, approval.ErrNoteRequired))
		items, _, err := f.repo.FindAll(ctx, specialleave.ListFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusWaiting, items[0].Status)
	})

	t.Run("negative not found", func(t *testing.T) {
		f, _ := setup(t)

		_, err := f.service.Approve(ctx, uuid.NewString(), uuid.NewString())

		assert.True(t, errors.Is(err, specialleaveerrors.ErrRequestNotFound))
	})
}

func TestSpecialLeaveService_Catalog(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.service.CreateCatalog(ctx, specialleave.CreateSpecialLeaveRequest{
		Title: "Marriage", Gender: "all", Amount: 3, TypeOfDay: "workday",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ALL", resp.Gender)
	assert.Equal(t, "WORKDAY", resp.TypeOfDay)

	_, err = f.service.CreateCatalog(ctx, specialleave.CreateSpecialLeaveRequest{
		Title: "Marriage", Gender: "ALL", Amount: 3, TypeOfDay: "WORKDAY",
	})
	assert.True(t, errors.Is(err, specialleaveerrors.ErrSpecialLeaveExists))

	items, err := f.service.ListCatalog(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
