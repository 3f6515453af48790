package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pengelola-cuti/internal/approval"
	"pengelola-cuti/internal/leave"
	leaveerrors "pengelola-cuti/internal/leave/errors"
	"pengelola-cuti/internal/leavebalance"
	leavebalanceerrors "pengelola-cuti/internal/leavebalance/errors"
	ledgermock "pengelola-cuti/internal/leavebalance/mock"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/notification"
	notificationmock "pengelola-cuti/internal/notification/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createTypeFn       func(ctx context.Context, t *leave.TypeOfLeave) error
	listTypesFn        func(ctx context.Context) ([]leave.TypeOfLeave, error)
	findTypeByIDFn     func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error)
	createFn           func(ctx context.Context, l *leave.Leave) error
	createBatchFn      func(ctx context.Context, leaves []leave.Leave) error
	findAllFn          func(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, int64, error)
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*leave.Leave, error)
	updateStatusFn     func(ctx context.Context, l *leave.Leave, d approval.Decision) (int64, error)
	hasOverlapFn       func(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error)
	workingStatusFn    func(ctx context.Context, employeeID uuid.UUID) (bool, bool, error)
	listWorkingIDsFn   func(ctx context.Context) ([]uuid.UUID, error)
	updateStatusCalled int
}

func (f *fakeLeaveRepository) WithTx(tx *gorm.DB) leave.Repository { return f }

func (f *fakeLeaveRepository) CreateType(ctx context.Context, t *leave.TypeOfLeave) error {
	if f.createTypeFn != nil {
		return f.createTypeFn(ctx, t)
	}
	return nil
}

func (f *fakeLeaveRepository) ListTypes(ctx context.Context) ([]leave.TypeOfLeave, error) {
	if f.listTypesFn != nil {
		return f.listTypesFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindTypeByID(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
	if f.findTypeByIDFn != nil {
		return f.findTypeByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (f *fakeLeaveRepository) CreateBatch(ctx context.Context, leaves []leave.Leave) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, leaves)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, int64, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) UpdateStatus(ctx context.Context, l *leave.Leave, d approval.Decision) (int64, error) {
	f.updateStatusCalled++
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, l, d)
	}
	return 1, nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	if f.hasOverlapFn != nil {
		return f.hasOverlapFn(ctx, employeeID, startDate, endDate)
	}
	return false, nil
}

func (f *fakeLeaveRepository) EmployeeWorkingStatus(ctx context.Context, employeeID uuid.UUID) (bool, bool, error) {
	if f.workingStatusFn != nil {
		return f.workingStatusFn(ctx, employeeID)
	}
	return true, true, nil
}

func (f *fakeLeaveRepository) ListWorkingEmployeeIDs(ctx context.Context) ([]uuid.UUID, error) {
	if f.listWorkingIDsFn != nil {
		return f.listWorkingIDsFn(ctx)
	}
	return nil, nil
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event *kafka.OutboxEvent) error {
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, now time.Time, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	return nil
}

type leaveServiceDeps struct {
	db       *gorm.DB
	sqlMock  sqlmock.Sqlmock
	repo     *fakeLeaveRepository
	ledger   *ledgermock.MockLedger
	outbox   *fakeOutbox
	notifier *notificationmock.MockNotifier
	service  leave.Service
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	deps := &leaveServiceDeps{
		db:       db,
		sqlMock:  mock,
		repo:     &fakeLeaveRepository{},
		ledger:   ledgermock.NewMockLedger(ctrl),
		outbox:   &fakeOutbox{},
		notifier: notificationmock.NewMockNotifier(ctrl),
	}
	deps.service = leave.NewService(db, deps.repo, deps.ledger, deps.outbox, deps.notifier)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
		return
	}
	mock.ExpectRollback()
}

func waitingLeave(days int) *leave.Leave {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	return &leave.Leave{
		ID:            uuid.New(),
		EmployeeID:    uuid.New(),
		TypeOfLeaveID: uuid.New(),
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, days-1),
		AmountOfLeave: days,
		Reason:        "family",
		Status:        approval.StatusWaiting,
		CreatedBy:     uuid.New(),
		Version:       1,
	}
}

func TestLeaveService_Approve(t *testing.T) {
	t.Run("success debits inclusive span", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		l := waitingLeave(3)
		actorID := uuid.New()
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
			return l, nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, got *leave.Leave, d approval.Decision) (int64, error) {
			assert.Equal(t, approval.StatusApprove, d.Target)
			assert.Equal(t, actorID, d.DecidedBy)
			assert.Equal(t, 1, got.Version)
			return 1, nil
		}
		expectTx(t, deps.sqlMock, true)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().
			Debit(gomock.Any(), l.EmployeeID, 2026, 3, leavebalance.KindLeave, &l.ID).
			Return(nil)
		deps.ledger.EXPECT().Balance(gomock.Any(), l.EmployeeID, 2026).Return(9, nil)
		deps.notifier.EXPECT().
			Notify(gomock.Any(), l.EmployeeID, notification.TemplateLeaveApproved, gomock.Any()).
			Do(func(_ context.Context, _ uuid.UUID, _ string, fields map[string]string) {
				assert.Equal(t, "3", fields["days"])
				assert.Equal(t, "9", fields["balance"])
			})

		resp, err := deps.service.Approve(context.Background(), actorID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "APPROVE", resp.Status)
		assert.Equal(t, 3, resp.AmountOfLeave)
		assert.Len(t, deps.outbox.events, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already approved is conflict without ledger mutation", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		l := waitingLeave(2)
		l.Status = approval.StatusApprove
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
			return l, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(context.Background(), uuid.NewString(), l.ID.String())

		assert.True(t, errors.Is(err, approval.ErrInvalidTransition))
		assert.Zero(t, deps.repo.updateStatusCalled)
		assert.Empty(t, deps.outbox.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative lost race", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		l := waitingLeave(1)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
			return l, nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, _ *leave.Leave, _ approval.Decision) (int64, error) {
			return 0, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(context.Background(), uuid.NewString(), l.ID.String())

		assert.True(t, errors.Is(err, approval.ErrInvalidTransition))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative insufficient balance rolls back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		l := waitingLeave(5)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
			return l, nil
		}
		expectTx(t, deps.sqlMock, false)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().
			Debit(gomock.Any(), l.EmployeeID, 2026, 5, leavebalance.KindLeave, gomock.Any()).
			Return(leavebalanceerrors.ErrInsufficientBalance)

		_, err := deps.service.Approve(context.Background(), uuid.NewString(), l.ID.String())

		assert.True(t, errors.Is(err, leavebalanceerrors.ErrInsufficientBalance))
		assert.Empty(t, deps.outbox.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(context.Background(), uuid.NewString(), uuid.NewString())

		assert.True(t, errors.Is(err, leaveerrors.ErrLeaveNotFound))
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Approve(context.Background(), uuid.NewString(), "bad")

		assert.True(t, errors.Is(err, leaveerrors.ErrInvalidLeaveID))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Reject(t *testing.T) {
	t.Run("success stores note without ledger", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		l := waitingLeave(2)
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
			return l, nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, _ *leave.Leave, d approval.Decision) (int64, error) {
			assert.Equal(t, approval.StatusReject, d.Target)
			require.NotNil(t, d.Note)
			assert.Equal(t, "peak season", *d.Note)
			return 1, nil
		}
		expectTx(t, deps.sqlMock, true)
		deps.notifier.EXPECT().
			Notify(gomock.Any(), l.EmployeeID, notification.TemplateLeaveRejected, gomock.Any()).
			Do(func(_ context.Context, _ uuid.UUID, _ string, fields map[string]string) {
				assert.Equal(t, "peak season", fields["note"])
			})

		resp, err := deps.service.Reject(context.Background(), uuid.NewString(), l.ID.String(), "  peak season ")

		assert.NoError(t, err)
		assert.Equal(t, "REJECT", resp.Status)
		require.NotNil(t, resp.Note)
		assert.Equal(t, "peak season", *resp.Note)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative empty note fails before any read or write", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		found := false
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
			found = true
			return waitingLeave(1), nil
		}

		_, err := deps.service.Reject(context.Background(), uuid.NewString(), uuid.NewString(), "   ")

		assert.True(t, errors.Is(err, approval.ErrNoteRequired))
		assert.False(t, found)
		assert.Zero(t, deps.repo.updateStatusCalled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already rejected", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		l := waitingLeave(1)
		l.Status = approval.StatusReject
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
			return l, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Reject(context.Background(), uuid.NewString(), l.ID.String(), "no")

		assert.True(t, errors.Is(err, approval.ErrInvalidTransition))
	})
}

func TestLeaveService_Create(t *testing.T) {
	req := leave.CreateLeaveRequest{
		TypeOfLeaveID: uuid.NewString(),
		StartDate:     "2026-05-04",
		EndDate:       "2026-05-06",
		Reason:        "trip",
	}

	t.Run("regular leave waits for approval", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.findTypeByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
			return &leave.TypeOfLeave{ID: id, Title: "Annual", Category: leave.CategoryRegular}, nil
		}
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Create(context.Background(), uuid.NewString(), uuid.NewString(), req)

		assert.NoError(t, err)
		assert.Equal(t, "WAITING", resp.Status)
		assert.Equal(t, 3, resp.AmountOfLeave)
		assert.Empty(t, deps.outbox.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("optional leave is approved and debited", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		employeeID := uuid.New()
		deps.repo.findTypeByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
			return &leave.TypeOfLeave{ID: id, Title: "Birthday", Category: leave.CategoryOptional}, nil
		}
		expectTx(t, deps.sqlMock, true)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().Debit(gomock.Any(), employeeID, 2026, 3, leavebalance.KindLeave, gomock.Any()).Return(nil)
		deps.ledger.EXPECT().Balance(gomock.Any(), employeeID, 2026).Return(0, leavebalanceerrors.ErrBalanceNotFound)
		deps.notifier.EXPECT().
			Notify(gomock.Any(), employeeID, notification.TemplateLeaveApproved, gomock.Any()).
			Do(func(_ context.Context, _ uuid.UUID, _ string, fields map[string]string) {
				assert.Equal(t, "-", fields["balance"])
			})

		resp, err := deps.service.Create(context.Background(), uuid.NewString(), employeeID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "APPROVE", resp.Status)
		assert.NotNil(t, resp.DecidedBy)
		assert.Len(t, deps.outbox.events, 1)
	})

	t.Run("negative mandatory type needs collective", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.findTypeByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
			return &leave.TypeOfLeave{ID: id, Category: leave.CategoryMandatory}, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(context.Background(), uuid.NewString(), uuid.NewString(), req)

		assert.True(t, errors.Is(err, leaveerrors.ErrMandatoryViaCollective))
	})

	t.Run("negative overlap", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.findTypeByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
			return &leave.TypeOfLeave{ID: id, Category: leave.CategoryRegular}, nil
		}
		deps.repo.hasOverlapFn = func(ctx context.Context, _ uuid.UUID, _, _ time.Time) (bool, error) {
			return true, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(context.Background(), uuid.NewString(), uuid.NewString(), req)

		assert.True(t, errors.Is(err, leaveerrors.ErrLeaveOverlap))
	})

	t.Run("negative inactive employee", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.findTypeByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
			return &leave.TypeOfLeave{ID: id, Category: leave.CategoryRegular}, nil
		}
		deps.repo.workingStatusFn = func(ctx context.Context, _ uuid.UUID) (bool, bool, error) {
			return true, false, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(context.Background(), uuid.NewString(), uuid.NewString(), req)

		assert.True(t, errors.Is(err, leaveerrors.ErrEmployeeInactive))
	})

	t.Run("negative reversed dates", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		bad := req
		bad.StartDate, bad.EndDate = req.EndDate, req.StartDate

		_, err := deps.service.Create(context.Background(), uuid.NewString(), uuid.NewString(), bad)

		assert.True(t, errors.Is(err, leaveerrors.ErrInvalidDateRange))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative missing employee", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Create(context.Background(), uuid.NewString(), "", req)

		assert.True(t, errors.Is(err, leaveerrors.ErrEmployeeIDRequired))
	})
}

func TestLeaveService_CreateCollective(t *testing.T) {
	req := leave.CreateCollectiveLeaveRequest{
		TypeOfLeaveID: uuid.NewString(),
		StartDate:     "2026-12-24",
		EndDate:       "2026-12-25",
		Reason:        "holiday",
	}
	mandatory := func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
		return &leave.TypeOfLeave{ID: id, Title: "Cuti Bersama", Category: leave.CategoryMandatory}, nil
	}

	t.Run("success debits every working employee", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		employees := []uuid.UUID{uuid.New(), uuid.New()}
		deps.repo.findTypeByIDFn = mandatory
		deps.repo.listWorkingIDsFn = func(ctx context.Context) ([]uuid.UUID, error) { return employees, nil }
		deps.repo.createBatchFn = func(ctx context.Context, leaves []leave.Leave) error {
			for _, l := range leaves {
				assert.Equal(t, approval.StatusApprove, l.Status)
				assert.Equal(t, 2, l.AmountOfLeave)
			}
			return nil
		}
		expectTx(t, deps.sqlMock, true)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		for _, id := range employees {
			deps.ledger.EXPECT().Debit(gomock.Any(), id, 2026, 2, leavebalance.KindCollective, gomock.Any()).Return(nil)
			deps.notifier.EXPECT().Notify(gomock.Any(), id, notification.TemplateLeaveCollective, gomock.Any())
		}

		resp, err := deps.service.CreateCollective(context.Background(), uuid.NewString(), req)

		assert.NoError(t, err)
		assert.Len(t, resp.LeaveIDs, 2)
		assert.Equal(t, 2, resp.Days)
		assert.Len(t, deps.outbox.events, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("skips employee already on leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		onLeave, atWork := uuid.New(), uuid.New()
		deps.repo.findTypeByIDFn = mandatory
		deps.repo.listWorkingIDsFn = func(ctx context.Context) ([]uuid.UUID, error) {
			return []uuid.UUID{onLeave, atWork}, nil
		}
		deps.repo.hasOverlapFn = func(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error) {
			return employeeID == onLeave, nil
		}
		deps.repo.createBatchFn = func(ctx context.Context, leaves []leave.Leave) error {
			require.Len(t, leaves, 1)
			assert.Equal(t, atWork, leaves[0].EmployeeID)
			return nil
		}
		expectTx(t, deps.sqlMock, true)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().Debit(gomock.Any(), atWork, 2026, 2, leavebalance.KindCollective, gomock.Any()).Return(nil)
		deps.notifier.EXPECT().Notify(gomock.Any(), atWork, notification.TemplateLeaveCollective, gomock.Any())

		resp, err := deps.service.CreateCollective(context.Background(), uuid.NewString(), req)

		assert.NoError(t, err)
		assert.Len(t, resp.LeaveIDs, 1)
		assert.Equal(t, []string{onLeave.String()}, resp.SkippedEmployeeIDs)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative everyone already on leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.findTypeByIDFn = mandatory
		deps.repo.listWorkingIDsFn = func(ctx context.Context) ([]uuid.UUID, error) { return []uuid.UUID{uuid.New()}, nil }
		deps.repo.hasOverlapFn = func(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error) {
			return true, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.CreateCollective(context.Background(), uuid.NewString(), req)

		assert.True(t, errors.Is(err, leaveerrors.ErrNoEligibleEmployees))
		assert.Empty(t, deps.outbox.events)
	})

	t.Run("negative one insufficient balance fails the batch", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		employees := []uuid.UUID{uuid.New(), uuid.New()}
		deps.repo.findTypeByIDFn = mandatory
		deps.repo.listWorkingIDsFn = func(ctx context.Context) ([]uuid.UUID, error) { return employees, nil }
		expectTx(t, deps.sqlMock, false)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().Debit(gomock.Any(), employees[0], 2026, 2, leavebalance.KindCollective, gomock.Any()).Return(nil)
		deps.ledger.EXPECT().Debit(gomock.Any(), employees[1], 2026, 2, leavebalance.KindCollective, gomock.Any()).
			Return(leavebalanceerrors.ErrInsufficientBalance)

		_, err := deps.service.CreateCollective(context.Background(), uuid.NewString(), req)

		assert.True(t, errors.Is(err, leavebalanceerrors.ErrInsufficientBalance))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative regular type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.findTypeByIDFn = func(ctx context.Context, id uuid.UUID) (*leave.TypeOfLeave, error) {
			return &leave.TypeOfLeave{ID: id, Category: leave.CategoryRegular}, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.CreateCollective(context.Background(), uuid.NewString(), req)

		assert.True(t, errors.Is(err, leaveerrors.ErrNotMandatoryType))
	})

	t.Run("negative nobody working", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.findTypeByIDFn = mandatory
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.CreateCollective(context.Background(), uuid.NewString(), req)

		assert.True(t, errors.Is(err, leaveerrors.ErrNoWorkingEmployees))
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	t.Run("success maps filter and pagination", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		employeeID := uuid.New()
		deps.repo.findAllFn = func(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, int64, error) {
			require.NotNil(t, filter.EmployeeID)
			assert.Equal(t, employeeID, *filter.EmployeeID)
			assert.Equal(t, approval.StatusWaiting, filter.Status)
			assert.Equal(t, 10, filter.Offset)
			assert.Equal(t, 10, filter.Limit)
			return []leave.Leave{*waitingLeave(1)}, 11, nil
		}

		resp, total, err := deps.service.GetAll(context.Background(), leave.ListLeavesQuery{
			EmployeeID: employeeID.String(),
			Status:     "waiting",
			Page:       2,
			PageSize:   10,
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(11), total)
	})

	t.Run("negative invalid employee filter", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, _, err := deps.service.GetAll(context.Background(), leave.ListLeavesQuery{EmployeeID: "x", Page: 1, PageSize: 10})

		assert.True(t, errors.Is(err, leaveerrors.ErrInvalidEmployeeID))
	})
}

func TestLeaveService_CreateType(t *testing.T) {
	t.Run("success normalizes category", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		resp, err := deps.service.CreateType(context.Background(), leave.CreateTypeOfLeaveRequest{Title: " Annual ", Category: "regular"})

		assert.NoError(t, err)
		assert.Equal(t, "Annual", resp.Title)
		assert.Equal(t, "REGULAR", resp.Category)
	})

	t.Run("negative duplicate title", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.createTypeFn = func(ctx context.Context, _ *leave.TypeOfLeave) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "uq_type_of_leave_title"`)
		}

		_, err := deps.service.CreateType(context.Background(), leave.CreateTypeOfLeaveRequest{Title: "Annual", Category: "REGULAR"})

		assert.True(t, errors.Is(err, leaveerrors.ErrTypeOfLeaveExists))
	})
}
