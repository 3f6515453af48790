package accrual

import (
	"context"
	"errors"
	"time"

	accrualerrors "pengelola-cuti/internal/accrual/errors"
	"pengelola-cuti/internal/leavebalance"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scheduler applies the accrual policy to a single employee. All methods run
// on whatever handle WithTx was given, so employee writes and the ledger
// opening commit together.
type Scheduler interface {
	WithTx(tx *gorm.DB) Scheduler
	Onboard(ctx context.Context, employeeID uuid.UUID, info ContractInfo, now time.Time) (InitialBalance, error)
	Sync(ctx context.Context, employeeID uuid.UUID, info ContractInfo, now time.Time) error
	Offboard(ctx context.Context, employeeID uuid.UUID) error
	GetSchedule(ctx context.Context, employeeID uuid.UUID) (*ScheduleResponse, error)
}

type scheduler struct {
	repo   Repository
	ledger leavebalance.Ledger
	logger *zap.Logger
}

func NewScheduler(repo Repository, ledger leavebalance.Ledger, logger ...*zap.Logger) Scheduler {
	l := zap.L().Named("accrual.scheduler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("accrual.scheduler")
	}
	return &scheduler{repo: repo, ledger: ledger, logger: l}
}

func (s *scheduler) WithTx(tx *gorm.DB) Scheduler {
	return &scheduler{repo: s.repo.WithTx(tx), ledger: s.ledger.WithTx(tx), logger: s.logger}
}

func (s *scheduler) Onboard(ctx context.Context, employeeID uuid.UUID, info ContractInfo, now time.Time) (InitialBalance, error) {
	initial, err := ComputeInitialBalance(info, now)
	if err != nil {
		s.logger.Warn("compute initial balance failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return InitialBalance{}, err
	}

	if err := s.ledger.Open(ctx, employeeID, now.UTC().Year(), initial.Balance); err != nil {
		return InitialBalance{}, err
	}

	if initial.Recurring != nil {
		if err := s.activate(ctx, employeeID, *initial.Recurring); err != nil {
			return InitialBalance{}, err
		}
	}

	s.logger.Info("employee onboarded to accrual",
		zap.String("employee_id", employeeID.String()),
		zap.Int("balance", initial.Balance),
		zap.Bool("recurring", initial.Recurring != nil),
	)
	return initial, nil
}

// Sync re-evaluates the schedule after a contract change. The balance is
// left alone; only future accruals change.
func (s *scheduler) Sync(ctx context.Context, employeeID uuid.UUID, info ContractInfo, now time.Time) error {
	initial, err := ComputeInitialBalance(info, now)
	if err != nil {
		return err
	}
	if initial.Recurring == nil {
		return s.repo.Deactivate(ctx, employeeID)
	}
	return s.activate(ctx, employeeID, *initial.Recurring)
}

func (s *scheduler) Offboard(ctx context.Context, employeeID uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, employeeID); err != nil {
		s.logger.Error("deactivate schedule failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduler) GetSchedule(ctx context.Context, employeeID uuid.UUID) (*ScheduleResponse, error) {
	sched, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accrualerrors.ErrScheduleNotFound
		}
		return nil, err
	}
	return mapToResponse(sched), nil
}

func (s *scheduler) activate(ctx context.Context, employeeID uuid.UUID, spec RecurringJobSpec) error {
	err := s.repo.Activate(ctx, &Schedule{
		EmployeeID: employeeID,
		DayOfMonth: spec.DayOfMonth,
		Amount:     spec.Amount,
		NextRunAt:  spec.FirstRunAt,
	})
	if err != nil {
		s.logger.Error("activate schedule failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
	}
	return err
}
