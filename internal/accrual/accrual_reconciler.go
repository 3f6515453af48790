package accrual

import (
	"context"
	"errors"
	"time"

	"pengelola-cuti/internal/leavebalance"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dueBatchSize = 100
	// maxCatchUpPasses bounds how many missed months one tick will credit.
	maxCatchUpPasses = 24
)

// Reconciler keeps ledger rows and schedules in line with employee data and
// credits due schedules. Several reconcilers may run at once: each credit is
// paired with a guarded advance in one transaction.
type Reconciler struct {
	db       *gorm.DB
	repo     Repository
	ledger   leavebalance.Ledger
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewReconciler(db *gorm.DB, repo Repository, ledger leavebalance.Ledger, interval time.Duration, logger ...*zap.Logger) *Reconciler {
	l := zap.L().Named("accrual.reconciler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("accrual.reconciler")
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &Reconciler{
		db:       db,
		repo:     repo,
		ledger:   ledger,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

// Run reconciles once immediately, then on every tick until ctx is done.
func (r *Reconciler) Run(ctx context.Context) {
	r.logger.Info("accrual reconciler started", zap.Duration("interval", r.interval))

	if err := r.Reconcile(ctx, r.now()); err != nil {
		r.logger.Error("initial reconcile failed", zap.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("accrual reconciler stopped")
			return
		case <-ticker.C:
			if err := r.Reconcile(ctx, r.now()); err != nil {
				r.logger.Error("reconcile failed", zap.Error(err))
			}
		}
	}
}

func (r *Reconciler) Reconcile(ctx context.Context, now time.Time) error {
	contracts, err := r.repo.ListWorkingContracts(ctx)
	if err != nil {
		return err
	}

	opened, err := r.EnsureYear(ctx, contracts, now)
	if err != nil {
		return err
	}
	created, err := r.EnsureSchedules(ctx, contracts, now)
	if err != nil {
		return err
	}
	credited, err := r.ProcessDue(ctx, now)
	if err != nil {
		return err
	}

	if opened+created+credited > 0 {
		r.logger.Info("reconcile done",
			zap.Int("balances_opened", opened),
			zap.Int("schedules_created", created),
			zap.Int("accruals_credited", credited),
		)
	}
	return nil
}

// EnsureYear opens the current year's ledger row for every working employee
// that lacks one: permanent staff get the full entitlement, contract staff
// start at zero and accrue.
func (r *Reconciler) EnsureYear(ctx context.Context, contracts []ContractRow, now time.Time) (int, error) {
	year := now.UTC().Year()
	opened := 0
	for _, c := range contracts {
		amount := FullYearEntitlement
		if c.IsContract {
			amount = 0
		}
		created, err := r.ledger.OpenIfMissing(ctx, c.EmployeeID, year, amount)
		if err != nil {
			return opened, err
		}
		if created {
			opened++
		}
	}
	return opened, nil
}

// EnsureSchedules creates schedules that should exist but do not. Existing
// rows, including deactivated ones, are left untouched.
func (r *Reconciler) EnsureSchedules(ctx context.Context, contracts []ContractRow, now time.Time) (int, error) {
	created := 0
	for _, c := range contracts {
		if !c.IsContract || c.NewContract || c.StartContract == nil {
			continue
		}
		day := c.StartContract.Day()
		ok, err := r.repo.InsertIfMissing(ctx, &Schedule{
			EmployeeID: c.EmployeeID,
			DayOfMonth: day,
			Amount:     MonthlyAccrual,
			NextRunAt:  FirstRun(day, *c.StartContract, now),
			Active:     true,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// ProcessDue credits every schedule whose next_run_at has passed, catching
// up missed months one pass at a time.
func (r *Reconciler) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	credited := 0
	for pass := 0; pass < maxCatchUpPasses; pass++ {
		due, err := r.repo.ListDue(ctx, now, dueBatchSize)
		if err != nil {
			return credited, err
		}
		if len(due) == 0 {
			return credited, nil
		}

		for _, s := range due {
			ok, err := r.process(ctx, s, now)
			if err != nil {
				return credited, err
			}
			if ok {
				credited++
			}
		}
	}
	return credited, nil
}

var errLostRace = errors.New("schedule advanced elsewhere")

func (r *Reconciler) process(ctx context.Context, s Schedule, now time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return false, tx.Error
	}
	defer tx.Rollback()

	err := func() error {
		rows, err := r.repo.WithTx(tx).Advance(ctx, s.ID, s.NextRunAt, FollowingRun(s.DayOfMonth, s.NextRunAt), now)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errLostRace
		}

		qledger := r.ledger.WithTx(tx)
		year := s.NextRunAt.UTC().Year()
		if _, err := qledger.OpenIfMissing(ctx, s.EmployeeID, year, 0); err != nil {
			return err
		}
		return qledger.Credit(ctx, s.EmployeeID, year, s.Amount, leavebalance.KindAccrual, &s.ID)
	}()
	if errors.Is(err, errLostRace) {
		r.logger.Debug("schedule already processed", zap.String("schedule_id", s.ID.String()))
		return false, nil
	}
	if err != nil {
		r.logger.Error("accrual credit failed",
			zap.String("schedule_id", s.ID.String()),
			zap.String("employee_id", s.EmployeeID.String()),
			zap.Error(err),
		)
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, err
	}
	return true, nil
}
