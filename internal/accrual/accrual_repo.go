package accrual

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Activate(ctx context.Context, s *Schedule) error
	InsertIfMissing(ctx context.Context, s *Schedule) (bool, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*Schedule, error)
	Deactivate(ctx context.Context, employeeID uuid.UUID) error
	ListDue(ctx context.Context, now time.Time, limit int) ([]Schedule, error)
	Advance(ctx context.Context, id uuid.UUID, expectedNext, next, ranAt time.Time) (int64, error)
	ListWorkingContracts(ctx context.Context) ([]ContractRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Activate upserts the employee's schedule and switches it on.
func (r *repository) Activate(ctx context.Context, s *Schedule) error {
	s.Active = true
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"day_of_month", "amount", "next_run_at", "active", "updated_at"}),
		}).
		Create(s).Error
}

func (r *repository) InsertIfMissing(ctx context.Context, s *Schedule) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(s)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*Schedule, error) {
	var s Schedule
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&s).Error
	return &s, err
}

func (r *repository) Deactivate(ctx context.Context, employeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Schedule{}).
		Where("employee_id = ?", employeeID).
		Updates(map[string]any{"active": false, "updated_at": time.Now().UTC()}).Error
}

func (r *repository) ListDue(ctx context.Context, now time.Time, limit int) ([]Schedule, error) {
	var due []Schedule
	err := r.db.WithContext(ctx).
		Where("active = ? AND next_run_at <= ?", true, now.UTC()).
		Order("next_run_at ASC").
		Limit(limit).
		Find(&due).Error
	return due, err
}

// Advance moves next_run_at forward only if nobody else did it first.
func (r *repository) Advance(ctx context.Context, id uuid.UUID, expectedNext, next, ranAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Schedule{}).
		Where("id = ? AND next_run_at = ?", id, expectedNext).
		Updates(map[string]any{
			"next_run_at": next,
			"last_run_at": ranAt,
			"updated_at":  ranAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) ListWorkingContracts(ctx context.Context) ([]ContractRow, error) {
	var rows []ContractRow
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("e.id AS employee_id, COALESCE(t.is_contract, false) AS is_contract, COALESCE(t.new_contract, false) AS new_contract, t.start_contract").
		Joins("LEFT JOIN type_of_employees t ON t.employee_id = e.id").
		Where("e.is_working = ? AND e.deleted_at IS NULL", true).
		Scan(&rows).Error
	return rows, err
}
