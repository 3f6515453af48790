package leavebalance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) (*AmountOfLeave, error)
	Insert(ctx context.Context, row *AmountOfLeave) (bool, error)
	Increment(ctx context.Context, employeeID uuid.UUID, year, delta int) (int64, error)
	DecrementGuarded(ctx context.Context, employeeID uuid.UUID, year, amount int) (int64, error)
	AppendTransaction(ctx context.Context, t *Transaction) error
	SumTransactions(ctx context.Context, employeeID uuid.UUID, year int) (int, error)
	ListTransactions(ctx context.Context, employeeID uuid.UUID, year int) ([]Transaction, error)
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

func (r *repository) FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) (*AmountOfLeave, error) {
	var row AmountOfLeave
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ?", employeeID, year).
		First(&row).Error
	return &row, err
}

// Insert returns false when the (employee, year) row already exists.
func (r *repository) Insert(ctx context.Context, row *AmountOfLeave) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) Increment(ctx context.Context, employeeID uuid.UUID, year, delta int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&AmountOfLeave{}).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Updates(map[string]any{
			"amount":     gorm.Expr("amount + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

// DecrementGuarded only touches the row when the balance covers amount.
func (r *repository) DecrementGuarded(ctx context.Context, employeeID uuid.UUID, year, amount int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&AmountOfLeave{}).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Where("amount >= ?", amount).
		Updates(map[string]any{
			"amount":     gorm.Expr("amount - ?", amount),
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) AppendTransaction(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) SumTransactions(ctx context.Context, employeeID uuid.UUID, year int) (int, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Select("COALESCE(SUM(delta), 0)").
		Scan(&sum).Error
	return int(sum), err
}

func (r *repository) ListTransactions(ctx context.Context, employeeID uuid.UUID, year int) ([]Transaction, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}
