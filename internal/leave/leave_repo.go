package leave

import (
	"context"
	"time"

	"pengelola-cuti/internal/approval"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	EmployeeID *uuid.UUID
	Status     approval.Status
	Year       int
	Offset     int
	Limit      int
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateType(ctx context.Context, t *TypeOfLeave) error
	ListTypes(ctx context.Context) ([]TypeOfLeave, error)
	FindTypeByID(ctx context.Context, id uuid.UUID) (*TypeOfLeave, error)

	Create(ctx context.Context, l *Leave) error
	CreateBatch(ctx context.Context, leaves []Leave) error
	FindAll(ctx context.Context, filter ListFilter) ([]Leave, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Leave, error)
	UpdateStatus(ctx context.Context, l *Leave, d approval.Decision) (int64, error)
	HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error)

	EmployeeWorkingStatus(ctx context.Context, employeeID uuid.UUID) (exists bool, working bool, err error)
	ListWorkingEmployeeIDs(ctx context.Context) ([]uuid.UUID, error)
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

func (r *repository) CreateType(ctx context.Context, t *TypeOfLeave) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) ListTypes(ctx context.Context) ([]TypeOfLeave, error) {
	var types []TypeOfLeave
	err := r.db.WithContext(ctx).Order("title ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindTypeByID(ctx context.Context, id uuid.UUID) (*TypeOfLeave, error) {
	var t TypeOfLeave
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("TypeOfLeave").Create(l).Error
}

func (r *repository) CreateBatch(ctx context.Context, leaves []Leave) error {
	if len(leaves) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("TypeOfLeave").CreateInBatches(leaves, 200).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Leave, int64, error) {
	q := r.db.WithContext(ctx).Model(&Leave{})
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Year > 0 {
		from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("start_date >= ? AND start_date < ?", from, from.AddDate(1, 0, 0))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []Leave
	err := q.Preload("TypeOfLeave").
		Order("start_date DESC, created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&leaves).Error
	return leaves, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).Preload("TypeOfLeave").First(&l, "id = ?", id).Error
	return &l, err
}

// UpdateStatus writes the decision only while the row is still WAITING at
// the version that was read; zero rows means someone else decided first.
func (r *repository) UpdateStatus(ctx context.Context, l *Leave, d approval.Decision) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ? AND status = ? AND version = ?", l.ID, approval.StatusWaiting, l.Version).
		Updates(map[string]any{
			"status":     d.Target,
			"decided_by": d.DecidedBy,
			"decided_at": d.DecidedAt,
			"note":       d.Note,
			"version":    gorm.Expr("version + 1"),
			"updated_at": d.DecidedAt,
		})
	return res.RowsAffected, res.Error
}

// HasOverlappingPeriod looks at regular and special leaves alike; an
// employee cannot be on both kinds of leave on the same day.
func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	for _, table := range []string{"leaves", "employee_special_leaves"} {
		var count int64
		err := r.db.WithContext(ctx).
			Table(table).
			Where("employee_id = ? AND deleted_at IS NULL", employeeID).
			Where("status <> ?", approval.StatusReject).
			Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
			Count(&count).Error
		if err != nil || count > 0 {
			return count > 0, err
		}
	}
	return false, nil
}

func (r *repository) EmployeeWorkingStatus(ctx context.Context, employeeID uuid.UUID) (bool, bool, error) {
	var rows []struct {
		IsWorking bool
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("is_working").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Limit(1).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return false, false, err
	}
	return true, rows[0].IsWorking, nil
}

func (r *repository) ListWorkingEmployeeIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("is_working = ? AND deleted_at IS NULL", true).
		Order("nik ASC").
		Pluck("id", &ids).Error
	return ids, err
}
