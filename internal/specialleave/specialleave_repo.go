package specialleave

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
	Offset     int
	Limit      int
}

// EmployeeProfile is the slice of the employee row eligibility needs.
type EmployeeProfile struct {
	ID        uuid.UUID
	Gender    string
	IsWorking bool
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateCatalog(ctx context.Context, s *SpecialLeave) error
	ListCatalog(ctx context.Context) ([]SpecialLeave, error)
	FindCatalogByID(ctx context.Context, id uuid.UUID) (*SpecialLeave, error)

	Create(ctx context.Context, e *EmployeeSpecialLeave) error
	FindAll(ctx context.Context, filter ListFilter) ([]EmployeeSpecialLeave, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeSpecialLeave, error)
	UpdateStatus(ctx context.Context, e *EmployeeSpecialLeave, d approval.Decision) (int64, error)
	HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error)

	FindEmployee(ctx context.Context, employeeID uuid.UUID) (*EmployeeProfile, error)
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

func (r *repository) CreateCatalog(ctx context.Context, s *SpecialLeave) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) ListCatalog(ctx context.Context) ([]SpecialLeave, error) {
	var items []SpecialLeave
	err := r.db.WithContext(ctx).Order("title ASC").Find(&items).Error
	return items, err
}

func (r *repository) FindCatalogByID(ctx context.Context, id uuid.UUID) (*SpecialLeave, error) {
	var s SpecialLeave
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Create(ctx context.Context, e *EmployeeSpecialLeave) error {
	return r.db.WithContext(ctx).Omit("SpecialLeave").Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]EmployeeSpecialLeave, int64, error) {
	q := r.db.WithContext(ctx).Model(&EmployeeSpecialLeave{})
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []EmployeeSpecialLeave
	err := q.Preload("SpecialLeave").
		Order("start_date DESC, created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*EmployeeSpecialLeave, error) {
	var e EmployeeSpecialLeave
	err := r.db.WithContext(ctx).Preload("SpecialLeave").First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) UpdateStatus(ctx context.Context, e *EmployeeSpecialLeave, d approval.Decision) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&EmployeeSpecialLeave{}).
		Where("id = ? AND status = ? AND version = ?", e.ID, approval.StatusWaiting, e.Version).
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

// HasOverlappingPeriod also checks regular leaves in the "leaves" table.
func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	for _, table := range []string{"employee_special_leaves", "leaves"} {
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

func (r *repository) FindEmployee(ctx context.Context, employeeID uuid.UUID) (*EmployeeProfile, error) {
	var p EmployeeProfile
	res := r.db.WithContext(ctx).
		Table("employees").
		Select("id, gender, is_working").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Limit(1).
		Scan(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}
