package employee

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Q         string
	IsWorking *bool
	Offset    int
	Limit     int
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	SaveTypeOfEmployee(ctx context.Context, t *TypeOfEmployee) error
	SetWorking(ctx context.Context, id uuid.UUID, working bool) (int64, error)
	CreateHistory(ctx context.Context, h *History) error
	ListHistory(ctx context.Context, employeeID uuid.UUID) ([]History, error)
	PositionExists(ctx context.Context, positionID uuid.UUID) (bool, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Position").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&Employee{})
	if q := strings.TrimSpace(strings.ToLower(filter.Q)); q != "" {
		like := "%" + q + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(nik) LIKE ?", like, like)
	}
	if filter.IsWorking != nil {
		query = query.Where("is_working = ?", *filter.IsWorking)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var emps []Employee
	err := query.
		Preload("Position").
		Preload("TypeOfEmployee").
		Order("nik ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&emps).Error
	return emps, total, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Select("id", "nik", "name").
		Where("is_working = ?", true).
		Order("name ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Position").
		Preload("TypeOfEmployee").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", empl.ID).
		Updates(map[string]any{
			"nik":         empl.NIK,
			"name":        empl.Name,
			"gender":      empl.Gender,
			"position_id": empl.PositionID,
			"updated_at":  gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

// SaveTypeOfEmployee inserts or replaces the contract row for an employee.
func (r *repository) SaveTypeOfEmployee(ctx context.Context, t *TypeOfEmployee) error {
	var existing TypeOfEmployee
	err := r.db.WithContext(ctx).Where("employee_id = ?", t.EmployeeID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(t).Error
		}
		return err
	}
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) SetWorking(ctx context.Context, id uuid.UUID, working bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND is_working = ?", id, !working).
		Update("is_working", working)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateHistory(ctx context.Context, h *History) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) ListHistory(ctx context.Context, employeeID uuid.UUID) ([]History, error) {
	var rows []History
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) PositionExists(ctx context.Context, positionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("positions").
		Where("id = ? AND deleted_at IS NULL", positionID).
		Count(&count).Error
	return count > 0, err
}
