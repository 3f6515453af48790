package user

import (
	"context"
	"strings"

	"pengelola-cuti/internal/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Q        string
	Role     string
	IsActive *bool
	Offset   int
	Limit    int
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) ([]auth.User, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]auth.User, int64, error) {
	var (
		users []auth.User
		total int64
	)

	q := r.db.WithContext(ctx).Model(&auth.User{})
	if s := strings.ToLower(strings.TrimSpace(filter.Q)); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("email ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&users).Error
	return users, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	var u auth.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&auth.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
