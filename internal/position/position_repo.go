package position

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, post *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
	Update(ctx context.Context, post *Position) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, post *Position) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var posts []Position
	err := r.db.WithContext(ctx).Order("name ASC").Find(&posts).Error
	return posts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var post Position
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	return &post, err
}

func (r *repository) Update(ctx context.Context, post *Position) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Position{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("position_id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count, err
}
