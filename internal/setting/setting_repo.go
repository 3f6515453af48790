package setting

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]Setting, error)
	FindByKey(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, s *Setting) error
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

func (r *repository) FindAll(ctx context.Context) ([]Setting, error) {
	var rows []Setting
	err := r.db.WithContext(ctx).Order("setting_key ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByKey(ctx context.Context, key string) (*Setting, error) {
	var s Setting
	if err := r.db.WithContext(ctx).First(&s, "setting_key = ?", key).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Upsert(ctx context.Context, s *Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).
		Create(s).Error
}
