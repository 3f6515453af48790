package rbac

import (
	"context"

	"pengelola-cuti/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
	ReplaceRolePermissions(ctx context.Context, role domain.Role, caps []Capability) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, role domain.Role, caps []Capability) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Remove existing
		if err := tx.Where("role = ?", role).Delete(&RolePermission{}).Error; err != nil {
			return err
		}

		// Add new
		for _, c := range caps {
			if err := tx.Create(&RolePermission{Role: role, Resource: c.Resource, Action: c.Action}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
