package rbac

import (
	"time"

	"pengelola-cuti/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RolePermission is an extra grant stored in the database, layered on top
// of DefaultCapabilities.
type RolePermission struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Role      domain.Role `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_permission"`
	Resource  string      `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_permission"`
	Action    string      `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_permission"`
	CreatedAt time.Time
}

func (p *RolePermission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
