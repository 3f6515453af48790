package auth

import (
	"time"

	"pengelola-cuti/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	EmployeeID *uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_user_employee"` // Relasi ke data Employee
	Name       string      `gorm:"type:varchar(255);not null"`
	Email      string      `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password   string      `gorm:"type:varchar(255);not null"`
	Role       domain.Role `gorm:"type:varchar(50);not null;default:'EMPLOYEE'"`
	IsActive   bool        `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
