package notification

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type directoryRow struct {
	Email *string
	Name  string
}

type gormDirectory struct {
	db *gorm.DB
}

// NewDirectory looks recipients up through the login account linked to the employee.
func NewDirectory(db *gorm.DB) Directory {
	return &gormDirectory{db: db}
}

func (d *gormDirectory) Lookup(ctx context.Context, employeeID uuid.UUID) (Recipient, error) {
	var row directoryRow
	err := d.db.WithContext(ctx).
		Table("employees AS e").
		Select("u.email AS email, e.name AS name").
		Joins("LEFT JOIN users u ON u.employee_id = e.id AND u.is_active = ?", true).
		Where("e.id = ? AND e.deleted_at IS NULL", employeeID).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return Recipient{}, err
	}
	if row.Email == nil || *row.Email == "" {
		return Recipient{}, ErrNoRecipient
	}
	return Recipient{Email: *row.Email, Name: row.Name}, nil
}
