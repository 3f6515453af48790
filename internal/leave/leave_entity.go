package leave

import (
	"time"

	"pengelola-cuti/internal/approval"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category string

const (
	// CategoryRegular goes through approval and is debited on approve.
	CategoryRegular Category = "REGULAR"
	// CategoryOptional is self-service: approved and debited on creation.
	CategoryOptional Category = "OPTIONAL"
	// CategoryMandatory is company-wide and only created as collective leave.
	CategoryMandatory Category = "MANDATORY"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryRegular, CategoryOptional, CategoryMandatory:
		return true
	}
	return false
}

type TypeOfLeave struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_type_of_leave_title"`
	Category  Category  `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (t *TypeOfLeave) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Leave struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`
	TypeOfLeaveID uuid.UUID `gorm:"type:uuid;not null"`

	StartDate     time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate       time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	AmountOfLeave int       `gorm:"not null"`
	Reason        string    `gorm:"type:text"`

	Status    approval.Status `gorm:"type:varchar(10);not null;default:'WAITING';index:idx_leaves_status"`
	CreatedBy uuid.UUID       `gorm:"type:uuid;not null"`
	DecidedBy *uuid.UUID      `gorm:"type:uuid"`
	DecidedAt *time.Time
	Note      *string `gorm:"type:text"`
	Version   int     `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`

	TypeOfLeave *TypeOfLeave `gorm:"foreignKey:TypeOfLeaveID"`
}

func (l *Leave) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Version == 0 {
		l.Version = 1
	}
	return nil
}
