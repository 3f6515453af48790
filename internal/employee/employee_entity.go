package employee

import (
	"time"

	"pengelola-cuti/internal/position"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Employee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NIK        string     `gorm:"column:nik;type:varchar(30);not null;uniqueIndex:uq_employee_nik"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Gender     Gender     `gorm:"type:varchar(10);not null"`
	IsWorking  bool       `gorm:"not null;default:true"`
	PositionID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Position       *position.Position `gorm:"foreignKey:PositionID"`
	TypeOfEmployee *TypeOfEmployee    `gorm:"foreignKey:EmployeeID"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TypeOfEmployee holds the contract terms that drive accrual.
type TypeOfEmployee struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_type_of_employee_employee"`
	IsContract    bool       `gorm:"not null;default:false"`
	NewContract   bool       `gorm:"not null;default:false"`
	StartContract *time.Time `gorm:"type:date"`
	EndContract   *time.Time `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t *TypeOfEmployee) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// History keeps the previous identity of an employee whenever the position,
// name or NIK changes.
type History struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	NIK        string     `gorm:"column:nik;type:varchar(30);not null"`
	Name       string     `gorm:"type:varchar(255);not null"`
	PositionID *uuid.UUID `gorm:"type:uuid"`
	ChangedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
}

func (History) TableName() string {
	return "employee_histories"
}

func (h *History) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
