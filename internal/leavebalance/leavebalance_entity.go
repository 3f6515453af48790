package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Kind string

const (
	KindOpening    Kind = "OPENING"
	KindAccrual    Kind = "ACCRUAL"
	KindLeave      Kind = "LEAVE"
	KindCollective Kind = "COLLECTIVE"
	KindAdjustment Kind = "ADJUSTMENT"
)

// AmountOfLeave is the running total; one row per (employee, year).
type AmountOfLeave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_amount_of_leave_employee_year"`
	Year       int       `gorm:"not null;uniqueIndex:uq_amount_of_leave_employee_year"`
	Amount     int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a *AmountOfLeave) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Transaction is append-only: rows are never updated or deleted.
type Transaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_balance_tx_employee_year"`
	Year        int        `gorm:"not null;index:idx_balance_tx_employee_year"`
	Delta       int        `gorm:"not null"`
	Kind        Kind       `gorm:"type:varchar(20);not null"`
	ReferenceID *uuid.UUID `gorm:"type:uuid"`
	// Note dan CreatedBy hanya terisi untuk ADJUSTMENT manual.
	Note      string     `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

func (Transaction) TableName() string {
	return "leave_balance_transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
