package accrual

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a durable monthly accrual job, one per contract employee.
type Schedule struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_accrual_schedule_employee"`
	DayOfMonth int        `gorm:"not null"`
	Amount     int        `gorm:"not null;default:1"`
	NextRunAt  time.Time  `gorm:"not null;index:idx_accrual_schedule_due"`
	LastRunAt  *time.Time `gorm:""`
	Active     bool       `gorm:"not null;default:true;index:idx_accrual_schedule_due"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Schedule) TableName() string {
	return "accrual_schedules"
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ContractRow is the read model the reconciler scans: working employees
// joined with their type-of-employee row.
type ContractRow struct {
	EmployeeID    uuid.UUID
	IsContract    bool
	NewContract   bool
	StartContract *time.Time
}

func (r ContractRow) Info() ContractInfo {
	info := ContractInfo{IsContract: r.IsContract, NewContract: r.NewContract}
	if r.StartContract != nil {
		info.StartContract = *r.StartContract
	}
	return info
}
