package specialleave

import (
	"time"

	"pengelola-cuti/internal/approval"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderAll    Gender = "ALL"
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderAll, GenderMale, GenderFemale:
		return true
	}
	return false
}

// Allows reports whether an employee of the given gender may take the leave.
func (g Gender) Allows(employeeGender string) bool {
	return g == GenderAll || string(g) == employeeGender
}

type DayType string

const (
	// DayTypeWorkday counts Monday to Friday only.
	DayTypeWorkday  DayType = "WORKDAY"
	DayTypeCalendar DayType = "CALENDAR"
)

func (d DayType) Valid() bool {
	return d == DayTypeWorkday || d == DayTypeCalendar
}

// Count returns how many days of [start, end] count against the amount.
func (d DayType) Count(start, end time.Time) int {
	if d == DayTypeCalendar {
		return approval.InclusiveDays(start, end)
	}
	n := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return n
}

// SpecialLeave is catalog data such as marriage or maternity leave.
type SpecialLeave struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_special_leave_title"`
	Gender    Gender    `gorm:"type:varchar(10);not null;default:'ALL'"`
	Amount    int       `gorm:"not null"`
	TypeOfDay DayType   `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (s *SpecialLeave) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type EmployeeSpecialLeave struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_esl_employee_dates"`
	SpecialLeaveID uuid.UUID `gorm:"type:uuid;not null"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_esl_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_esl_employee_dates"`
	Days      int       `gorm:"not null"`
	Reason    string    `gorm:"type:text"`

	Status    approval.Status `gorm:"type:varchar(10);not null;default:'WAITING';index:idx_esl_status"`
	CreatedBy uuid.UUID       `gorm:"type:uuid;not null"`
	DecidedBy *uuid.UUID      `gorm:"type:uuid"`
	DecidedAt *time.Time
	Note      *string `gorm:"type:text"`
	Version   int     `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_esl_deleted_at"`

	SpecialLeave *SpecialLeave `gorm:"foreignKey:SpecialLeaveID"`
}

func (e *EmployeeSpecialLeave) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Version == 0 {
		e.Version = 1
	}
	return nil
}
