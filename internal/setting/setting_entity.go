package setting

import (
	"time"

	"github.com/google/uuid"
)

// Setting is a site-wide key/value pair such as the company name shown on
// notification emails.
type Setting struct {
	Key       string     `gorm:"column:setting_key;type:varchar(100);primaryKey"`
	Value     string     `gorm:"type:text;not null"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
