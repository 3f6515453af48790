package counter

import "time"

type Counter struct {
	CounterType string `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}
