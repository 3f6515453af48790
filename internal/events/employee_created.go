package events

import "time"

const (
	EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"
	EmployeeCreatedType    = "employee.created"
)

type EmployeeCreatedEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeID     string    `json:"employee_id"`
	NIK            string    `json:"nik"`
	Name           string    `json:"name"`
	OpeningBalance int       `json:"opening_balance"`
	OccurredAt     time.Time `json:"occurred_at"`
}
