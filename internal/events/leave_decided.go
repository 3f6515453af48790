package events

import "time"

const (
	LeaveDecisionTopic = "hr.leave.decision.v1"
	LeaveDecidedType   = "leave.decided"
)

// LeaveDecidedEvent is emitted once per leave or special leave that leaves
// WAITING, including leaves created already approved.
type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	Kind       string    `json:"kind"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	Days       int       `json:"days"`
	DecidedBy  string    `json:"decided_by"`
	Note       *string   `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
