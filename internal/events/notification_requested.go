package events

import "time"

const NotificationRequestedTopic = "hr.notification.requested.v1"

type NotificationRequestedEvent struct {
	Template    string            `json:"template"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Fields      map[string]string `json:"fields"`
	RequestID   string            `json:"request_id,omitempty"`
	RequestedAt time.Time         `json:"requested_at"`
}
