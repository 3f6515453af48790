// Package notification delivers templated emails about leave decisions.
// Workflow code calls Notifier after its transaction commits; delivery
// problems are logged and never reach the caller.
package notification

import (
	"context"
	"errors"
	"net/http"

	"pengelola-cuti/internal/shared/apperror"

	"github.com/google/uuid"
)

const (
	TemplateLeaveApproved        = "leave_approved"
	TemplateLeaveRejected        = "leave_rejected"
	TemplateLeaveCollective      = "leave_collective"
	TemplateSpecialLeaveApproved = "special_leave_approved"
	TemplateSpecialLeaveRejected = "special_leave_rejected"
)

var (
	ErrUnknownTemplate = apperror.New(
		apperror.CodeInvalidInput,
		"unknown notification template",
		http.StatusBadRequest,
	)
	ErrNoRecipient = errors.New("employee has no email address")
)

type Recipient struct {
	Email string
	Name  string
}

type Message struct {
	Template  string
	Recipient Recipient
	Fields    map[string]string
}

// Sender hands a message to the delivery channel.
//
//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Directory resolves an employee to the address notifications go to.
type Directory interface {
	Lookup(ctx context.Context, employeeID uuid.UUID) (Recipient, error)
}

// Notifier is what workflows depend on: fire and forget.
type Notifier interface {
	Notify(ctx context.Context, employeeID uuid.UUID, template string, fields map[string]string)
}
