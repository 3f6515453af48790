// Package approval holds the WAITING -> APPROVE | REJECT lifecycle shared by
// leave requests and employee special leaves.
package approval

import (
	"net/http"
	"strings"
	"time"

	"pengelola-cuti/internal/shared/apperror"

	"github.com/google/uuid"
)

type Status string

const (
	StatusWaiting Status = "WAITING"
	StatusApprove Status = "APPROVE"
	StatusReject  Status = "REJECT"
)

var (
	ErrInvalidTransition = apperror.New(
		apperror.CodeConflict,
		"request has already been decided",
		http.StatusConflict,
	)
	ErrNoteRequired = apperror.New(
		apperror.CodeInvalidInput,
		"note is required when rejecting a request",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of WAITING, APPROVE, REJECT",
		http.StatusBadRequest,
	)
)

func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusApprove, StatusReject:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusApprove || s == StatusReject
}

func (s Status) String() string {
	return string(s)
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
func CanTransition(from, to Status) bool {
	return from == StatusWaiting && to.Terminal()
}

// Decision is an approver's verdict, applied to a record exactly once.
type Decision struct {
	Target    Status
	DecidedBy uuid.UUID
	DecidedAt time.Time
	Note      *string
}

func Approve(approverID uuid.UUID, at time.Time) Decision {
	return Decision{
		Target:    StatusApprove,
		DecidedBy: approverID,
		DecidedAt: at.UTC(),
	}
}

// Reject requires a non-blank note; the check runs before any storage access.
func Reject(approverID uuid.UUID, note string, at time.Time) (Decision, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return Decision{}, ErrNoteRequired
	}
	return Decision{
		Target:    StatusReject,
		DecidedBy: approverID,
		DecidedAt: at.UTC(),
		Note:      &note,
	}, nil
}

// Validate checks the decision against the record's current status.
func (d Decision) Validate(current Status) error {
	if !CanTransition(current, d.Target) {
		return ErrInvalidTransition
	}
	return nil
}

// InclusiveDays counts calendar days in [start, end]; both ends are included.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
