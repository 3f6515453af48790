package approval_test

import (
	"errors"
	"testing"
	"time"

	"pengelola-cuti/internal/approval"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to approval.Status
		want     bool
	}{
		{approval.StatusWaiting, approval.StatusApprove, true},
		{approval.StatusWaiting, approval.StatusReject, true},
		{approval.StatusWaiting, approval.StatusWaiting, false},
		{approval.StatusApprove, approval.StatusReject, false},
		{approval.StatusApprove, approval.StatusApprove, false},
		{approval.StatusReject, approval.StatusApprove, false},
		{approval.StatusReject, approval.StatusWaiting, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, approval.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestReject(t *testing.T) {
	approver := uuid.New()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("success trims note", func(t *testing.T) {
		d, err := approval.Reject(approver, "  overlapping with audit week ", now)

		assert.NoError(t, err)
		assert.Equal(t, approval.StatusReject, d.Target)
		assert.Equal(t, "overlapping with audit week", *d.Note)
		assert.Equal(t, approver, d.DecidedBy)
	})

	t.Run("negative blank note", func(t *testing.T) {
		_, err := approval.Reject(approver, "   ", now)

		assert.True(t, errors.Is(err, approval.ErrNoteRequired))
	})
}

func TestDecisionValidate(t *testing.T) {
	d := approval.Approve(uuid.New(), time.Now())

	assert.NoError(t, d.Validate(approval.StatusWaiting))
	assert.ErrorIs(t, d.Validate(approval.StatusApprove), approval.ErrInvalidTransition)
	assert.ErrorIs(t, d.Validate(approval.StatusReject), approval.ErrInvalidTransition)
}

func TestInclusiveDays(t *testing.T) {
	day := func(s string) time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return v
	}

	assert.Equal(t, 1, approval.InclusiveDays(day("2026-03-01"), day("2026-03-01")))
	assert.Equal(t, 3, approval.InclusiveDays(day("2026-03-01"), day("2026-03-03")))
	assert.Equal(t, 2, approval.InclusiveDays(day("2026-02-28"), day("2026-03-01")))
	assert.Equal(t, 0, approval.InclusiveDays(day("2026-03-03"), day("2026-03-01")))
}

func TestParseStatus(t *testing.T) {
	s, err := approval.ParseStatus("approve")
	assert.NoError(t, err)
	assert.Equal(t, approval.StatusApprove, s)

	_, err = approval.ParseStatus("CANCELLED")
	assert.ErrorIs(t, err, approval.ErrInvalidStatus)
}
