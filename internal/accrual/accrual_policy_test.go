package accrual_test

import (
	"errors"
	"testing"
	"time"

	"pengelola-cuti/internal/accrual"
	accrualerrors "pengelola-cuti/internal/accrual/errors"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeInitialBalance(t *testing.T) {
	now := time.Date(2026, time.June, 15, 9, 30, 0, 0, time.UTC)

	t.Run("permanent employee gets full year", func(t *testing.T) {
		got, err := accrual.ComputeInitialBalance(accrual.ContractInfo{IsContract: false}, now)

		assert.NoError(t, err)
		assert.Equal(t, 12, got.Balance)
		assert.Nil(t, got.Recurring)
	})

	t.Run("new contract five months in", func(t *testing.T) {
		got, err := accrual.ComputeInitialBalance(accrual.ContractInfo{
			IsContract:    true,
			NewContract:   true,
			StartContract: date(2026, time.January, 15),
		}, now)

		assert.NoError(t, err)
		assert.Equal(t, 3, got.Balance)
		assert.Nil(t, got.Recurring)
	})

	t.Run("new contract inside probation floors at zero", func(t *testing.T) {
		got, err := accrual.ComputeInitialBalance(accrual.ContractInfo{
			IsContract:    true,
			NewContract:   true,
			StartContract: date(2026, time.May, 1),
		}, now)

		assert.NoError(t, err)
		assert.Equal(t, 0, got.Balance)
	})

	t.Run("renewed contract four months in schedules accrual", func(t *testing.T) {
		got, err := accrual.ComputeInitialBalance(accrual.ContractInfo{
			IsContract:    true,
			NewContract:   false,
			StartContract: date(2026, time.February, 10),
		}, now)

		assert.NoError(t, err)
		assert.Equal(t, 4, got.Balance)
		if assert.NotNil(t, got.Recurring) {
			assert.Equal(t, 10, got.Recurring.DayOfMonth)
			assert.Equal(t, 1, got.Recurring.Amount)
			assert.Equal(t, date(2026, time.July, 10), got.Recurring.FirstRunAt)
		}
	})

	t.Run("future start yields zero", func(t *testing.T) {
		got, err := accrual.ComputeInitialBalance(accrual.ContractInfo{
			IsContract:    true,
			StartContract: date(2026, time.September, 1),
		}, now)

		assert.NoError(t, err)
		assert.Equal(t, 0, got.Balance)
		if assert.NotNil(t, got.Recurring) {
			assert.Equal(t, date(2026, time.October, 1), got.Recurring.FirstRunAt)
		}
	})

	t.Run("far future start never runs before the contract", func(t *testing.T) {
		start := date(2027, time.February, 15)
		got, err := accrual.ComputeInitialBalance(accrual.ContractInfo{
			IsContract:    true,
			StartContract: start,
		}, date(2026, time.October, 18))

		assert.NoError(t, err)
		assert.Equal(t, 0, got.Balance)
		if assert.NotNil(t, got.Recurring) {
			assert.True(t, got.Recurring.FirstRunAt.After(start))
			assert.Equal(t, date(2027, time.March, 15), got.Recurring.FirstRunAt)
		}
	})

	t.Run("negative contract without start date", func(t *testing.T) {
		_, err := accrual.ComputeInitialBalance(accrual.ContractInfo{IsContract: true}, now)

		assert.True(t, errors.Is(err, accrualerrors.ErrStartContractRequired))
	})
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		now   time.Time
		want  int
	}{
		{"same day", date(2026, 3, 10), date(2026, 3, 10), 0},
		{"day before anniversary", date(2026, 1, 10), date(2026, 3, 9), 1},
		{"on anniversary", date(2026, 1, 10), date(2026, 3, 10), 2},
		{"across year", date(2025, 11, 30), date(2026, 2, 28), 2},
		{"future", date(2027, 1, 1), date(2026, 1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accrual.MonthsBetween(tt.start, tt.now))
		})
	}
}

func TestNextRun(t *testing.T) {
	assert.Equal(t, date(2026, 6, 20), accrual.NextRun(20, date(2026, 6, 15)))
	assert.Equal(t, date(2026, 7, 15), accrual.NextRun(15, time.Date(2026, 6, 15, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, date(2026, 2, 28), accrual.NextRun(31, date(2026, 2, 1)))
	assert.Equal(t, date(2027, 1, 5), accrual.NextRun(5, date(2026, 12, 20)))
}

func TestFirstRun(t *testing.T) {
	// contract already underway
	assert.Equal(t, date(2026, 7, 10), accrual.FirstRun(10, date(2026, 2, 10), date(2026, 6, 15)))
	// contract starts later: one month after the start
	assert.Equal(t, date(2027, 3, 15), accrual.FirstRun(15, date(2027, 2, 15), date(2026, 10, 18)))
	assert.Equal(t, date(2027, 2, 28), accrual.FirstRun(31, date(2027, 1, 31), date(2026, 12, 1)))
}

func TestFollowingRun(t *testing.T) {
	assert.Equal(t, date(2026, 2, 28), accrual.FollowingRun(31, date(2026, 1, 31)))
	assert.Equal(t, date(2026, 3, 31), accrual.FollowingRun(31, date(2026, 2, 28)))
	assert.Equal(t, date(2027, 1, 10), accrual.FollowingRun(10, date(2026, 12, 10)))
}
