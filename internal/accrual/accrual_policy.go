package accrual

import (
	"time"

	accrualerrors "pengelola-cuti/internal/accrual/errors"
)

const (
	// FullYearEntitlement is what a permanent employee gets per year.
	FullYearEntitlement = 12
	// NewContractProbationMonths are withheld from a fresh contract.
	NewContractProbationMonths = 2
	MonthlyAccrual             = 1
)

type ContractInfo struct {
	IsContract    bool
	NewContract   bool
	StartContract time.Time
}

type RecurringJobSpec struct {
	DayOfMonth int
	Amount     int
	FirstRunAt time.Time
}

type InitialBalance struct {
	Balance   int
	Recurring *RecurringJobSpec
}

// ComputeInitialBalance returns the opening balance at hire time and, for
// renewed contracts, the monthly accrual that keeps it growing.
func ComputeInitialBalance(info ContractInfo, now time.Time) (InitialBalance, error) {
	if !info.IsContract {
		return InitialBalance{Balance: FullYearEntitlement}, nil
	}
	if info.StartContract.IsZero() {
		return InitialBalance{}, accrualerrors.ErrStartContractRequired
	}

	months := MonthsBetween(info.StartContract, now)
	if info.NewContract {
		return InitialBalance{Balance: max(months-NewContractProbationMonths, 0)}, nil
	}

	day := info.StartContract.Day()
	return InitialBalance{
		Balance: months,
		Recurring: &RecurringJobSpec{
			DayOfMonth: day,
			Amount:     MonthlyAccrual,
			FirstRunAt: FirstRun(day, info.StartContract, now),
		},
	}, nil
}

// MonthsBetween counts whole calendar months from start to now. A month is
// complete once now reaches start's day-of-month; a future start yields 0.
func MonthsBetween(start, now time.Time) int {
	start = start.UTC()
	now = now.UTC()
	if now.Before(start) {
		return 0
	}

	months := (now.Year()-start.Year())*12 + int(now.Month()-start.Month())
	if now.Day() < start.Day() {
		months--
	}
	return max(months, 0)
}

// FirstRun is the first accrual date of a contract: one month after its
// start, or the next run after now when the contract is already underway.
func FirstRun(dayOfMonth int, start, now time.Time) time.Time {
	after := now
	if start.After(now) {
		after = start
	}
	return NextRun(dayOfMonth, after)
}

// NextRun is the first run date (00:00 UTC) for the given day-of-month
// strictly after the calendar day of after.
func NextRun(dayOfMonth int, after time.Time) time.Time {
	after = after.UTC()
	candidate := runDate(after.Year(), after.Month(), dayOfMonth)
	today := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.After(today) {
		return candidate
	}
	return FollowingRun(dayOfMonth, candidate)
}

// FollowingRun is the run date in the month after prev.
func FollowingRun(dayOfMonth int, prev time.Time) time.Time {
	prev = prev.UTC()
	first := time.Date(prev.Year(), prev.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return runDate(first.Year(), first.Month(), dayOfMonth)
}

// runDate clamps dayOfMonth to the month's last day.
func runDate(year int, month time.Month, dayOfMonth int) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if dayOfMonth > last {
		dayOfMonth = last
	}
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}
