package leavebalanceerrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found for this year",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeConflict,
		"insufficient leave balance",
		http.StatusConflict,
	)
	ErrBalanceAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"leave balance for this year already exists",
		http.StatusConflict,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required for a manual adjustment",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrInvalidPolicy = apperror.New(
		apperror.CodeInvalidInput,
		"negative balance policy must be reject or allow",
		http.StatusBadRequest,
	)
)
