package accrualerrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrStartContractRequired = apperror.New(
		apperror.CodeInvalidInput,
		"start_contract is required for contract employees",
		http.StatusBadRequest,
	)
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"accrual schedule not found",
		http.StatusNotFound,
	)
)
