package employeeerrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNIKAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same NIK already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidContractRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_contract must be after start_contract",
		http.StatusBadRequest,
	)
	ErrAlreadyDisabled = apperror.New(
		apperror.CodeConflict,
		"Employee is already disabled",
		http.StatusConflict,
	)
	ErrAlreadyEnabled = apperror.New(
		apperror.CodeConflict,
		"Employee is already active",
		http.StatusConflict,
	)
)
