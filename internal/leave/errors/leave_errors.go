package leaveerrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id is required",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave id",
		http.StatusBadRequest,
	)
	ErrInvalidTypeOfLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid type of leave id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"category must be one of REGULAR, OPTIONAL, MANDATORY",
		http.StatusBadRequest,
	)
	ErrMandatoryViaCollective = apperror.New(
		apperror.CodeInvalidInput,
		"mandatory leave can only be created as collective leave",
		http.StatusBadRequest,
	)
	ErrNotMandatoryType = apperror.New(
		apperror.CodeInvalidInput,
		"collective leave requires a MANDATORY leave type",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"employee is no longer working",
		http.StatusBadRequest,
	)
	ErrNoWorkingEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"there are no working employees",
		http.StatusBadRequest,
	)
	ErrNoEligibleEmployees = apperror.New(
		apperror.CodeConflict,
		"every working employee is already on leave in this period",
		http.StatusConflict,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrTypeOfLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"type of leave not found",
		http.StatusNotFound,
	)
	ErrTypeOfLeaveExists = apperror.New(
		apperror.CodeConflict,
		"type of leave with this title already exists",
		http.StatusConflict,
	)
)
