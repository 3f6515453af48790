package specialleaveerrors

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
	ErrInvalidSpecialLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid special leave id",
		http.StatusBadRequest,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee special leave id",
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
	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"gender must be one of ALL, MALE, FEMALE",
		http.StatusBadRequest,
	)
	ErrInvalidTypeOfDay = apperror.New(
		apperror.CodeInvalidInput,
		"type_of_day must be one of WORKDAY, CALENDAR",
		http.StatusBadRequest,
	)
	ErrGenderNotEligible = apperror.New(
		apperror.CodeInvalidInput,
		"employee gender is not eligible for this special leave",
		http.StatusBadRequest,
	)
	ErrExceedsEntitlement = apperror.New(
		apperror.CodeInvalidInput,
		"requested days exceed the special leave amount",
		http.StatusBadRequest,
	)
	ErrNoDaysInRange = apperror.New(
		apperror.CodeInvalidInput,
		"requested range has no countable days",
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
	ErrSpecialLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"special leave not found",
		http.StatusNotFound,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee special leave not found",
		http.StatusNotFound,
	)
	ErrSpecialLeaveExists = apperror.New(
		apperror.CodeConflict,
		"special leave with this title already exists",
		http.StatusConflict,
	)
	ErrOverlap = apperror.New(
		apperror.CodeConflict,
		"special leave already exists in overlapping period",
		http.StatusConflict,
	)
)
