package settingerrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Setting not found",
		http.StatusNotFound,
	)
	ErrInvalidSettingKey = apperror.New(
		apperror.CodeInvalidInput,
		"Setting key may only contain lowercase letters, digits, dots and underscores",
		http.StatusBadRequest,
	)
)
