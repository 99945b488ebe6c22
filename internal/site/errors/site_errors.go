package siteerrors

import (
	"net/http"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/apperror"
)

var (
	ErrSiteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Site not found",
		http.StatusNotFound,
	)
	ErrInvalidSiteID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid site ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrMissingName = apperror.New(
		apperror.CodeInvalidInput,
		"Site name is required",
		http.StatusBadRequest,
	)
)
