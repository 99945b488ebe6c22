package aireporterrors

import (
	"net/http"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found",
		http.StatusNotFound,
	)
	ErrMissingResumeText = apperror.New(
		apperror.CodeInvalidInput,
		"Resume text is required",
		http.StatusBadRequest,
	)
)
