package servererrors

import (
	"net/http"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/apperror"
)

var (
	ErrServerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Server not found",
		http.StatusNotFound,
	)
	ErrMissingName = apperror.New(
		apperror.CodeInvalidInput,
		"Server name is required",
		http.StatusBadRequest,
	)
	ErrMissingHost = apperror.New(
		apperror.CodeInvalidInput,
		"Server host is required",
		http.StatusBadRequest,
	)
)
