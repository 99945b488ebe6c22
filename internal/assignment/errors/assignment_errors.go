package assignmenterrors

import (
	"net/http"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)
	ErrInvalidAssignmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assignment ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidSiteID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid site ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assignment status",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrEmployeeAlreadyDispatched = apperror.New(
		apperror.CodeConflict,
		"Employee already has an assignment in progress",
		http.StatusConflict,
	)
)
