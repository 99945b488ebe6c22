package skillerrors

import (
	"net/http"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/apperror"
)

var (
	ErrSkillNotFound = apperror.New(
		apperror.CodeNotFound,
		"Skill not found",
		http.StatusNotFound,
	)
	ErrSkillAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Skill with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidSkillID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid skill ID",
		http.StatusBadRequest,
	)
	ErrMissingName = apperror.New(
		apperror.CodeInvalidInput,
		"Skill name is required",
		http.StatusBadRequest,
	)
)
