package assignment

import (
	"errors"

	assignmenterrors "github.com/mskim5976-cpu/hr-ai-system/internal/assignment/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrAssignmentNotFound
	}

	return err
}
