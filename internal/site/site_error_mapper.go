package site

import (
	"errors"

	siteerrors "github.com/mskim5976-cpu/hr-ai-system/internal/site/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return siteerrors.ErrSiteNotFound
	}

	return err
}
