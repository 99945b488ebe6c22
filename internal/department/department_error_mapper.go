package department

import (
	"errors"

	departmenterrors "github.com/mskim5976-cpu/hr-ai-system/internal/department/errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return departmenterrors.ErrDepartmentAlreadyExists
	}

	return err
}
