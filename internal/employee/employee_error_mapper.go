package employee

import (
	"errors"

	employeeerrors "github.com/mskim5976-cpu/hr-ai-system/internal/employee/errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// 1062 = ER_DUP_ENTRY; the only unique key on employees is the email.
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}

func mapDateError(err error) error {
	if err == nil {
		return nil
	}
	return employeeerrors.ErrInvalidDate
}
