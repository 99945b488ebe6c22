package employee

import (
	"time"

	"github.com/mskim5976-cpu/hr-ai-system/internal/department"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"

	"github.com/google/uuid"
)

// Employment statuses. Source values were 대기/재직/파견중/퇴사.
const (
	StatusWaiting    = "waiting"
	StatusActive     = "active"
	StatusDispatched = "dispatched"
	StatusResigned   = "resigned"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusWaiting, StatusActive, StatusDispatched, StatusResigned:
		return true
	}
	return false
}

type Employee struct {
	ID                 uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Name               string     `gorm:"type:varchar(255);not null"`
	DepartmentID       *uuid.UUID `gorm:"type:char(36);index"`
	Position           *string    `gorm:"type:varchar(100)"`
	HireDate           *localdate.Date
	Email              *string `gorm:"type:varchar(255);uniqueIndex"`
	Phone              *string `gorm:"type:varchar(50)"`
	Age                *int
	Address            *string `gorm:"type:varchar(500)"`
	AppliedPart        *string `gorm:"type:varchar(100)"`
	BirthDate          *localdate.Date
	Status             string  `gorm:"type:varchar(20);not null;default:'waiting'"`
	Gender             *string `gorm:"type:varchar(10)"`
	CurrentCompany     *string `gorm:"type:varchar(255)"`
	CurrentAppliedPart *string `gorm:"type:varchar(100)"`
	CurrentPosition    *string `gorm:"type:varchar(100)"`
	ProjectHistory     *string `gorm:"type:text"`
	WorkHistory        *string `gorm:"type:text"`
	WorkPeriod         *string `gorm:"type:varchar(100)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Department *department.Department `gorm:"foreignKey:DepartmentID"`
}

func (Employee) TableName() string { return "employees" }
