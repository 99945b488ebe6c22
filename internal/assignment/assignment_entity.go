package assignment

import (
	"time"

	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/site"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusInProgress = "in_progress"
	StatusEnded      = "ended"
)

func IsValidStatus(s string) bool {
	return s == StatusInProgress || s == StatusEnded
}

// Assignment is a time-bounded placement of one employee at one site. An
// in_progress assignment is what keeps its employee in the dispatched state.
type Assignment struct {
	ID          uuid.UUID       `gorm:"type:char(36);primaryKey"`
	EmployeeID  uuid.UUID       `gorm:"type:char(36);not null;index"`
	SiteID      uuid.UUID       `gorm:"type:char(36);not null;index"`
	StartDate   *localdate.Date `gorm:"type:date"`
	EndDate     *localdate.Date `gorm:"type:date"`
	MonthlyRate *int            `gorm:"type:int"`
	Status      string          `gorm:"type:varchar(20);not null;default:'in_progress'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
	Site     *site.Site         `gorm:"foreignKey:SiteID"`
}

func (Assignment) TableName() string {
	return "assignments"
}
