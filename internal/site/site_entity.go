package site

import (
	"time"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusEnded      = "ended"
)

// Site is a client location/contract under which employees are assigned.
// StoredStatus is operator-editable and informational only; every read path
// overwrites it with the value derived from the contract dates.
type Site struct {
	ID            uuid.UUID       `gorm:"type:char(36);primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Address       *string         `gorm:"type:varchar(500)"`
	ContractStart *localdate.Date `gorm:"type:date"`
	ContractEnd   *localdate.Date `gorm:"type:date"`
	StoredStatus  string          `gorm:"column:status;type:varchar(20);not null;default:'in_progress'"`
	MonthlyFee    *int            `gorm:"type:int"`
	ManagerName   *string         `gorm:"type:varchar(100)"`
	ManagerPhone  *string         `gorm:"type:varchar(50)"`
	Note          *string         `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Site) TableName() string {
	return "sites"
}
