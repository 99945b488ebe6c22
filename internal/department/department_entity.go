package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Note      *string   `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Department) TableName() string { return "departments" }
