package server

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusUnknown = "unknown"
	StatusUp      = "up"
	StatusDown    = "down"
)

// Server is an internal infrastructure inventory row. Liveness probing is
// done by an external process that reports back through Update.
type Server struct {
	ID            uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Name          string     `gorm:"type:varchar(100);not null"`
	Host          string     `gorm:"type:varchar(255);not null"`
	Port          *int       `gorm:"type:int"`
	Environment   *string    `gorm:"type:varchar(50)"`
	Status        string     `gorm:"type:varchar(20);not null;default:'unknown'"`
	Note          *string    `gorm:"type:text"`
	LastCheckedAt *time.Time `gorm:"type:datetime"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Server) TableName() string {
	return "servers"
}
