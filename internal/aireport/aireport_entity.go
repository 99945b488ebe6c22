package aireport

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindEmployeeComment = "employee_comment"
	KindStatusReport    = "status_report"
	KindResumeSummary   = "resume_summary"
)

// AIReport stores every generated text so results stay auditable and
// re-readable without another model call.
type AIReport struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Kind      string     `gorm:"type:varchar(30);not null;index"`
	SubjectID *uuid.UUID `gorm:"type:char(36);index"`
	Prompt    string     `gorm:"type:text;not null"`
	Content   string     `gorm:"type:text;not null"`
	Model     string     `gorm:"type:varchar(100);not null"`
	CreatedBy *string    `gorm:"type:char(36)"`
	CreatedAt time.Time
}

func (AIReport) TableName() string {
	return "ai_reports"
}
