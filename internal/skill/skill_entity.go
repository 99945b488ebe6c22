package skill

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Skill struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Category  *string   `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Skill) TableName() string {
	return "skills"
}

// EmployeeSkill joins an employee to a catalog skill with proficiency.
type EmployeeSkill struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:char(36);not null;index:idx_employee_skill,unique"`
	SkillID    uuid.UUID `gorm:"type:char(36);not null;index:idx_employee_skill,unique"`
	Level      *string   `gorm:"type:varchar(20)"`
	Years      *int      `gorm:"type:int"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Skill *Skill `gorm:"foreignKey:SkillID"`
}

func (EmployeeSkill) TableName() string {
	return "employee_skills"
}
