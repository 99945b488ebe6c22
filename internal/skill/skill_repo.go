package skill

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Skill) error
	FindAll(ctx context.Context) ([]Skill, error)
	FindByID(ctx context.Context, id string) (*Skill, error)
	Delete(ctx context.Context, id string) error

	FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeSkill, error)
	ReplaceForEmployee(ctx context.Context, employeeID string, rows []EmployeeSkill) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, s *Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Skill, error) {
	var s Skill
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Skill{}, "id = ?", id).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeSkill, error) {
	var rows []EmployeeSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}

// ReplaceForEmployee swaps the whole join set in one transaction.
func (r *repository) ReplaceForEmployee(ctx context.Context, employeeID string, rows []EmployeeSkill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&EmployeeSkill{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
