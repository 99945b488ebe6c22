package assignment

import (
	"context"

	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Assignment) error
	FindAll(ctx context.Context) ([]Assignment, error)
	FindByID(ctx context.Context, id string) (*Assignment, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Assignment, error)
	CountInProgressByEmployee(ctx context.Context, employeeID string) (int64, error)
	Update(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, id string) error

	// CloseAllInProgress satisfies employee.AssignmentCloser.
	CloseAllInProgress(ctx context.Context, tx *gorm.DB, employeeID string, endDate localdate.Date) ([]employee.ClosedAssignment, error)
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

func (r *repository) Create(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Site").
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Site").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	return &a, err
}

// CountInProgressByEmployee backs the one-open-assignment check. Callers
// must already hold the employee row lock or the count can go stale.
func (r *repository) CountInProgressByEmployee(ctx context.Context, employeeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Where("employee_id = ? AND status = ?", employeeID, StatusInProgress).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Assignment{}, "id = ?", id).Error
}

// CloseAllInProgress ends every in_progress assignment of one employee
// inside the caller's transaction and reports which rows it touched.
func (r *repository) CloseAllInProgress(ctx context.Context, tx *gorm.DB, employeeID string, endDate localdate.Date) ([]employee.ClosedAssignment, error) {
	var open []Assignment
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND status = ?", employeeID, StatusInProgress).
		Find(&open).Error
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, nil
	}

	ids := make([]string, len(open))
	closed := make([]employee.ClosedAssignment, len(open))
	for i, a := range open {
		ids[i] = a.ID.String()
		closed[i] = employee.ClosedAssignment{ID: a.ID.String(), SiteID: a.SiteID.String()}
	}

	err = tx.WithContext(ctx).
		Model(&Assignment{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":   StatusEnded,
			"end_date": endDate,
		}).Error
	if err != nil {
		return nil, err
	}

	return closed, nil
}
