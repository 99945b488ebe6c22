package aireport

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, report *AIReport) error
	FindAll(ctx context.Context) ([]AIReport, error)
	FindByID(ctx context.Context, id string) (*AIReport, error)
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

func (r *repository) Create(ctx context.Context, report *AIReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AIReport, error) {
	var reports []AIReport
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(100).Find(&reports).Error
	return reports, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AIReport, error) {
	var report AIReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	return &report, err
}
