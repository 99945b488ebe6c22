package site

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Site) error
	FindAll(ctx context.Context) ([]Site, error)
	FindByID(ctx context.Context, id string) (*Site, error)
	Update(ctx context.Context, s *Site) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, s *Site) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Site, error) {
	var sites []Site
	err := r.db.WithContext(ctx).Order("name ASC").Find(&sites).Error
	return sites, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Site, error) {
	var s Site
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Site) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Site{}, "id = ?", id).Error
}
