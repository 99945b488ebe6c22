package server

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, srv *Server) error
	FindAll(ctx context.Context) ([]Server, error)
	FindByID(ctx context.Context, id string) (*Server, error)
	Update(ctx context.Context, srv *Server) error
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

func (r *repository) Create(ctx context.Context, srv *Server) error {
	return r.db.WithContext(ctx).Create(srv).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Server, error) {
	var servers []Server
	err := r.db.WithContext(ctx).Order("name ASC").Find(&servers).Error
	return servers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Server, error) {
	var srv Server
	err := r.db.WithContext(ctx).First(&srv, "id = ?", id).Error
	return &srv, err
}

func (r *repository) Update(ctx context.Context, srv *Server) error {
	return r.db.WithContext(ctx).Save(srv).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Server{}, "id = ?", id).Error
}
