package server

import (
	"context"
	"errors"
	"time"

	servererrors "github.com/mskim5976-cpu/hr-ai-system/internal/server/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateServerRequest) (ServerResponse, error)
	GetAll(ctx context.Context) ([]ServerResponse, error)
	GetByID(ctx context.Context, id string) (ServerResponse, error)
	Update(ctx context.Context, id string, req UpdateServerRequest) (ServerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("server.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("server.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateServerRequest) (ServerResponse, error) {
	if req.Name == "" {
		return ServerResponse{}, servererrors.ErrMissingName
	}
	if req.Host == "" {
		return ServerResponse{}, servererrors.ErrMissingHost
	}

	srv := &Server{
		ID:     uuid.New(),
		Name:   req.Name,
		Host:   req.Host,
		Status: StatusUnknown,
	}
	if req.Port != 0 {
		srv.Port = &req.Port
	}
	if req.Environment != "" {
		srv.Environment = &req.Environment
	}
	if req.Note != "" {
		srv.Note = &req.Note
	}

	if err := s.repo.Create(ctx, srv); err != nil {
		s.logger.Error("create server failed", zap.Error(err))
		return ServerResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create server success", zap.String("server_id", srv.ID.String()))
	return mapToResponse(*srv), nil
}

func (s *service) GetAll(ctx context.Context) ([]ServerResponse, error) {
	servers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all servers failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ServerResponse, len(servers))
	for i, srv := range servers {
		res[i] = mapToResponse(srv)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServerResponse, error) {
	srv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServerResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*srv), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateServerRequest) (ServerResponse, error) {
	if req.Name.Present() {
		if v, ok := req.Name.Value(); !ok || v == "" {
			return ServerResponse{}, servererrors.ErrMissingName
		}
	}
	if req.Host.Present() {
		if v, ok := req.Host.Value(); !ok || v == "" {
			return ServerResponse{}, servererrors.ErrMissingHost
		}
	}

	srv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServerResponse{}, mapRepositoryError(err)
	}

	if v, ok := req.Name.Value(); ok {
		srv.Name = v
	}
	if v, ok := req.Host.Value(); ok {
		srv.Host = v
	}
	if v, ok := req.Status.Value(); ok && v != "" {
		srv.Status = v
	}
	applyInt(req.Port, &srv.Port)
	applyString(req.Environment, &srv.Environment)
	applyString(req.Note, &srv.Note)
	applyTime(req.LastCheckedAt, &srv.LastCheckedAt)

	if err := s.repo.Update(ctx, srv); err != nil {
		s.logger.Error("update server failed", zap.String("server_id", id), zap.Error(err))
		return ServerResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update server success", zap.String("server_id", id))
	return mapToResponse(*srv), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete server failed", zap.String("server_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete server success", zap.String("server_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return servererrors.ErrServerNotFound
	}

	return err
}

func mapToResponse(srv Server) ServerResponse {
	resp := ServerResponse{
		ID:            srv.ID.String(),
		Name:          srv.Name,
		Host:          srv.Host,
		Port:          srv.Port,
		Status:        srv.Status,
		LastCheckedAt: srv.LastCheckedAt,
	}
	if srv.Environment != nil {
		resp.Environment = *srv.Environment
	}
	if srv.Note != nil {
		resp.Note = *srv.Note
	}
	return resp
}

func applyString(f patch.Field[string], dst **string) {
	if !f.Present() {
		return
	}
	if v, ok := f.Value(); ok && v != "" {
		*dst = &v
		return
	}
	*dst = nil
}

func applyInt(f patch.Field[int], dst **int) {
	if !f.Present() {
		return
	}
	if v, ok := f.Value(); ok && v != 0 {
		*dst = &v
		return
	}
	*dst = nil
}

func applyTime(f patch.Field[time.Time], dst **time.Time) {
	if !f.Present() {
		return
	}
	if v, ok := f.Value(); ok && !v.IsZero() {
		*dst = &v
		return
	}
	*dst = nil
}
