package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/mskim5976-cpu/hr-ai-system/internal/server"
	servererrors "github.com/mskim5976-cpu/hr-ai-system/internal/server/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeServerRepo struct {
	CreateFn   func(ctx context.Context, srv *server.Server) error
	FindAllFn  func(ctx context.Context) ([]server.Server, error)
	FindByIDFn func(ctx context.Context, id string) (*server.Server, error)
	UpdateFn   func(ctx context.Context, srv *server.Server) error
	DeleteFn   func(ctx context.Context, id string) error
}

func (f *fakeServerRepo) WithTx(tx *gorm.DB) server.Repository { return f }
func (f *fakeServerRepo) Create(ctx context.Context, srv *server.Server) error {
	return f.CreateFn(ctx, srv)
}
func (f *fakeServerRepo) FindAll(ctx context.Context) ([]server.Server, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeServerRepo) FindByID(ctx context.Context, id string) (*server.Server, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeServerRepo) Update(ctx context.Context, srv *server.Server) error {
	return f.UpdateFn(ctx, srv)
}
func (f *fakeServerRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestServerService_Create_DefaultsToUnknown(t *testing.T) {
	repo := &fakeServerRepo{
		CreateFn: func(ctx context.Context, srv *server.Server) error {
			assert.Equal(t, server.StatusUnknown, srv.Status)
			return nil
		},
	}
	svc := server.NewService(repo)

	resp, err := svc.Create(context.Background(), server.CreateServerRequest{
		Name: "build-01",
		Host: "10.0.0.5",
		Port: 22,
	})
	assert.NoError(t, err)
	assert.Equal(t, server.StatusUnknown, resp.Status)
}

func TestServerService_Create_MissingHost(t *testing.T) {
	svc := server.NewService(&fakeServerRepo{})

	_, err := svc.Create(context.Background(), server.CreateServerRequest{Name: "build-01"})
	assert.ErrorIs(t, err, servererrors.ErrMissingHost)
}

func TestServerService_Update_ProbeResult(t *testing.T) {
	id := uuid.New()
	checked := time.Now().Add(-time.Minute)

	repo := &fakeServerRepo{
		FindByIDFn: func(ctx context.Context, got string) (*server.Server, error) {
			return &server.Server{ID: id, Name: "build-01", Host: "10.0.0.5", Status: server.StatusUnknown}, nil
		},
		UpdateFn: func(ctx context.Context, srv *server.Server) error {
			assert.Equal(t, server.StatusUp, srv.Status)
			assert.NotNil(t, srv.LastCheckedAt)
			return nil
		},
	}
	svc := server.NewService(repo)

	var req server.UpdateServerRequest
	req.Status = patch.Set(server.StatusUp)
	req.LastCheckedAt = patch.Set(checked)

	resp, err := svc.Update(context.Background(), id.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, server.StatusUp, resp.Status)
}

func TestServerService_GetByID_NotFound(t *testing.T) {
	repo := &fakeServerRepo{
		FindByIDFn: func(ctx context.Context, id string) (*server.Server, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := server.NewService(repo)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, servererrors.ErrServerNotFound)
}
