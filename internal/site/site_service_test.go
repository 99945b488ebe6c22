package site_test

import (
	"context"
	"testing"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"
	"github.com/mskim5976-cpu/hr-ai-system/internal/site"
	siteerrors "github.com/mskim5976-cpu/hr-ai-system/internal/site/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSiteRepo struct {
	CreateFn   func(ctx context.Context, s *site.Site) error
	FindAllFn  func(ctx context.Context) ([]site.Site, error)
	FindByIDFn func(ctx context.Context, id string) (*site.Site, error)
	UpdateFn   func(ctx context.Context, s *site.Site) error
	DeleteFn   func(ctx context.Context, id string) error
}

func (f *fakeSiteRepo) WithTx(tx *gorm.DB) site.Repository { return f }
func (f *fakeSiteRepo) Create(ctx context.Context, s *site.Site) error {
	return f.CreateFn(ctx, s)
}
func (f *fakeSiteRepo) FindAll(ctx context.Context) ([]site.Site, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeSiteRepo) FindByID(ctx context.Context, id string) (*site.Site, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeSiteRepo) Update(ctx context.Context, s *site.Site) error {
	return f.UpdateFn(ctx, s)
}
func (f *fakeSiteRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestSiteService_GetAll_StatusAlwaysDerived(t *testing.T) {
	past := mustDate(t, "2000-01-01")
	alsoPast := mustDate(t, "2000-12-31")

	repo := &fakeSiteRepo{
		FindAllFn: func(ctx context.Context) ([]site.Site, error) {
			return []site.Site{
				{
					ID:            uuid.New(),
					Name:          "Acme HQ",
					ContractStart: past,
					ContractEnd:   alsoPast,
					// Operator left the stale value behind.
					StoredStatus: site.StatusInProgress,
				},
				{
					ID:           uuid.New(),
					Name:         "Open Ended",
					StoredStatus: site.StatusEnded,
				},
			}, nil
		},
	}
	svc := site.NewService(repo)

	resp, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, site.StatusEnded, resp[0].Status)
	assert.Equal(t, site.StatusInProgress, resp[1].Status)
}

func TestSiteService_GetByID_NotFound(t *testing.T) {
	repo := &fakeSiteRepo{
		FindByIDFn: func(ctx context.Context, id string) (*site.Site, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := site.NewService(repo)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, siteerrors.ErrSiteNotFound)
}

func TestSiteService_Create_InvalidDate(t *testing.T) {
	svc := site.NewService(&fakeSiteRepo{})

	_, err := svc.Create(context.Background(), site.CreateSiteRequest{
		Name:          "Acme",
		ContractStart: "June 1, 2024",
	})
	assert.ErrorIs(t, err, siteerrors.ErrInvalidDate)
}

func TestSiteService_Create_MissingName(t *testing.T) {
	svc := site.NewService(&fakeSiteRepo{})

	_, err := svc.Create(context.Background(), site.CreateSiteRequest{})
	assert.ErrorIs(t, err, siteerrors.ErrMissingName)
}

func TestSiteService_Update_ShrinkingContractEndsSite(t *testing.T) {
	id := uuid.New()
	repo := &fakeSiteRepo{
		FindByIDFn: func(ctx context.Context, got string) (*site.Site, error) {
			return &site.Site{
				ID:            id,
				Name:          "Acme HQ",
				ContractStart: mustDate(t, "2000-01-01"),
				ContractEnd:   mustDate(t, "2999-12-31"),
				StoredStatus:  site.StatusInProgress,
			}, nil
		},
		UpdateFn: func(ctx context.Context, s *site.Site) error { return nil },
	}
	svc := site.NewService(repo)

	yesterday := localdate.Today().AddDays(-1)
	var req site.UpdateSiteRequest
	req.ContractEnd = patch.Set(yesterday)

	resp, err := svc.Update(context.Background(), id.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, site.StatusEnded, resp.Status)
	assert.Equal(t, yesterday.String(), resp.ContractEnd)
}

func TestSiteService_Update_NullClearsContractDates(t *testing.T) {
	id := uuid.New()
	repo := &fakeSiteRepo{
		FindByIDFn: func(ctx context.Context, got string) (*site.Site, error) {
			return &site.Site{
				ID:          id,
				Name:        "Acme HQ",
				ContractEnd: mustDate(t, "2000-01-01"),
			}, nil
		},
		UpdateFn: func(ctx context.Context, s *site.Site) error {
			assert.Nil(t, s.ContractEnd)
			return nil
		},
	}
	svc := site.NewService(repo)

	var req site.UpdateSiteRequest
	req.ContractEnd = patch.Null[localdate.Date]()

	resp, err := svc.Update(context.Background(), id.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, site.StatusInProgress, resp.Status)
}

func TestSiteService_Delete_NotFound(t *testing.T) {
	repo := &fakeSiteRepo{
		FindByIDFn: func(ctx context.Context, id string) (*site.Site, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := site.NewService(repo)

	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, siteerrors.ErrSiteNotFound)
}
