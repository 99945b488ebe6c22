package site

import (
	"context"

	siteerrors "github.com/mskim5976-cpu/hr-ai-system/internal/site/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetAll(ctx context.Context) ([]SiteResponse, error)
	GetByID(ctx context.Context, id string) (SiteResponse, error)
	Update(ctx context.Context, id string, req UpdateSiteRequest) (SiteResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("site.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("site.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error) {
	if req.Name == "" {
		return SiteResponse{}, siteerrors.ErrMissingName
	}

	start, err := parseOptionalDate(req.ContractStart)
	if err != nil {
		return SiteResponse{}, err
	}
	end, err := parseOptionalDate(req.ContractEnd)
	if err != nil {
		return SiteResponse{}, err
	}

	site := &Site{
		ID:            uuid.New(),
		Name:          req.Name,
		Address:       strPtrOrNil(req.Address),
		ContractStart: start,
		ContractEnd:   end,
		StoredStatus:  DeriveStatus(start, end, localdate.Today()),
		MonthlyFee:    intPtrOrNil(req.MonthlyFee),
		ManagerName:   strPtrOrNil(req.ManagerName),
		ManagerPhone:  strPtrOrNil(req.ManagerPhone),
		Note:          strPtrOrNil(req.Note),
	}

	if err := s.repo.Create(ctx, site); err != nil {
		s.logger.Error("create site failed", zap.Error(err))
		return SiteResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create site success", zap.String("site_id", site.ID.String()))
	return mapToResponse(*site, localdate.Today()), nil
}

func (s *service) GetAll(ctx context.Context) ([]SiteResponse, error) {
	sites, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all sites failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	today := localdate.Today()
	res := make([]SiteResponse, len(sites))
	for i, st := range sites {
		res[i] = mapToResponse(st, today)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SiteResponse, error) {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SiteResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*site, localdate.Today()), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSiteRequest) (SiteResponse, error) {
	if req.Name.Present() {
		if v, ok := req.Name.Value(); !ok || v == "" {
			return SiteResponse{}, siteerrors.ErrMissingName
		}
	}

	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SiteResponse{}, mapRepositoryError(err)
	}

	if v, ok := req.Name.Value(); ok {
		site.Name = v
	}
	applyString(req.Address, &site.Address)
	applyDate(req.ContractStart, &site.ContractStart)
	applyDate(req.ContractEnd, &site.ContractEnd)
	applyString(req.ManagerName, &site.ManagerName)
	applyString(req.ManagerPhone, &site.ManagerPhone)
	applyString(req.Note, &site.Note)
	applyInt(req.MonthlyFee, &site.MonthlyFee)

	// The status column stays operator-editable but is never echoed back.
	if v, ok := req.Status.Value(); ok && v != "" {
		site.StoredStatus = v
	}

	if err := s.repo.Update(ctx, site); err != nil {
		s.logger.Error("update site failed", zap.String("site_id", id), zap.Error(err))
		return SiteResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update site success", zap.String("site_id", id))
	return mapToResponse(*site, localdate.Today()), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete site failed", zap.String("site_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete site success", zap.String("site_id", id))
	return nil
}

func mapToResponse(s Site, today localdate.Date) SiteResponse {
	resp := SiteResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Address:      strOrEmpty(s.Address),
		Status:       DeriveStatus(s.ContractStart, s.ContractEnd, today),
		MonthlyFee:   s.MonthlyFee,
		ManagerName:  strOrEmpty(s.ManagerName),
		ManagerPhone: strOrEmpty(s.ManagerPhone),
		Note:         strOrEmpty(s.Note),
	}
	if s.ContractStart != nil {
		resp.ContractStart = s.ContractStart.String()
	}
	if s.ContractEnd != nil {
		resp.ContractEnd = s.ContractEnd.String()
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

func applyDate(f patch.Field[localdate.Date], dst **localdate.Date) {
	if !f.Present() {
		return
	}
	if v, ok := f.Value(); ok && !v.IsZero() {
		*dst = &v
		return
	}
	*dst = nil
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func strPtrOrNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func intPtrOrNil(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func parseOptionalDate(v string) (*localdate.Date, error) {
	if v == "" {
		return nil, nil
	}
	d, err := localdate.Parse(v)
	if err != nil {
		return nil, siteerrors.ErrInvalidDate
	}
	return &d, nil
}
