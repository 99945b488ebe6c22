package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	assignmenterrors "github.com/mskim5976-cpu/hr-ai-system/internal/assignment/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	employeeerrors "github.com/mskim5976-cpu/hr-ai-system/internal/employee/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/events"
	"github.com/mskim5976-cpu/hr-ai-system/internal/messaging/kafka"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/contextutil"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"
	"github.com/mskim5976-cpu/hr-ai-system/internal/site"
	siteerrors "github.com/mskim5976-cpu/hr-ai-system/internal/site/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAll(ctx context.Context) ([]AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	emplRepo employee.Repository
	siteRepo site.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	emplRepo employee.Repository,
	siteRepo site.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, emplRepo, siteRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	emplRepo employee.Repository,
	siteRepo site.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		emplRepo: emplRepo,
		siteRepo: siteRepo,
		outbox:   outboxRepo,
		logger:   l,
	}
}

// Create inserts an in_progress assignment and moves the employee to
// dispatched. The employee row lock plus the open-assignment count keep two
// concurrent dispatches of the same employee from both succeeding.
func (s *service) Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidEmployeeID
	}
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidSiteID
	}
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return AssignmentResponse{}, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return AssignmentResponse{}, err
	}

	asg := &Assignment{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		SiteID:      siteID,
		StartDate:   startDate,
		EndDate:     endDate,
		MonthlyRate: intPtrOrNil(req.MonthlyRate),
		Status:      StatusInProgress,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emplQtx := s.emplRepo.WithTx(tx)

		empl, err := emplQtx.FindByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrEmployeeNotFound
			}
			return err
		}

		if _, err := s.siteRepo.WithTx(tx).FindByID(ctx, req.SiteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return siteerrors.ErrSiteNotFound
			}
			return err
		}

		open, err := s.repo.WithTx(tx).CountInProgressByEmployee(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if open > 0 {
			return assignmenterrors.ErrEmployeeAlreadyDispatched
		}

		if err := s.repo.WithTx(tx).Create(ctx, asg); err != nil {
			return err
		}

		empl.Status = employee.StatusDispatched
		return emplQtx.Update(ctx, empl)
	})
	if err != nil {
		s.logger.Error("create assignment failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return AssignmentResponse{}, err
	}

	s.logger.Info("create assignment success",
		zap.String("assignment_id", asg.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("site_id", req.SiteID),
	)

	return mapToResponse(*asg), nil
}

func (s *service) GetAll(ctx context.Context) ([]AssignmentResponse, error) {
	assignments, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all assignments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AssignmentResponse, error) {
	asg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*asg), nil
}

// Update applies a sparse patch. Setting status to ended also stamps the
// end date (today unless the patch supplies one) and moves the linked
// employee back to waiting, whatever status it held before dispatch.
func (s *service) Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if v, ok := req.Status.Value(); ok && !IsValidStatus(v) {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidStatus
	}
	if req.Status.Present() && req.Status.IsNull() {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidStatus
	}

	var updated *Assignment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		asg, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if req.SiteID.Present() {
			v, ok := req.SiteID.Value()
			if !ok || v == "" {
				return assignmenterrors.ErrInvalidSiteID
			}
			parsed, err := uuid.Parse(v)
			if err != nil {
				return assignmenterrors.ErrInvalidSiteID
			}
			if _, err := s.siteRepo.WithTx(tx).FindByID(ctx, v); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return siteerrors.ErrSiteNotFound
				}
				return err
			}
			asg.SiteID = parsed
		}

		applyDate(req.StartDate, &asg.StartDate)
		applyDate(req.EndDate, &asg.EndDate)
		applyInt(req.MonthlyRate, &asg.MonthlyRate)

		newStatus, statusSet := req.Status.Value()
		if statusSet {
			asg.Status = newStatus
		}

		if statusSet && newStatus == StatusEnded {
			if !req.EndDate.Present() || asg.EndDate == nil {
				today := localdate.Today()
				asg.EndDate = &today
			}

			if err := s.releaseEmployee(ctx, tx, asg.EmployeeID.String()); err != nil {
				return err
			}

			if s.outbox != nil {
				if err := s.enqueueAssignmentClosed(ctx, tx, rid, asg, "assignment_update"); err != nil {
					return err
				}
			}
		}

		if err := qtx.Update(ctx, asg); err != nil {
			return mapRepositoryError(err)
		}

		updated = asg
		return nil
	})
	if err != nil {
		s.logger.Error("update assignment failed",
			zap.String("request_id", rid),
			zap.String("assignment_id", id),
			zap.Error(err),
		)
		return AssignmentResponse{}, err
	}

	s.logger.Info("update assignment success", zap.String("assignment_id", id))
	return mapToResponse(*updated), nil
}

// Delete removes the assignment and unconditionally parks the employee at
// waiting, even if other open assignments exist. Known simplification kept
// from the previous system.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		asg, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		if err := s.releaseEmployee(ctx, tx, asg.EmployeeID.String()); err != nil {
			return err
		}

		if s.outbox != nil {
			return s.enqueueAssignmentClosed(ctx, tx, rid, asg, "assignment_deleted")
		}
		return nil
	})
	if err != nil {
		s.logger.Error("delete assignment failed",
			zap.String("request_id", rid),
			zap.String("assignment_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete assignment success", zap.String("assignment_id", id))
	return nil
}

// releaseEmployee sets the linked employee back to waiting. An employee row
// already deleted is tolerated; old assignments can outlive their employee.
func (s *service) releaseEmployee(ctx context.Context, tx *gorm.DB, employeeID string) error {
	emplQtx := s.emplRepo.WithTx(tx)

	empl, err := emplQtx.FindByIDForUpdate(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	empl.Status = employee.StatusWaiting
	return emplQtx.Update(ctx, empl)
}

func (s *service) enqueueAssignmentClosed(
	ctx context.Context,
	tx *gorm.DB,
	rid string,
	asg *Assignment,
	reason string,
) error {
	endDate := ""
	if asg.EndDate != nil {
		endDate = asg.EndDate.String()
	}

	event := events.AssignmentClosedEvent{
		EventType:    "assignment_closed",
		RequestID:    rid,
		AssignmentID: asg.ID.String(),
		EmployeeID:   asg.EmployeeID.String(),
		SiteID:       asg.SiteID.String(),
		EndDate:      endDate,
		Reason:       reason,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "assignment",
		AggregateID:   asg.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AssignmentClosedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		SiteID:      a.SiteID.String(),
		MonthlyRate: a.MonthlyRate,
		Status:      a.Status,
	}
	if a.StartDate != nil {
		resp.StartDate = a.StartDate.String()
	}
	if a.EndDate != nil {
		resp.EndDate = a.EndDate.String()
	}
	if a.Employee != nil {
		resp.Employee = &AssignmentEmployeeResponse{
			ID:     a.Employee.ID.String(),
			Name:   a.Employee.Name,
			Status: a.Employee.Status,
		}
	}
	if a.Site != nil {
		resp.Site = &AssignmentSiteResponse{
			ID:   a.Site.ID.String(),
			Name: a.Site.Name,
		}
	}
	return resp
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
		return nil, assignmenterrors.ErrInvalidDate
	}
	return &d, nil
}
