package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "github.com/mskim5976-cpu/hr-ai-system/internal/employee/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/events"
	"github.com/mskim5976-cpu/hr-ai-system/internal/messaging/kafka"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/contextutil"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "employees:options"

// ClosedAssignment identifies an assignment closed as a side effect of an
// employee status change.
type ClosedAssignment struct {
	ID     string
	SiteID string
}

// AssignmentCloser is the narrow slice of the assignment store this package
// needs: ending every in-progress assignment of one employee inside the
// caller's transaction. Declared here to keep the dependency pointing one
// way (assignment imports employee, not the reverse).
type AssignmentCloser interface {
	CloseAllInProgress(ctx context.Context, tx *gorm.DB, employeeID string, endDate localdate.Date) ([]ClosedAssignment, error)
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	closer AssignmentCloser
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, closer AssignmentCloser, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, closer, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	closer AssignmentCloser,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		closer: closer,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	if req.Name == "" {
		return EmployeeResponse{}, employeeerrors.ErrMissingName
	}

	deptID, err := parseOptionalUUID(req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
	}
	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:                 uuid.New(),
		Name:               req.Name,
		DepartmentID:       deptID,
		Position:           strPtrOrNil(req.Position),
		HireDate:           hireDate,
		Email:              strPtrOrNil(req.Email),
		Phone:              strPtrOrNil(req.Phone),
		Age:                intPtrOrNil(req.Age),
		Address:            strPtrOrNil(req.Address),
		AppliedPart:        strPtrOrNil(req.AppliedPart),
		BirthDate:          birthDate,
		Status:             StatusWaiting,
		Gender:             strPtrOrNil(req.Gender),
		CurrentCompany:     strPtrOrNil(req.CurrentCompany),
		CurrentAppliedPart: strPtrOrNil(req.CurrentAppliedPart),
		CurrentPosition:    strPtrOrNil(req.CurrentPosition),
		ProjectHistory:     strPtrOrNil(req.ProjectHistory),
		WorkHistory:        strPtrOrNil(req.WorkHistory),
		WorkPeriod:         strPtrOrNil(req.WorkPeriod),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.Create(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}

		if s.outbox != nil {
			event := events.EmployeeCreatedEvent{
				EventType:  "employee_created",
				RequestID:  rid,
				EmployeeID: empl.ID.String(),
				Name:       empl.Name,
				OccurredAt: time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}

			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "employee",
				AggregateID:   empl.ID.String(),
				EventType:     event.EventType,
				Topic:         events.EmployeeCreatedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// Update applies a sparse patch. Moving the status off dispatched also ends
// every in-progress assignment of the employee in the same transaction;
// that is the only patch path with assignment side effects.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if newStatus, ok := req.Status.Value(); ok && !IsValidStatus(newStatus) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}
	if req.Status.Present() && !hasValue(req.Status) {
		// status cannot be cleared, only changed
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}
	if req.Name.Present() && !hasValue(req.Name) {
		return EmployeeResponse{}, employeeerrors.ErrMissingName
	}

	var updated *Employee

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		prevStatus := empl.Status

		if err := applyPatch(empl, req); err != nil {
			return err
		}

		newStatus, statusChanged := req.Status.Value()
		if statusChanged && prevStatus == StatusDispatched && newStatus != StatusDispatched {
			today := localdate.Today()
			closed, err := s.closer.CloseAllInProgress(ctx, tx, id, today)
			if err != nil {
				return err
			}
			s.logger.Info("closed in-progress assignments on status change",
				zap.String("employee_id", id),
				zap.String("from", prevStatus),
				zap.String("to", newStatus),
				zap.Int("count", len(closed)),
			)

			if s.outbox != nil {
				for _, ca := range closed {
					if err := s.enqueueAssignmentClosed(ctx, tx, rid, ca, id, today, "employee_status_change"); err != nil {
						return err
					}
				}
			}
		}

		if err := qtx.Update(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}

		updated = empl
		return nil
	})
	if err != nil {
		s.logger.Error("update employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*updated), nil
}

// Delete removes only the employee row. Linked assignments are deliberately
// left alone; see DESIGN.md for the rationale.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) enqueueAssignmentClosed(
	ctx context.Context,
	tx *gorm.DB,
	rid string,
	ca ClosedAssignment,
	employeeID string,
	endDate localdate.Date,
	reason string,
) error {
	event := events.AssignmentClosedEvent{
		EventType:    "assignment_closed",
		RequestID:    rid,
		AssignmentID: ca.ID,
		EmployeeID:   employeeID,
		SiteID:       ca.SiteID,
		EndDate:      endDate.String(),
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
		AggregateID:   ca.ID,
		EventType:     event.EventType,
		Topic:         events.AssignmentClosedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

// applyPatch copies present fields onto the entity. Present-but-empty
// values clear the column, matching the old dynamic UPDATE behavior.
func applyPatch(empl *Employee, req UpdateEmployeeRequest) error {
	if v, ok := req.Name.Value(); ok {
		empl.Name = v
	}

	if req.DepartmentID.Present() {
		v, ok := req.DepartmentID.Value()
		if !ok || v == "" {
			empl.DepartmentID = nil
		} else {
			parsed, err := uuid.Parse(v)
			if err != nil {
				return employeeerrors.ErrInvalidDepartmentID
			}
			empl.DepartmentID = &parsed
		}
	}

	applyString(req.Position, &empl.Position)
	applyDate(req.HireDate, &empl.HireDate)
	applyString(req.Email, &empl.Email)
	applyString(req.Phone, &empl.Phone)
	applyInt(req.Age, &empl.Age)
	applyString(req.Address, &empl.Address)
	applyString(req.AppliedPart, &empl.AppliedPart)
	applyDate(req.BirthDate, &empl.BirthDate)
	applyString(req.Gender, &empl.Gender)
	applyString(req.CurrentCompany, &empl.CurrentCompany)
	applyString(req.CurrentAppliedPart, &empl.CurrentAppliedPart)
	applyString(req.CurrentPosition, &empl.CurrentPosition)
	applyString(req.ProjectHistory, &empl.ProjectHistory)
	applyString(req.WorkHistory, &empl.WorkHistory)
	applyString(req.WorkPeriod, &empl.WorkPeriod)

	if v, ok := req.Status.Value(); ok {
		empl.Status = v
	}

	return nil
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

func hasValue[T comparable](f patch.Field[T]) bool {
	v, ok := f.Value()
	var zero T
	return ok && v != zero
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                 empl.ID.String(),
		Name:               empl.Name,
		Position:           strOrEmpty(empl.Position),
		Email:              strOrEmpty(empl.Email),
		Phone:              strOrEmpty(empl.Phone),
		Age:                empl.Age,
		Address:            strOrEmpty(empl.Address),
		AppliedPart:        strOrEmpty(empl.AppliedPart),
		Status:             empl.Status,
		Gender:             strOrEmpty(empl.Gender),
		CurrentCompany:     strOrEmpty(empl.CurrentCompany),
		CurrentAppliedPart: strOrEmpty(empl.CurrentAppliedPart),
		CurrentPosition:    strOrEmpty(empl.CurrentPosition),
		ProjectHistory:     strOrEmpty(empl.ProjectHistory),
		WorkHistory:        strOrEmpty(empl.WorkHistory),
		WorkPeriod:         strOrEmpty(empl.WorkPeriod),
	}
	if empl.DepartmentID != nil {
		resp.DepartmentID = empl.DepartmentID.String()
	}
	if empl.HireDate != nil {
		resp.HireDate = empl.HireDate.String()
	}
	if empl.BirthDate != nil {
		resp.BirthDate = empl.BirthDate.String()
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
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

func parseOptionalUUID(v string) (*uuid.UUID, error) {
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDate(v string) (*localdate.Date, error) {
	if v == "" {
		return nil, nil
	}
	d, err := localdate.Parse(v)
	if err != nil {
		return nil, mapDateError(err)
	}
	return &d, nil
}
