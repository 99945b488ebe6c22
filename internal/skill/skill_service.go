package skill

import (
	"context"
	"errors"

	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	employeeerrors "github.com/mskim5976-cpu/hr-ai-system/internal/employee/errors"
	skillerrors "github.com/mskim5976-cpu/hr-ai-system/internal/skill/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateSkillRequest) (SkillResponse, error)
	GetAll(ctx context.Context) ([]SkillResponse, error)
	Delete(ctx context.Context, id string) error

	GetEmployeeSkills(ctx context.Context, employeeID string) ([]EmployeeSkillResponse, error)
	SetEmployeeSkills(ctx context.Context, employeeID string, req SetEmployeeSkillsRequest) ([]EmployeeSkillResponse, error)
}

type service struct {
	repo     Repository
	emplRepo employee.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, emplRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("skill.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("skill.service")
	}
	return &service{repo: repo, emplRepo: emplRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSkillRequest) (SkillResponse, error) {
	if req.Name == "" {
		return SkillResponse{}, skillerrors.ErrMissingName
	}

	sk := &Skill{ID: uuid.New(), Name: req.Name}
	if req.Category != "" {
		sk.Category = &req.Category
	}

	if err := s.repo.Create(ctx, sk); err != nil {
		s.logger.Error("create skill failed", zap.Error(err))
		return SkillResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create skill success", zap.String("skill_id", sk.ID.String()))
	return mapToResponse(*sk), nil
}

func (s *service) GetAll(ctx context.Context) ([]SkillResponse, error) {
	skills, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all skills failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]SkillResponse, len(skills))
	for i, sk := range skills {
		res[i] = mapToResponse(sk)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete skill failed", zap.String("skill_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete skill success", zap.String("skill_id", id))
	return nil
}

func (s *service) GetEmployeeSkills(ctx context.Context, employeeID string) ([]EmployeeSkillResponse, error) {
	if _, err := s.emplRepo.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToEmployeeSkillResponses(rows), nil
}

// SetEmployeeSkills replaces the employee's skill rows with the given set.
func (s *service) SetEmployeeSkills(ctx context.Context, employeeID string, req SetEmployeeSkillsRequest) ([]EmployeeSkillResponse, error) {
	empl, err := s.emplRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	rows := make([]EmployeeSkill, 0, len(req.Skills))
	for _, in := range req.Skills {
		skillID, err := uuid.Parse(in.SkillID)
		if err != nil {
			return nil, skillerrors.ErrInvalidSkillID
		}
		if _, err := s.repo.FindByID(ctx, in.SkillID); err != nil {
			return nil, mapRepositoryError(err)
		}

		row := EmployeeSkill{
			ID:         uuid.New(),
			EmployeeID: empl.ID,
			SkillID:    skillID,
		}
		if in.Level != "" {
			level := in.Level
			row.Level = &level
		}
		if in.Years != 0 {
			years := in.Years
			row.Years = &years
		}
		rows = append(rows, row)
	}

	if err := s.repo.ReplaceForEmployee(ctx, employeeID, rows); err != nil {
		s.logger.Error("set employee skills failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("set employee skills success",
		zap.String("employee_id", employeeID),
		zap.Int("count", len(rows)),
	)

	return s.GetEmployeeSkills(ctx, employeeID)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return skillerrors.ErrSkillNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return skillerrors.ErrSkillAlreadyExists
	}

	return err
}

func mapToResponse(sk Skill) SkillResponse {
	resp := SkillResponse{ID: sk.ID.String(), Name: sk.Name}
	if sk.Category != nil {
		resp.Category = *sk.Category
	}
	return resp
}

func mapToEmployeeSkillResponses(rows []EmployeeSkill) []EmployeeSkillResponse {
	res := make([]EmployeeSkillResponse, len(rows))
	for i, row := range rows {
		r := EmployeeSkillResponse{
			SkillID: row.SkillID.String(),
			Years:   row.Years,
		}
		if row.Level != nil {
			r.Level = *row.Level
		}
		if row.Skill != nil {
			r.Name = row.Skill.Name
			if row.Skill.Category != nil {
				r.Category = *row.Skill.Category
			}
		}
		res[i] = r
	}
	return res
}
