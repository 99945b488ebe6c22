package skill_test

import (
	"context"
	"testing"

	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	employeeerrors "github.com/mskim5976-cpu/hr-ai-system/internal/employee/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/skill"
	skillerrors "github.com/mskim5976-cpu/hr-ai-system/internal/skill/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSkillRepo struct {
	CreateFn             func(ctx context.Context, s *skill.Skill) error
	FindAllFn            func(ctx context.Context) ([]skill.Skill, error)
	FindByIDFn           func(ctx context.Context, id string) (*skill.Skill, error)
	DeleteFn             func(ctx context.Context, id string) error
	FindByEmployeeFn     func(ctx context.Context, employeeID string) ([]skill.EmployeeSkill, error)
	ReplaceForEmployeeFn func(ctx context.Context, employeeID string, rows []skill.EmployeeSkill) error
}

func (f *fakeSkillRepo) WithTx(tx *gorm.DB) skill.Repository { return f }
func (f *fakeSkillRepo) Create(ctx context.Context, s *skill.Skill) error {
	return f.CreateFn(ctx, s)
}
func (f *fakeSkillRepo) FindAll(ctx context.Context) ([]skill.Skill, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeSkillRepo) FindByID(ctx context.Context, id string) (*skill.Skill, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeSkillRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeSkillRepo) FindByEmployee(ctx context.Context, employeeID string) ([]skill.EmployeeSkill, error) {
	return f.FindByEmployeeFn(ctx, employeeID)
}
func (f *fakeSkillRepo) ReplaceForEmployee(ctx context.Context, employeeID string, rows []skill.EmployeeSkill) error {
	return f.ReplaceForEmployeeFn(ctx, employeeID, rows)
}

type fakeEmployeeFinder struct {
	FindByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeFinder) WithTx(tx *gorm.DB) employee.Repository { return f }
func (f *fakeEmployeeFinder) Create(ctx context.Context, empl *employee.Employee) error {
	panic("not used")
}
func (f *fakeEmployeeFinder) FindAll(ctx context.Context) ([]employee.Employee, error) {
	panic("not used")
}
func (f *fakeEmployeeFinder) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	panic("not used")
}
func (f *fakeEmployeeFinder) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeEmployeeFinder) FindByIDForUpdate(ctx context.Context, id string) (*employee.Employee, error) {
	panic("not used")
}
func (f *fakeEmployeeFinder) Update(ctx context.Context, empl *employee.Employee) error {
	panic("not used")
}
func (f *fakeEmployeeFinder) Delete(ctx context.Context, id string) error {
	panic("not used")
}

func TestSkillService_Create_DuplicateName(t *testing.T) {
	repo := &fakeSkillRepo{
		CreateFn: func(ctx context.Context, s *skill.Skill) error {
			return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		},
	}
	svc := skill.NewService(repo, &fakeEmployeeFinder{})

	_, err := svc.Create(context.Background(), skill.CreateSkillRequest{Name: "Go"})
	assert.ErrorIs(t, err, skillerrors.ErrSkillAlreadyExists)
}

func TestSkillService_SetEmployeeSkills_EmployeeNotFound(t *testing.T) {
	emplRepo := &fakeEmployeeFinder{
		FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := skill.NewService(&fakeSkillRepo{}, emplRepo)

	_, err := svc.SetEmployeeSkills(context.Background(), uuid.New().String(), skill.SetEmployeeSkillsRequest{})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestSkillService_SetEmployeeSkills_ReplacesSet(t *testing.T) {
	emplID := uuid.New()
	skillID := uuid.New()

	emplRepo := &fakeEmployeeFinder{
		FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: emplID, Name: "Jane"}, nil
		},
	}

	var replaced []skill.EmployeeSkill
	repo := &fakeSkillRepo{
		FindByIDFn: func(ctx context.Context, id string) (*skill.Skill, error) {
			return &skill.Skill{ID: skillID, Name: "Go"}, nil
		},
		ReplaceForEmployeeFn: func(ctx context.Context, employeeID string, rows []skill.EmployeeSkill) error {
			replaced = rows
			return nil
		},
		FindByEmployeeFn: func(ctx context.Context, employeeID string) ([]skill.EmployeeSkill, error) {
			return replaced, nil
		},
	}
	svc := skill.NewService(repo, emplRepo)

	resp, err := svc.SetEmployeeSkills(context.Background(), emplID.String(), skill.SetEmployeeSkillsRequest{
		Skills: []skill.EmployeeSkillInput{{SkillID: skillID.String(), Level: "senior", Years: 5}},
	})
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, skillID.String(), resp[0].SkillID)
	assert.Equal(t, "senior", resp[0].Level)
}

func TestSkillService_SetEmployeeSkills_UnknownSkill(t *testing.T) {
	emplRepo := &fakeEmployeeFinder{
		FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.New(), Name: "Jane"}, nil
		},
	}
	repo := &fakeSkillRepo{
		FindByIDFn: func(ctx context.Context, id string) (*skill.Skill, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := skill.NewService(repo, emplRepo)

	_, err := svc.SetEmployeeSkills(context.Background(), uuid.New().String(), skill.SetEmployeeSkillsRequest{
		Skills: []skill.EmployeeSkillInput{{SkillID: uuid.New().String()}},
	})
	assert.ErrorIs(t, err, skillerrors.ErrSkillNotFound)
}
