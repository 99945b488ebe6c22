package department_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mskim5976-cpu/hr-ai-system/internal/department"
	departmenterrors "github.com/mskim5976-cpu/hr-ai-system/internal/department/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	CreateFn   func(ctx context.Context, dept *department.Department) error
	FindAllFn  func(ctx context.Context) ([]department.Department, error)
	FindByIDFn func(ctx context.Context, id string) (*department.Department, error)
	UpdateFn   func(ctx context.Context, dept *department.Department) error
	DeleteFn   func(ctx context.Context, id string) error
}

func (f *fakeDepartmentRepo) WithTx(tx *gorm.DB) department.Repository { return f }
func (f *fakeDepartmentRepo) Create(ctx context.Context, dept *department.Department) error {
	return f.CreateFn(ctx, dept)
}
func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id string) (*department.Department, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeDepartmentRepo) Update(ctx context.Context, dept *department.Department) error {
	return f.UpdateFn(ctx, dept)
}
func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeDepartmentRepo{
		CreateFn: func(ctx context.Context, dept *department.Department) error {
			assert.Equal(t, "Platform", dept.Name)
			assert.NotEqual(t, uuid.Nil, dept.ID)
			return nil
		},
	}
	redisMock.ExpectDel(department.OptionsCacheKey).SetVal(1)

	svc := department.NewService(nil, repo, rdb)

	resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Platform"})
	assert.NoError(t, err)
	assert.Equal(t, "Platform", resp.Name)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	repo := &fakeDepartmentRepo{
		FindByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := department.NewService(nil, repo, nil)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestDepartmentService_GetOptions_CacheHit(t *testing.T) {
	ctx := context.Background()
	rdb, redisMock := redismock.NewClientMock()

	cached := []department.DepartmentResponse{{ID: uuid.New().String(), Name: "Infra"}}
	payload, _ := json.Marshal(cached)
	redisMock.ExpectGet(department.OptionsCacheKey).SetVal(string(payload))

	// Repo must not be hit on a cache hit.
	repo := &fakeDepartmentRepo{
		FindAllFn: func(ctx context.Context) ([]department.Department, error) {
			t.Fatal("repo should not be called on cache hit")
			return nil, nil
		},
	}
	svc := department.NewService(nil, repo, rdb)

	resp, err := svc.GetOptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDepartmentService_GetOptions_CacheMiss(t *testing.T) {
	ctx := context.Background()
	rdb, redisMock := redismock.NewClientMock()

	redisMock.ExpectGet(department.OptionsCacheKey).RedisNil()
	redisMock.Regexp().ExpectSet(department.OptionsCacheKey, `.*`, time.Hour).SetVal("OK")

	repo := &fakeDepartmentRepo{
		FindAllFn: func(ctx context.Context) ([]department.Department, error) {
			return []department.Department{{ID: uuid.New(), Name: "Infra"}}, nil
		},
	}
	svc := department.NewService(nil, repo, rdb)

	resp, err := svc.GetOptions(ctx)
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Infra", resp[0].Name)
}
