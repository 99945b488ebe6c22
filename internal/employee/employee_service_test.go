package employee_test

import (
	"context"
	"testing"

	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	employeeerrors "github.com/mskim5976-cpu/hr-ai-system/internal/employee/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wraps sqlmock in a gorm handle so service transactions run
// against expected Begin/Commit/Rollback calls while repo access goes
// through fakes.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return db, mock
}

type fakeEmployeeRepo struct {
	CreateFn            func(ctx context.Context, empl *employee.Employee) error
	FindAllFn           func(ctx context.Context) ([]employee.Employee, error)
	FindOptionsFn       func(ctx context.Context) ([]employee.Employee, error)
	FindByIDFn          func(ctx context.Context, id string) (*employee.Employee, error)
	FindByIDForUpdateFn func(ctx context.Context, id string) (*employee.Employee, error)
	UpdateFn            func(ctx context.Context, empl *employee.Employee) error
	DeleteFn            func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepo) WithTx(tx *gorm.DB) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return f.CreateFn(ctx, empl)
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeEmployeeRepo) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	return f.FindOptionsFn(ctx)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) FindByIDForUpdate(ctx context.Context, id string) (*employee.Employee, error) {
	return f.FindByIDForUpdateFn(ctx, id)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	return f.UpdateFn(ctx, empl)
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeCloser struct {
	calls   int
	gotID   string
	gotDate localdate.Date
	result  []employee.ClosedAssignment
	err     error
}

func (f *fakeCloser) CloseAllInProgress(ctx context.Context, tx *gorm.DB, employeeID string, endDate localdate.Date) ([]employee.ClosedAssignment, error) {
	f.calls++
	f.gotID = employeeID
	f.gotDate = endDate
	return f.result, f.err
}

func TestEmployeeService_Create_DefaultsToWaiting(t *testing.T) {
	db, mock := newTestDB(t)
	rdb, redisMock := redismock.NewClientMock()

	mock.ExpectBegin()
	mock.ExpectCommit()
	redisMock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

	repo := &fakeEmployeeRepo{
		CreateFn: func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, employee.StatusWaiting, empl.Status)
			assert.Equal(t, "Jane Doe", empl.Name)
			assert.NotEqual(t, uuid.Nil, empl.ID)
			return nil
		},
	}

	svc := employee.NewService(db, repo, &fakeCloser{}, rdb)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:     "Jane Doe",
		HireDate: "2026-03-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, employee.StatusWaiting, resp.Status)
	assert.Equal(t, "2026-03-01", resp.HireDate)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_EmptyValuesStoreNull(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeEmployeeRepo{
		CreateFn: func(ctx context.Context, empl *employee.Employee) error {
			assert.Nil(t, empl.Position)
			assert.Nil(t, empl.Age)
			assert.Nil(t, empl.HireDate)
			assert.Nil(t, empl.DepartmentID)
			return nil
		},
	}

	svc := employee.NewService(db, repo, &fakeCloser{}, nil)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "Min"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Create_MissingName(t *testing.T) {
	db, _ := newTestDB(t)
	svc := employee.NewService(db, &fakeEmployeeRepo{}, &fakeCloser{}, nil)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{})
	assert.ErrorIs(t, err, employeeerrors.ErrMissingName)
}

func TestEmployeeService_Create_InvalidDate(t *testing.T) {
	db, _ := newTestDB(t)
	svc := employee.NewService(db, &fakeEmployeeRepo{}, &fakeCloser{}, nil)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:     "Jane",
		HireDate: "03/01/2026",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeEmployeeRepo{
		FindByIDForUpdateFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := employee.NewService(db, repo, &fakeCloser{}, nil)

	var req employee.UpdateEmployeeRequest
	req.Phone = patch.Set("010-1111-2222")

	_, err := svc.Update(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Update_InvalidStatusRejected(t *testing.T) {
	db, _ := newTestDB(t)
	svc := employee.NewService(db, &fakeEmployeeRepo{}, &fakeCloser{}, nil)

	var req employee.UpdateEmployeeRequest
	req.Status = patch.Set("vacationing")

	_, err := svc.Update(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
}

func TestEmployeeService_Update_EmptyNameRejected(t *testing.T) {
	db, _ := newTestDB(t)
	svc := employee.NewService(db, &fakeEmployeeRepo{}, &fakeCloser{}, nil)

	var req employee.UpdateEmployeeRequest
	req.Name = patch.Set("")

	_, err := svc.Update(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, employeeerrors.ErrMissingName)
}

func TestEmployeeService_Update_OffDispatchedClosesAssignments(t *testing.T) {
	db, mock := newTestDB(t)
	rdb, redisMock := redismock.NewClientMock()

	mock.ExpectBegin()
	mock.ExpectCommit()
	redisMock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

	id := uuid.New()
	repo := &fakeEmployeeRepo{
		FindByIDForUpdateFn: func(ctx context.Context, got string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, Name: "Jane", Status: employee.StatusDispatched}, nil
		},
		UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, employee.StatusWaiting, empl.Status)
			return nil
		},
	}
	closer := &fakeCloser{result: []employee.ClosedAssignment{
		{ID: uuid.New().String(), SiteID: uuid.New().String()},
	}}

	svc := employee.NewService(db, repo, closer, rdb)

	var req employee.UpdateEmployeeRequest
	req.Status = patch.Set(employee.StatusWaiting)

	resp, err := svc.Update(context.Background(), id.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, employee.StatusWaiting, resp.Status)
	assert.Equal(t, 1, closer.calls)
	assert.Equal(t, id.String(), closer.gotID)
	assert.Equal(t, localdate.Today(), closer.gotDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Update_DispatchedToDispatchedNoClosure(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	id := uuid.New()
	repo := &fakeEmployeeRepo{
		FindByIDForUpdateFn: func(ctx context.Context, got string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, Name: "Jane", Status: employee.StatusDispatched}, nil
		},
		UpdateFn: func(ctx context.Context, empl *employee.Employee) error { return nil },
	}
	closer := &fakeCloser{}

	svc := employee.NewService(db, repo, closer, nil)

	var req employee.UpdateEmployeeRequest
	req.Status = patch.Set(employee.StatusDispatched)

	_, err := svc.Update(context.Background(), id.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, 0, closer.calls)
}

func TestEmployeeService_Update_NonStatusPatchNoClosure(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	id := uuid.New()
	repo := &fakeEmployeeRepo{
		FindByIDForUpdateFn: func(ctx context.Context, got string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, Name: "Jane", Status: employee.StatusDispatched}, nil
		},
		UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, employee.StatusDispatched, empl.Status)
			assert.NotNil(t, empl.Phone)
			assert.Equal(t, "010-1111-2222", *empl.Phone)
			return nil
		},
	}
	closer := &fakeCloser{}

	svc := employee.NewService(db, repo, closer, nil)

	var req employee.UpdateEmployeeRequest
	req.Phone = patch.Set("010-1111-2222")

	_, err := svc.Update(context.Background(), id.String(), req)
	assert.NoError(t, err)
	assert.Equal(t, 0, closer.calls)
}

func TestEmployeeService_Update_NullClearsField(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	email := "jane@example.com"
	id := uuid.New()
	repo := &fakeEmployeeRepo{
		FindByIDForUpdateFn: func(ctx context.Context, got string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, Name: "Jane", Status: employee.StatusWaiting, Email: &email}, nil
		},
		UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
			assert.Nil(t, empl.Email)
			return nil
		},
	}

	svc := employee.NewService(db, repo, &fakeCloser{}, nil)

	var req employee.UpdateEmployeeRequest
	req.Email = patch.Null[string]()

	_, err := svc.Update(context.Background(), id.String(), req)
	assert.NoError(t, err)
}

func TestEmployeeService_Delete_LeavesAssignmentsAlone(t *testing.T) {
	db, _ := newTestDB(t)
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

	id := uuid.New()
	deleted := false
	repo := &fakeEmployeeRepo{
		FindByIDFn: func(ctx context.Context, got string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, Name: "Jane", Status: employee.StatusDispatched}, nil
		},
		DeleteFn: func(ctx context.Context, got string) error {
			deleted = true
			assert.Equal(t, id.String(), got)
			return nil
		},
	}
	closer := &fakeCloser{}

	svc := employee.NewService(db, repo, closer, rdb)

	err := svc.Delete(context.Background(), id.String())
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, closer.calls)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	db, _ := newTestDB(t)
	repo := &fakeEmployeeRepo{
		FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := employee.NewService(db, repo, &fakeCloser{}, nil)

	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
