package auth_test

import (
	"context"
	"testing"

	"github.com/mskim5976-cpu/hr-ai-system/internal/auth"
	autherrors "github.com/mskim5976-cpu/hr-ai-system/internal/auth/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepo struct {
	CreateFn     func(ctx context.Context, user *auth.User) error
	GetByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

func (f *fakeAuthRepo) Create(ctx context.Context, user *auth.User) error {
	return f.CreateFn(ctx, user)
}
func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return f.GetByIDFn(ctx, id)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	user := &auth.User{
		ID:       uuid.New(),
		Email:    "manager@office.local",
		Name:     "Manager Kim",
		Password: hashOf(t, "secret123"),
		Role:     rbac.RoleManager,
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, user.Email, email)
				return user, nil
			},
		}
		svc := auth.NewService(repo)

		access, refresh, resp, err := svc.Login(ctx, user.Email, "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, rbac.RoleManager, resp.Role)
		assert.Equal(t, user.ID.String(), resp.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, user.Email, "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "ghost@office.local", "secret123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("defaults to viewer role and hashes password", func(t *testing.T) {
		var created *auth.User
		repo := &fakeAuthRepo{
			CreateFn: func(ctx context.Context, user *auth.User) error {
				created = user
				return nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "new@office.local",
			Name:     "New User",
			Password: "secret123",
		})
		assert.NoError(t, err)
		assert.Equal(t, rbac.RoleViewer, resp.Role)
		assert.NotEqual(t, "secret123", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeAuthRepo{
			CreateFn: func(ctx context.Context, user *auth.User) error {
				return gorm.ErrDuplicatedKey
			},
		}
		svc := auth.NewService(repo)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "dup@office.local",
			Name:     "Dup",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_RefreshAndMe(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	user := &auth.User{
		ID:       uuid.New(),
		Email:    "admin@office.local",
		Name:     "Admin",
		Password: hashOf(t, "secret123"),
		Role:     rbac.RoleAdmin,
	}

	repo := &fakeAuthRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	svc := auth.NewService(repo)

	_, refresh, _, err := svc.Login(ctx, user.Email, "secret123")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, rbac.RoleAdmin, resp.Role)

	me, err := svc.GetMe(ctx, user.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, user.Email, me.Email)

	_, err = svc.GetMe(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)

	_, _, _, err = svc.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}
