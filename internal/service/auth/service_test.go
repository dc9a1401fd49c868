package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasahq/school-hr-backend/internal/domain/auth"
	"github.com/madrasahq/school-hr-backend/internal/domain/user"
	"github.com/madrasahq/school-hr-backend/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	user.Repository
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestService() (auth.Service, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(newFakeUserRepo(), jwtService, nil), jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	pair, err := svc.Register(ctx, auth.RegisterRequest{
		Email:    "Teacher@School.Test",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Email is normalized to lower case on registration.
	loggedIn, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "teacher@school.test",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "a@b.test", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "a@b.test", Password: "password456"})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "not-an-email", Password: "password123"})
	assert.Error(t, err)

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "a@b.test", Password: "short"})
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "a@b.test", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "a@b.test", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@b.test", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	pair, err := svc.Register(ctx, auth.RegisterRequest{Email: "a@b.test", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The original refresh token is revoked by rotation.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	pair, err := svc.Register(ctx, auth.RegisterRequest{Email: "a@b.test", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	pair, err := svc.Register(ctx, auth.RegisterRequest{Email: "a@b.test", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
