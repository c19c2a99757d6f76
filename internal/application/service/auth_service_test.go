package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subho2010/money-records-api/pkg/apperror"
	"github.com/subho2010/money-records-api/pkg/utils"
)

func newAuthService(env *testEnv) *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(env.users, jwtManager)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	user, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Ann",
		Email:    "Ann@Example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.NotEqual(t, "secret-password", user.Password)

	result, err := svc.Login(t.Context(), "ann@example.com", "secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	input := &RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "secret-password"}
	_, err := svc.Register(t.Context(), input)
	require.NoError(t, err)

	_, err = svc.Register(t.Context(), input)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(t.Context(), "ann@example.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(t.Context(), "nobody@example.com", "secret-password")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	login, err := svc.Login(t.Context(), "ann@example.com", "secret-password")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(t.Context(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(t.Context(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	user, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(t.Context(), user.ID, "wrong", "new-password")
	require.Error(t, err)

	require.NoError(t, svc.ChangePassword(t.Context(), user.ID, "secret-password", "new-password"))

	_, err = svc.Login(t.Context(), "ann@example.com", "new-password")
	assert.NoError(t, err)
}
