package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/pkg/apperror"
	"github.com/subho2010/money-records-api/pkg/email"
	"github.com/subho2010/money-records-api/pkg/sms"
)

func newVerificationService(env *testEnv) *VerificationService {
	return NewVerificationService(
		env.users,
		env.verifications,
		env.tx,
		email.NewEmailService(email.EmailConfig{}),
		sms.NewLogSender(),
	)
}

func TestIssueAndCheckPhoneCode(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := newVerificationService(env)

	code, err := svc.IssuePhoneCode(t.Context(), user.ID, "+91", "9876543210")
	require.NoError(t, err)
	require.Len(t, code.Code, 6)

	require.NoError(t, svc.CheckPhoneCode(t.Context(), user.ID, "+91", "9876543210", code.Code))

	updated, err := env.users.GetByID(t.Context(), user.ID)
	require.NoError(t, err)
	assert.True(t, updated.PhoneVerified)
}

func TestCheckPhoneCode_SingleUse(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := newVerificationService(env)

	code, err := svc.IssuePhoneCode(t.Context(), user.ID, "+91", "9876543210")
	require.NoError(t, err)

	require.NoError(t, svc.CheckPhoneCode(t.Context(), user.ID, "+91", "9876543210", code.Code))

	err = svc.CheckPhoneCode(t.Context(), user.ID, "+91", "9876543210", code.Code)
	assert.ErrorIs(t, err, apperror.ErrCodeInvalid)
}

func TestCheckPhoneCode_WrongCode(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := newVerificationService(env)

	code, err := svc.IssuePhoneCode(t.Context(), user.ID, "+91", "9876543210")
	require.NoError(t, err)

	wrong := "000000"
	if code.Code == wrong {
		wrong = "000001"
	}
	err = svc.CheckPhoneCode(t.Context(), user.ID, "+91", "9876543210", wrong)
	assert.ErrorIs(t, err, apperror.ErrCodeInvalid)

	updated, err := env.users.GetByID(t.Context(), user.ID)
	require.NoError(t, err)
	assert.False(t, updated.PhoneVerified)
}

func TestCheckPhoneCode_LatestCodeWins(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := newVerificationService(env)

	first, err := svc.IssuePhoneCode(t.Context(), user.ID, "+91", "9876543210")
	require.NoError(t, err)
	second, err := svc.IssuePhoneCode(t.Context(), user.ID, "+91", "9876543210")
	require.NoError(t, err)

	if first.Code != second.Code {
		err = svc.CheckPhoneCode(t.Context(), user.ID, "+91", "9876543210", first.Code)
		assert.ErrorIs(t, err, apperror.ErrCodeInvalid)
	}

	require.NoError(t, svc.CheckPhoneCode(t.Context(), user.ID, "+91", "9876543210", second.Code))
}

func TestCheckEmailCode_Expired(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := newVerificationService(env)

	code := &entity.VerificationCode{
		UserID:    user.ID,
		Channel:   enum.VerificationChannelEmail,
		Target:    "ann@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, env.verifications.Create(t.Context(), code))

	err := svc.CheckEmailCode(t.Context(), user.ID, "ann@example.com", "123456")
	assert.ErrorIs(t, err, apperror.ErrCodeExpired)
}

func TestCheckEmailCode_FlipsEmailVerified(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := newVerificationService(env)

	code := &entity.VerificationCode{
		UserID:    user.ID,
		Channel:   enum.VerificationChannelEmail,
		Target:    "ann@example.com",
		Code:      "654321",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, env.verifications.Create(t.Context(), code))

	require.NoError(t, svc.CheckEmailCode(t.Context(), user.ID, "Ann@Example.com", "654321"))

	updated, err := env.users.GetByID(t.Context(), user.ID)
	require.NoError(t, err)
	assert.True(t, updated.EmailVerified)
}

func TestIssuePhoneCode_RejectsBadNumber(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := newVerificationService(env)

	_, err := svc.IssuePhoneCode(t.Context(), user.ID, "+91", "12345")
	require.Error(t, err)
	assert.Equal(t, "phone", apperror.GetAppError(err).Errors[0].Field)
}
