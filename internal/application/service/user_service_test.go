package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subho2010/money-records-api/pkg/apperror"
)

func TestUpdateProfile_RecomputesCompleteness(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	user.EmailVerified = true
	user.PhoneVerified = true
	require.NoError(t, env.users.Update(t.Context(), user))

	svc := NewUserService(env.users)
	updated, err := svc.UpdateProfile(t.Context(), user.ID, &UpdateProfileInput{
		Name:             "Ann",
		StoreName:        "Shop",
		StoreAddress:     "12 Market Road",
		StoreContact:     "9876543210",
		StoreCountryCode: "+91",
	})
	require.NoError(t, err)
	assert.True(t, updated.ProfileComplete)
}

func TestUpdateProfile_ContactChangeClearsPhoneVerification(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, true)
	svc := NewUserService(env.users)

	updated, err := svc.UpdateProfile(t.Context(), user.ID, &UpdateProfileInput{
		Name:             "Ann",
		StoreName:        "Shop",
		StoreAddress:     "12 Market Road",
		StoreContact:     "1112223334",
		StoreCountryCode: "+91",
	})
	require.NoError(t, err)
	assert.False(t, updated.PhoneVerified)
	assert.False(t, updated.ProfileComplete)
}

func TestUpdateProfile_KeepsVerificationWhenContactUnchanged(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, true)
	svc := NewUserService(env.users)

	updated, err := svc.UpdateProfile(t.Context(), user.ID, &UpdateProfileInput{
		Name:             "Ann Marie",
		StoreName:        "Shop",
		StoreAddress:     "14 Market Road",
		StoreContact:     "9876543210",
		StoreCountryCode: "+91",
	})
	require.NoError(t, err)
	assert.True(t, updated.PhoneVerified)
	assert.True(t, updated.ProfileComplete)
}

func TestUpdateProfile_Validation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, false)
	svc := NewUserService(env.users)

	_, err := svc.UpdateProfile(t.Context(), user.ID, &UpdateProfileInput{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, "name", apperror.GetAppError(err).Errors[0].Field)

	_, err = svc.UpdateProfile(t.Context(), user.ID, &UpdateProfileInput{
		Name:         "Ann",
		StoreContact: "12ab",
	})
	require.Error(t, err)
	assert.Equal(t, "store_contact", apperror.GetAppError(err).Errors[0].Field)
}
