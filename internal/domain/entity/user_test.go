package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeUser() *User {
	storeName := "Shop"
	storeAddress := "12 Market Road"
	storeContact := "9876543210"
	return &User{
		Name:          "Ann",
		StoreName:     &storeName,
		StoreAddress:  &storeAddress,
		StoreContact:  &storeContact,
		EmailVerified: true,
		PhoneVerified: true,
	}
}

func TestComputeProfileComplete(t *testing.T) {
	assert.True(t, completeUser().ComputeProfileComplete())
}

func TestComputeProfileComplete_MissingPieces(t *testing.T) {
	u := completeUser()
	u.StoreName = nil
	assert.False(t, u.ComputeProfileComplete())

	u = completeUser()
	empty := ""
	u.StoreAddress = &empty
	assert.False(t, u.ComputeProfileComplete())

	u = completeUser()
	short := "12345"
	u.StoreContact = &short
	assert.False(t, u.ComputeProfileComplete())

	u = completeUser()
	u.EmailVerified = false
	assert.False(t, u.ComputeProfileComplete())

	u = completeUser()
	u.PhoneVerified = false
	assert.False(t, u.ComputeProfileComplete())
}
