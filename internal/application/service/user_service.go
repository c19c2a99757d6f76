package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/repository"
	"github.com/subho2010/money-records-api/pkg/apperror"
)

// UserService handles profile operations
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the user's profile
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfileInput represents the profile update input
type UpdateProfileInput struct {
	Name             string
	StoreName        string
	StoreAddress     string
	StoreContact     string
	StoreCountryCode string
	CurrencySymbol   string
}

// UpdateProfile updates the user's store profile and re-derives the
// profile_complete flag. Changing the store contact clears the phone
// verification: the new number must be verified again.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldError("name", "Name must not be empty")
	}
	if input.StoreContact != "" && !contactPattern.MatchString(input.StoreContact) {
		return nil, apperror.NewFieldError("store_contact", "Contact must be exactly 10 digits")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if user.StoreContact != nil && *user.StoreContact != input.StoreContact {
		user.PhoneVerified = false
	}

	user.Name = name
	user.StoreName = optional(input.StoreName)
	user.StoreAddress = optional(input.StoreAddress)
	user.StoreContact = optional(input.StoreContact)
	user.StoreCountryCode = optional(input.StoreCountryCode)
	user.CurrencySymbol = optional(input.CurrencySymbol)
	user.ProfileComplete = user.ComputeProfileComplete()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
