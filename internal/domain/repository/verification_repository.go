package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
)

// VerificationCodeRepository defines the interface for verification code
// data operations
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *entity.VerificationCode) error
	// GetLatest returns the most recently issued code for the user, channel
	// and target, or nil if none exists.
	GetLatest(ctx context.Context, userID uuid.UUID, channel enum.VerificationChannel, target string) (*entity.VerificationCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}
