package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	domainRepo "github.com/subho2010/money-records-api/internal/domain/repository"
	"gorm.io/gorm"
)

type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository creates a new verification code repository
func NewVerificationCodeRepository(db *gorm.DB) domainRepo.VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

func (r *verificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	return dbFrom(ctx, r.db).Create(code).Error
}

func (r *verificationCodeRepository) GetLatest(ctx context.Context, userID uuid.UUID, channel enum.VerificationChannel, target string) (*entity.VerificationCode, error) {
	var code entity.VerificationCode
	err := dbFrom(ctx, r.db).
		Where("user_id = ? AND channel = ? AND target = ?", userID, channel, target).
		Order("created_at DESC").
		First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *verificationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&entity.VerificationCode{}).
		Where("id = ?", id).
		Update("used", true).Error
}
