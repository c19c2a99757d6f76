package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	domainRepo "github.com/subho2010/money-records-api/internal/domain/repository"
	"gorm.io/gorm"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	var record entity.IdempotencyKey
	err := dbFrom(ctx, r.db).
		Where("key = ? AND user_id = ?", key, userID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	return dbFrom(ctx, r.db).Create(key).Error
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return dbFrom(ctx, r.db).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{}).Error
}
