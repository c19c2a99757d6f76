package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	domainRepo "github.com/subho2010/money-records-api/internal/domain/repository"
	"gorm.io/gorm"
)

type dueRecordRepository struct {
	db *gorm.DB
}

// NewDueRecordRepository creates a new due record repository
func NewDueRecordRepository(db *gorm.DB) domainRepo.DueRecordRepository {
	return &dueRecordRepository{db: db}
}

func (r *dueRecordRepository) Create(ctx context.Context, record *entity.DueRecord) error {
	return dbFrom(ctx, r.db).Create(record).Error
}

func (r *dueRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DueRecord, error) {
	var record entity.DueRecord
	err := dbFrom(ctx, r.db).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *dueRecordRepository) Update(ctx context.Context, record *entity.DueRecord) error {
	return dbFrom(ctx, r.db).Save(record).Error
}

func (r *dueRecordRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.DueRecord, error) {
	var records []entity.DueRecord
	err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order("expected_payment_date ASC").
		Find(&records).Error
	return records, err
}

func (r *dueRecordRepository) TotalUnpaid(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	row := dbFrom(ctx, r.db).Model(&entity.DueRecord{}).
		Select("COALESCE(SUM(amount_due), 0)").
		Where("user_id = ? AND state = ?", userID, enum.DueStateUnpaid).
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
