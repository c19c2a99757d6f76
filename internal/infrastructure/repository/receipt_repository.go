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

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create persists the receipt and its items. gorm inserts the associated
// items in the same statement batch; when called inside WithinTx the whole
// aggregate commits or rolls back as one.
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return dbFrom(ctx, r.db).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := dbFrom(ctx, r.db).
		Preload("Items").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&receipts).Error
	return receipts, err
}

func (r *receiptRepository) CountByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int64, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.Receipt{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Count(&count).Error
	return count, err
}
