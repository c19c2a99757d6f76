package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	domainRepo "github.com/subho2010/money-records-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return dbFrom(ctx, r.db).Create(transaction).Error
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, asc bool) ([]entity.Transaction, error) {
	order := "created_at DESC, id DESC"
	if asc {
		order = "created_at ASC, id ASC"
	}
	var transactions []entity.Transaction
	err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order(order).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepository) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	row := dbFrom(ctx, r.db).Model(&entity.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", enum.TransactionTypeCredit).
		Where("user_id = ?", userID).
		Row()

	var balance decimal.Decimal
	if err := row.Scan(&balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
