package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
)

// DueRecordRepository defines the interface for due record data operations
type DueRecordRepository interface {
	Create(ctx context.Context, record *entity.DueRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DueRecord, error)
	Update(ctx context.Context, record *entity.DueRecord) error
	// ListByUser returns a user's due records ordered by expected payment
	// date ascending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.DueRecord, error)
	// TotalUnpaid recomputes the total due balance: sum of amount_due over
	// the user's unpaid records.
	TotalUnpaid(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
