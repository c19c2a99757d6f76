package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt data operations.
// Receipts are immutable after creation: there is no update or delete.
type ReceiptRepository interface {
	// Create persists a receipt together with its line items as one unit.
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// ListByUser returns a user's receipts newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Receipt, error)
	// CountByUserAndYear counts the user's receipts created in the given
	// year; the receipt number sequence derives from it.
	CountByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int64, error)
}
