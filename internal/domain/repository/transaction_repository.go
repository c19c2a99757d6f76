package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger transaction data
// operations. The ledger is append-only: there is deliberately no update or
// delete.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	// ListByUser returns a user's transactions, oldest first when asc is
	// true, newest first otherwise.
	ListByUser(ctx context.Context, userID uuid.UUID, asc bool) ([]entity.Transaction, error)
	// Balance recomputes the account balance from the full transaction log:
	// sum of credits minus sum of debits.
	Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
