package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/internal/domain/repository"
	"github.com/subho2010/money-records-api/pkg/apperror"
	"github.com/subho2010/money-records-api/pkg/export"
)

// LedgerService maintains the append-only transaction log and the cached
// account balance derived from it
type LedgerService struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	tx              repository.TxManager
	locks           *UserLocks
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	tx repository.TxManager,
	locks *UserLocks,
) *LedgerService {
	return &LedgerService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		tx:              tx,
		locks:           locks,
	}
}

// PostTransactionInput represents the post transaction input
type PostTransactionInput struct {
	UserID      uuid.UUID
	Particulars string
	Amount      decimal.Decimal
	Type        enum.TransactionType
}

// PostTransaction appends a transaction to the user's ledger and recomputes
// the cached account balance from the full log. The append and the balance
// write commit together or not at all.
func (s *LedgerService) PostTransaction(ctx context.Context, input *PostTransactionInput) (*entity.Transaction, error) {
	particulars := strings.TrimSpace(input.Particulars)
	if particulars == "" {
		return nil, apperror.NewFieldError("particulars", "Particulars must not be empty")
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewFieldError("amount", "Amount must be a positive number")
	}
	if !input.Type.IsValid() {
		return nil, apperror.NewFieldError("type", "Type must be credit or debit")
	}

	unlock := s.locks.Lock(input.UserID)
	defer unlock()

	var transaction *entity.Transaction
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, input.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.NewNotFoundError("User")
		}
		if !user.ProfileComplete {
			return apperror.ErrProfileIncomplete
		}

		transaction = &entity.Transaction{
			UserID:      user.ID,
			Particulars: particulars,
			Amount:      input.Amount,
			Type:        input.Type,
		}
		if err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}

		balance, err := s.transactionRepo.Balance(ctx, user.ID)
		if err != nil {
			return err
		}
		user.AccountBalance = balance
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetBalance returns the cached account balance. The cache reflects the last
// successful post; Recompute is the recovery path if it is suspected stale.
func (s *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, apperror.NewNotFoundError("User")
	}
	return user.AccountBalance, nil
}

// Recompute rebuilds the cached account balance from the transaction log and
// persists it. The log is the source of truth; the cache self-heals here.
func (s *LedgerService) Recompute(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var balance decimal.Decimal
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.NewNotFoundError("User")
		}

		balance, err = s.transactionRepo.Balance(ctx, userID)
		if err != nil {
			return err
		}
		user.AccountBalance = balance
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// ListTransactions returns the user's transactions newest first
func (s *LedgerService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]entity.Transaction, error) {
	return s.transactionRepo.ListByUser(ctx, userID, false)
}

// ExportCSV renders the user's full ledger as a CSV download. Rows are
// oldest first and the balance column replays the log chronologically.
func (s *LedgerService) ExportCSV(ctx context.Context, userID uuid.UUID, now time.Time) (filename string, data []byte, err error) {
	transactions, err := s.transactionRepo.ListByUser(ctx, userID, true)
	if err != nil {
		return "", nil, err
	}
	return export.LedgerCSVFilename(now), export.LedgerCSV(transactions), nil
}
