package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/internal/domain/repository"
	"github.com/subho2010/money-records-api/pkg/apperror"
)

// DueService tracks outstanding customer obligations and posts the
// corresponding ledger credit when one is settled
type DueService struct {
	userRepo        repository.UserRepository
	dueRepo         repository.DueRecordRepository
	transactionRepo repository.TransactionRepository
	tx              repository.TxManager
	locks           *UserLocks
}

// NewDueService creates a new due service
func NewDueService(
	userRepo repository.UserRepository,
	dueRepo repository.DueRecordRepository,
	transactionRepo repository.TransactionRepository,
	tx repository.TxManager,
	locks *UserLocks,
) *DueService {
	return &DueService{
		userRepo:        userRepo,
		dueRepo:         dueRepo,
		transactionRepo: transactionRepo,
		tx:              tx,
		locks:           locks,
	}
}

// CreateDueRecordInput represents the create due record input
type CreateDueRecordInput struct {
	UserID              uuid.UUID
	CustomerName        string
	CustomerContact     string
	CustomerCountryCode string
	ProductOrdered      string
	Quantity            int
	AmountDue           decimal.Decimal
	ExpectedPaymentDate time.Time
}

func (in *CreateDueRecordInput) validate() error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return apperror.NewFieldError("customer_name", "Customer name must not be empty")
	}
	if !contactPattern.MatchString(in.CustomerContact) {
		return apperror.NewFieldError("customer_contact", "Contact must be exactly 10 digits")
	}
	if strings.TrimSpace(in.CustomerCountryCode) == "" {
		return apperror.NewFieldError("customer_country_code", "Country code must not be empty")
	}
	if strings.TrimSpace(in.ProductOrdered) == "" {
		return apperror.NewFieldError("product_ordered", "Product must not be empty")
	}
	if in.Quantity <= 0 {
		return apperror.NewFieldError("quantity", "Quantity must be a positive number")
	}
	if !in.AmountDue.IsPositive() {
		return apperror.NewFieldError("amount_due", "Amount due must be a positive number")
	}
	if in.ExpectedPaymentDate.IsZero() {
		return apperror.NewFieldError("expected_payment_date", "Expected payment date is required")
	}
	return nil
}

// CreateDueRecord records a new outstanding payment and recomputes the
// cached total due balance
func (s *DueService) CreateDueRecord(ctx context.Context, input *CreateDueRecordInput) (*entity.DueRecord, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(input.UserID)
	defer unlock()

	var record *entity.DueRecord
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

		record = &entity.DueRecord{
			UserID:              user.ID,
			CustomerName:        strings.TrimSpace(input.CustomerName),
			CustomerContact:     input.CustomerContact,
			CustomerCountryCode: strings.TrimSpace(input.CustomerCountryCode),
			ProductOrdered:      strings.TrimSpace(input.ProductOrdered),
			Quantity:            input.Quantity,
			AmountDue:           input.AmountDue,
			ExpectedPaymentDate: input.ExpectedPaymentDate,
			State:               enum.DueStateUnpaid,
		}
		if err := s.dueRepo.Create(ctx, record); err != nil {
			return err
		}

		totalDue, err := s.dueRepo.TotalUnpaid(ctx, user.ID)
		if err != nil {
			return err
		}
		user.TotalDueBalance = totalDue
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// MarkPaid settles a due record. In one transaction it flips the record to
// paid, appends the matching ledger credit, and recomputes both cached
// balances; a failure anywhere rolls the whole sequence back so a record is
// never paid without its credit.
func (s *DueService) MarkPaid(ctx context.Context, userID, recordID uuid.UUID) (*entity.DueRecord, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var record *entity.DueRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.dueRepo.GetByID(ctx, recordID)
		if err != nil {
			return err
		}
		if record == nil {
			return apperror.NewNotFoundError("Due record")
		}
		if record.UserID != userID {
			return apperror.ErrForbidden
		}
		if record.IsPaid() {
			return apperror.ErrAlreadyPaid
		}

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.NewNotFoundError("User")
		}

		now := time.Now().UTC()
		record.State = enum.DueStatePaid
		record.PaidAt = &now
		if err := s.dueRepo.Update(ctx, record); err != nil {
			return err
		}

		credit := &entity.Transaction{
			UserID:      userID,
			Particulars: fmt.Sprintf("Payment received from %s for %s", record.CustomerName, record.ProductOrdered),
			Amount:      record.AmountDue,
			Type:        enum.TransactionTypeCredit,
		}
		if err := s.transactionRepo.Create(ctx, credit); err != nil {
			return err
		}

		balance, err := s.transactionRepo.Balance(ctx, userID)
		if err != nil {
			return err
		}
		totalDue, err := s.dueRepo.TotalUnpaid(ctx, userID)
		if err != nil {
			return err
		}
		user.AccountBalance = balance
		user.TotalDueBalance = totalDue
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListDueRecords returns the user's due records ordered by expected payment
// date
func (s *DueService) ListDueRecords(ctx context.Context, userID uuid.UUID) ([]entity.DueRecord, error) {
	return s.dueRepo.ListByUser(ctx, userID)
}

// TotalDueBalance recomputes the total outstanding amount over the user's
// unpaid records
func (s *DueService) TotalDueBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return s.dueRepo.TotalUnpaid(ctx, userID)
}
