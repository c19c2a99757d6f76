package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/internal/domain/repository"
	"github.com/subho2010/money-records-api/pkg/apperror"
	"github.com/subho2010/money-records-api/pkg/export"
	"gorm.io/gorm"
)

// defaultNotes is used when the receipt form leaves the notes blank
const defaultNotes = "Shop again"

// ReceiptService composes, numbers and persists sales receipts
type ReceiptService struct {
	userRepo    repository.UserRepository
	receiptRepo repository.ReceiptRepository
	tx          repository.TxManager
	locks       *UserLocks
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	userRepo repository.UserRepository,
	receiptRepo repository.ReceiptRepository,
	tx repository.TxManager,
	locks *UserLocks,
) *ReceiptService {
	return &ReceiptService{
		userRepo:    userRepo,
		receiptRepo: receiptRepo,
		tx:          tx,
		locks:       locks,
	}
}

// ReceiptItemInput represents a line item on the receipt form
type ReceiptItemInput struct {
	Description string
	Quantity    int
	Price       decimal.Decimal
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	UserID              uuid.UUID
	Date                time.Time
	CustomerName        string
	CustomerContact     string
	CustomerCountryCode string
	PaymentType         enum.PaymentType
	CardNumber          string // required when PaymentType is card
	PhoneNumber         string // required when PaymentType is online
	Notes               string
	Items               []ReceiptItemInput
}

// ComputeTotal sums quantity x price over the form items. An empty list
// totals zero.
func ComputeTotal(items []ReceiptItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// FormatReceiptNumber builds a receipt number from the store and owner
// names and the sequence count: first letter of the store, first letter of
// the owner, last letter of the store, all uppercased, then the zero-padded
// count. A single-letter store name repeats its letter; that is accepted.
func FormatReceiptNumber(storeName, ownerName string, count int) string {
	store := []rune(storeName)
	owner := []rune(ownerName)
	return fmt.Sprintf("%s%s%s-%03d",
		strings.ToUpper(string(store[0])),
		strings.ToUpper(string(owner[0])),
		strings.ToUpper(string(store[len(store)-1])),
		count,
	)
}

// GenerateReceiptNumber returns the next receipt number for the user: the
// sequence counts the user's receipts created in the current UTC year, plus
// one. Two concurrent callers can see the same preview number; the number is
// regenerated under the user's lock at commit time.
func (s *ReceiptService) GenerateReceiptNumber(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.NewNotFoundError("User")
	}
	if !user.ProfileComplete {
		return "", apperror.ErrProfileIncomplete
	}

	count, err := s.receiptRepo.CountByUserAndYear(ctx, userID, time.Now().UTC().Year())
	if err != nil {
		return "", err
	}
	return FormatReceiptNumber(*user.StoreName, user.Name, int(count)+1), nil
}

func (in *CreateReceiptInput) validate() error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return apperror.NewFieldError("customer_name", "Customer name must not be empty")
	}
	if !contactPattern.MatchString(in.CustomerContact) {
		return apperror.NewFieldError("customer_contact", "Contact must be exactly 10 digits")
	}
	if strings.TrimSpace(in.CustomerCountryCode) == "" {
		return apperror.NewFieldError("customer_country_code", "Country code must not be empty")
	}
	if !in.PaymentType.IsValid() {
		return apperror.NewFieldError("payment_type", "Payment type must be cash, card or online")
	}
	if len(in.Items) == 0 {
		return apperror.NewFieldError("items", "At least one item is required")
	}
	for i, item := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		if strings.TrimSpace(item.Description) == "" {
			return apperror.NewFieldError(field+".description", "Description must not be empty")
		}
		if item.Quantity < 1 {
			return apperror.NewFieldError(field+".quantity", "Quantity must be at least 1")
		}
		if item.Price.IsNegative() {
			return apperror.NewFieldError(field+".price", "Price must not be negative")
		}
	}
	return nil
}

// paymentDetails validates the payment-specific input and returns what may
// be persisted. Card numbers are reduced to their last four digits before
// anything is stored; the full number never leaves this function.
func (in *CreateReceiptInput) paymentDetails() (string, error) {
	switch in.PaymentType {
	case enum.PaymentTypeCard:
		card := strings.ReplaceAll(in.CardNumber, " ", "")
		if len(card) != 16 || strings.Trim(card, "0123456789") != "" {
			return "", apperror.NewFieldError("card_number", "Card number must be exactly 16 digits")
		}
		return card[12:], nil
	case enum.PaymentTypeOnline:
		if !contactPattern.MatchString(in.PhoneNumber) {
			return "", apperror.NewFieldError("phone_number", "Phone number must be exactly 10 digits")
		}
		return in.PhoneNumber, nil
	default:
		return "", nil
	}
}

// CreateReceipt validates the form, numbers the receipt and persists the
// header with its items as one unit. The total is always computed
// server-side; a client-supplied total is never trusted.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	details, err := input.paymentDetails()
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(input.Notes)
	if notes == "" {
		notes = defaultNotes
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	unlock := s.locks.Lock(input.UserID)
	defer unlock()

	var receipt *entity.Receipt
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
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

		count, err := s.receiptRepo.CountByUserAndYear(ctx, user.ID, time.Now().UTC().Year())
		if err != nil {
			return err
		}

		items := make([]entity.ReceiptItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.ReceiptItem{
				Description: strings.TrimSpace(item.Description),
				Quantity:    item.Quantity,
				Price:       item.Price,
			}
		}

		receipt = &entity.Receipt{
			UserID:              user.ID,
			ReceiptNumber:       FormatReceiptNumber(*user.StoreName, user.Name, int(count)+1),
			Date:                date,
			CustomerName:        strings.TrimSpace(input.CustomerName),
			CustomerContact:     input.CustomerContact,
			CustomerCountryCode: strings.TrimSpace(input.CustomerCountryCode),
			PaymentType:         input.PaymentType,
			PaymentDetails:      details,
			Notes:               notes,
			Items:               items,
		}
		receipt.Total = receipt.ComputeTotal()
		return s.receiptRepo.Create(ctx, receipt)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Receipt number was taken by a concurrent request, please retry")
		}
		return nil, err
	}
	return receipt, nil
}

// GetReceipt returns a receipt aggregate with its total freshly recomputed
// from the line items
func (s *ReceiptService) GetReceipt(ctx context.Context, userID, receiptID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	if receipt.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	receipt.Total = receipt.ComputeTotal()
	return receipt, nil
}

// ListReceipts returns the user's receipts newest first
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID) ([]entity.Receipt, error) {
	return s.receiptRepo.ListByUser(ctx, userID)
}

// RenderReceiptHTML renders the printable document for a receipt
func (s *ReceiptService) RenderReceiptHTML(ctx context.Context, userID, receiptID uuid.UUID) ([]byte, error) {
	receipt, err := s.GetReceipt(ctx, userID, receiptID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return export.ReceiptHTML(user, receipt, time.Now())
}
