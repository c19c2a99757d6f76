package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction is a single entry in a user's append-only ledger.
// There are no update or delete operations on transactions; the account
// balance is always re-derivable by replaying them.
type Transaction struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Particulars string               `gorm:"type:text;not null" json:"particulars"`
	Amount      decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type        enum.TransactionType `gorm:"not null" json:"type"`
	CreatedAt   time.Time            `gorm:"index" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Signed returns the amount with its ledger sign: positive for credits,
// negative for debits.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == enum.TransactionTypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
