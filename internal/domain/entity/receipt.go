package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Receipt is a committed sales receipt. Once persisted it is immutable:
// there are no edit, void or refund operations.
type Receipt struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_receipts_user_number" json:"user_id"`
	ReceiptNumber       string           `gorm:"size:50;not null;uniqueIndex:idx_receipts_user_number" json:"receipt_number"`
	Date                time.Time        `gorm:"type:date;not null" json:"date"`
	CustomerName        string           `gorm:"size:255;not null" json:"customer_name"`
	CustomerContact     string           `gorm:"size:50;not null" json:"customer_contact"`
	CustomerCountryCode string           `gorm:"size:10;not null" json:"customer_country_code"`
	PaymentType         enum.PaymentType `gorm:"default:0" json:"payment_type"`
	PaymentDetails      string           `gorm:"size:50" json:"payment_details,omitempty"`
	Notes               string           `gorm:"type:text" json:"notes"`
	Total               decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"total"`
	CreatedAt           time.Time        `gorm:"index" json:"created_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User  User          `gorm:"foreignKey:UserID" json:"-"`
	Items []ReceiptItem `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ComputeTotal recomputes the receipt total from its line items. The stored
// total is a cache; this is the authoritative calculation.
func (r *Receipt) ComputeTotal() decimal.Decimal {
	return ComputeItemsTotal(r.Items)
}

// ReceiptItem is a single line on a receipt. It is owned exclusively by its
// parent receipt.
type ReceiptItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"receipt_id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new receipt item
func (i *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}

// Amount returns the line amount: quantity x price
func (i *ReceiptItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeItemsTotal sums quantity x price over the items. An empty list
// totals zero.
func ComputeItemsTotal(items []ReceiptItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Amount())
	}
	return total
}
